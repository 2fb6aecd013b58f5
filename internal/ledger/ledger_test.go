package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowanlk/passbook/internal/constants"
	"github.com/rowanlk/passbook/internal/model"
)

// newTestLedger builds a ledger with a fixed random seed and a clock
// that advances one second per call, so numbers and timestamps are
// reproducible.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	tick := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return New(Config{
		Rand: rand.New(rand.NewSource(42)),
		Now: func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		},
	})
}

func TestOpenAndRetrieve(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, number, int64(constants.AccountNumberMin))
	assert.LessOrEqual(t, number, int64(constants.AccountNumberMax))

	acc, err := l.RetrieveAccount(number)
	require.NoError(t, err)
	assert.Equal(t, "Alice", acc.HolderName)
	assert.Equal(t, int64(10000), acc.Balance)
	assert.Equal(t, number, acc.Number)
}

func TestRetrieveUnknownNumber(t *testing.T) {
	l := newTestLedger(t)

	acc, err := l.RetrieveAccount(1234567890)
	assert.Nil(t, acc)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRetrieveReturnsCopy(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 5000)
	require.NoError(t, err)

	acc, err := l.RetrieveAccount(number)
	require.NoError(t, err)
	acc.Balance = 999999

	again, err := l.RetrieveAccount(number)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), again.Balance)
}

func TestAccountNumbersAreUnique(t *testing.T) {
	l := newTestLedger(t)

	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		number, err := l.OpenAccount("Holder", 100)
		require.NoError(t, err)
		assert.False(t, seen[number], "number %d issued twice", number)
		seen[number] = true
	}
}

func TestLoginLogout(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)

	_, ok := l.ActiveAccount()
	assert.False(t, ok)

	require.NoError(t, l.Login(number))
	active, ok := l.ActiveAccount()
	assert.True(t, ok)
	assert.Equal(t, number, active)

	l.Logout()
	_, ok = l.ActiveAccount()
	assert.False(t, ok)
}

func TestLoginUnknownNumber(t *testing.T) {
	l := newTestLedger(t)

	err := l.Login(1234567890)
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := l.ActiveAccount()
	assert.False(t, ok)
}

func TestLoginWhileLoggedIn(t *testing.T) {
	l := newTestLedger(t)

	first, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	second, err := l.OpenAccount("Bob", 5000)
	require.NoError(t, err)

	require.NoError(t, l.Login(first))

	// Rejected even for the already-active number; the session stays put.
	err = l.Login(second)
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)
	err = l.Login(first)
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)

	active, ok := l.ActiveAccount()
	assert.True(t, ok)
	assert.Equal(t, first, active)
}

func TestLogoutIsIdempotent(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))

	l.Logout()
	l.Logout()

	_, ok := l.ActiveAccount()
	assert.False(t, ok)
}

func TestDepositAndWithdraw(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))

	require.NoError(t, l.Deposit(5000))

	balance, err := l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)

	// Overdraw: rejected, balance and log untouched.
	err = l.Withdraw(20000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	balance, err = l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)
	assert.Len(t, l.History(), 2)

	require.NoError(t, l.Withdraw(15000))
	balance, err = l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	history := l.History()
	require.Len(t, history, 3)
	assert.Equal(t, model.KindOpening, history[0].Kind)
	assert.Equal(t, int64(10000), history[0].Amount)
	assert.Equal(t, model.KindDeposit, history[1].Kind)
	assert.Equal(t, int64(5000), history[1].Amount)
	assert.Equal(t, model.KindWithdrawal, history[2].Kind)
	assert.Equal(t, int64(15000), history[2].Amount)
}

func TestOperationsRequireSession(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)

	assert.ErrorIs(t, l.Deposit(100), ErrNoActiveSession)
	assert.ErrorIs(t, l.Withdraw(100), ErrNoActiveSession)

	_, err = l.Balance()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Empty(t, l.History())
}

func TestHistoryOrderAndIsolation(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 1000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))
	require.NoError(t, l.Deposit(200))
	require.NoError(t, l.Withdraw(300))

	history := l.History()
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i].Timestamp.After(history[i-1].Timestamp),
			"records must be in append order")
	}

	// Mutating the returned slice must not touch the ledger's log.
	history[0].Amount = 777
	fresh := l.History()
	assert.Equal(t, int64(1000), fresh[0].Amount)
}

// Balance must always equal the opening amount plus deposits minus
// successful withdrawals recorded in the log.
func TestBalanceMatchesLog(t *testing.T) {
	l := newTestLedger(t)
	rng := rand.New(rand.NewSource(7))

	number, err := l.OpenAccount("Alice", 25000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))

	for i := 0; i < 200; i++ {
		amount := rng.Int63n(10000) + 1
		if rng.Intn(2) == 0 {
			require.NoError(t, l.Deposit(amount))
		} else {
			err := l.Withdraw(amount)
			if err != nil {
				assert.ErrorIs(t, err, ErrInsufficientFunds)
			}
		}
	}

	var fromLog int64
	for _, rec := range l.History() {
		switch rec.Kind {
		case model.KindOpening, model.KindDeposit:
			fromLog += rec.Amount
		case model.KindWithdrawal:
			fromLog -= rec.Amount
		}
	}

	balance, err := l.Balance()
	require.NoError(t, err)
	assert.Equal(t, fromLog, balance)
	assert.GreaterOrEqual(t, balance, int64(0))
}

func TestPermissiveAmountsByDefault(t *testing.T) {
	l := newTestLedger(t)

	// The classic behavior: nothing rejects zero or negative amounts.
	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))

	require.NoError(t, l.Deposit(0))
	require.NoError(t, l.Deposit(-500))

	balance, err := l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(9500), balance)
}

func TestStrictAmounts(t *testing.T) {
	tick := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	l := New(Config{
		StrictAmounts: true,
		Rand:          rand.New(rand.NewSource(42)),
		Now: func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		},
	})

	_, err := l.OpenAccount("Alice", -100)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)
	require.NoError(t, l.Login(number))

	assert.ErrorIs(t, l.Deposit(0), ErrInvalidAmount)
	assert.ErrorIs(t, l.Deposit(-500), ErrInvalidAmount)
	assert.ErrorIs(t, l.Withdraw(0), ErrInvalidAmount)

	balance, err := l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance)
	assert.Len(t, l.History(), 1)
}

// The walkthrough from the original program: open with 100, deposit 50,
// fail to withdraw 200, then withdraw everything.
func TestPassbookScenario(t *testing.T) {
	l := newTestLedger(t)

	number, err := l.OpenAccount("Alice", 10000)
	require.NoError(t, err)

	acc, err := l.RetrieveAccount(number)
	require.NoError(t, err)
	assert.Equal(t, "Alice", acc.HolderName)
	assert.Equal(t, int64(10000), acc.Balance)

	require.NoError(t, l.Login(number))
	require.NoError(t, l.Deposit(5000))

	balance, err := l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)

	assert.ErrorIs(t, l.Withdraw(20000), ErrInsufficientFunds)
	balance, err = l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)

	require.NoError(t, l.Withdraw(15000))
	balance, err = l.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	history := l.History()
	require.Len(t, history, 3)
	assert.Equal(t, model.KindOpening, history[0].Kind)
	assert.Equal(t, model.KindDeposit, history[1].Kind)
	assert.Equal(t, model.KindWithdrawal, history[2].Kind)
}
