// Package ledger owns every account record and its transaction log.
// All state lives in memory for the lifetime of the process; a rejected
// operation never leaves a partial balance update or an orphaned log
// entry behind.
package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rowanlk/passbook/internal/constants"
	"github.com/rowanlk/passbook/internal/model"
)

// Config controls optional ledger behavior.
type Config struct {
	// StrictAmounts rejects zero and negative deposit/withdrawal amounts
	// and negative opening deposits with ErrInvalidAmount. Off by default.
	StrictAmounts bool

	// Rand draws account numbers. Defaults to a source seeded with the
	// current time; the ledger never touches the global source.
	Rand *rand.Rand

	// Now stamps transaction records. Defaults to time.Now.
	Now func() time.Time
}

// Ledger is the aggregate root: it maps account numbers to accounts and
// to their append-only transaction logs, and holds the single session
// slot. Both maps always share the same key set.
type Ledger struct {
	accounts map[int64]*model.Account
	history  map[int64][]model.TransactionRecord

	// active is the logged-in account number, 0 when logged out.
	// Account numbers are always ten digits, so 0 never collides.
	active int64

	rng    *rand.Rand
	now    func() time.Time
	strict bool
}

func New(cfg Config) *Ledger {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Ledger{
		accounts: make(map[int64]*model.Account),
		history:  make(map[int64][]model.TransactionRecord),
		rng:      rng,
		now:      now,
		strict:   cfg.StrictAmounts,
	}
}

// OpenAccount creates a new account with the given holder name and
// initial deposit (cents), assigns it a fresh number and writes the
// Opening record. The new account is not logged in.
func (l *Ledger) OpenAccount(name string, initialDeposit int64) (int64, error) {
	if l.strict && initialDeposit < 0 {
		return 0, fmt.Errorf("initial deposit %s: %w", formatCents(initialDeposit), ErrInvalidAmount)
	}

	number := l.GenerateAccountNumber()

	l.accounts[number] = &model.Account{
		Number:     number,
		HolderName: name,
		Balance:    initialDeposit,
	}
	l.history[number] = []model.TransactionRecord{
		{Kind: model.KindOpening, Amount: initialDeposit, Timestamp: l.now()},
	}

	return number, nil
}

// GenerateAccountNumber returns a random ten-digit number not yet in
// use. The original program drew one number per ledger instance and
// handed it to every account, so a second open silently overwrote the
// first; numbers are drawn per account here instead.
func (l *Ledger) GenerateAccountNumber() int64 {
	for {
		n := constants.AccountNumberMin + l.rng.Int63n(constants.AccountNumberMax-constants.AccountNumberMin+1)
		if _, taken := l.accounts[n]; !taken {
			return n
		}
	}
}

// RetrieveAccount looks up an account by number. It returns a copy so
// callers cannot mutate ledger state, and ErrNotFound when the number
// is unknown.
func (l *Ledger) RetrieveAccount(number int64) (*model.Account, error) {
	acc, ok := l.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", number, ErrNotFound)
	}

	cp := *acc
	return &cp, nil
}

// Login opens a session for the given account number. It fails if a
// session is already active or the number is unknown; in both cases the
// session slot is left untouched.
func (l *Ledger) Login(number int64) error {
	if l.active != 0 {
		return fmt.Errorf("already logged in with account number %d: %w", l.active, ErrAlreadyLoggedIn)
	}
	if _, ok := l.accounts[number]; !ok {
		return fmt.Errorf("account %d: %w", number, ErrNotFound)
	}

	l.active = number
	return nil
}

// Logout clears the session slot. Calling it while logged out is a no-op.
func (l *Ledger) Logout() {
	l.active = 0
}

// ActiveAccount reports the logged-in account number, if any.
func (l *Ledger) ActiveAccount() (int64, bool) {
	return l.active, l.active != 0
}

// Deposit adds amount (cents) to the active account's balance and
// appends a Deposit record.
func (l *Ledger) Deposit(amount int64) error {
	acc, err := l.activeAccount()
	if err != nil {
		return err
	}
	if l.strict && amount <= 0 {
		return fmt.Errorf("deposit of %s: %w", formatCents(amount), ErrInvalidAmount)
	}

	acc.Balance += amount
	l.append(acc.Number, model.KindDeposit, amount)
	return nil
}

// Withdraw subtracts amount (cents) from the active account's balance
// and appends a Withdrawal record. A withdrawal that would drive the
// balance negative is rejected with ErrInsufficientFunds and logs
// nothing.
func (l *Ledger) Withdraw(amount int64) error {
	acc, err := l.activeAccount()
	if err != nil {
		return err
	}
	if l.strict && amount <= 0 {
		return fmt.Errorf("withdrawal of %s: %w", formatCents(amount), ErrInvalidAmount)
	}
	if amount > acc.Balance {
		return fmt.Errorf("withdrawal of %s exceeds balance %s: %w",
			formatCents(amount), formatCents(acc.Balance), ErrInsufficientFunds)
	}

	acc.Balance -= amount
	l.append(acc.Number, model.KindWithdrawal, amount)
	return nil
}

// Balance returns the active account's balance in cents.
func (l *Ledger) Balance() (int64, error) {
	acc, err := l.activeAccount()
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// History returns a copy of the active account's transaction log in
// append order, Opening record first. It returns an empty slice when
// no session is open.
func (l *Ledger) History() []model.TransactionRecord {
	acc, err := l.activeAccount()
	if err != nil {
		return nil
	}

	records := l.history[acc.Number]
	out := make([]model.TransactionRecord, len(records))
	copy(out, records)
	return out
}

func (l *Ledger) activeAccount() (*model.Account, error) {
	if l.active == 0 {
		return nil, ErrNoActiveSession
	}

	acc, ok := l.accounts[l.active]
	if !ok {
		// Accounts are never deleted, so this cannot happen while the
		// session invariant holds.
		return nil, fmt.Errorf("account %d: %w", l.active, ErrNotFound)
	}
	return acc, nil
}

func (l *Ledger) append(number int64, kind model.Kind, amount int64) {
	l.history[number] = append(l.history[number], model.TransactionRecord{
		Kind:      kind,
		Amount:    amount,
		Timestamp: l.now(),
	})
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/float64(constants.CentsPerUnit))
}
