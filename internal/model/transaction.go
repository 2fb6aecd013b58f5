package model

import "time"

// Kind classifies a transaction record.
type Kind int

const (
	KindOpening Kind = iota
	KindDeposit
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindOpening:
		return "Opening"
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// TransactionRecord is one append-only log entry. Records are never
// edited after they are written.
type TransactionRecord struct {
	Kind      Kind
	Amount    int64
	Timestamp time.Time
}
