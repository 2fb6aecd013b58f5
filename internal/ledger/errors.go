package ledger

import "errors"

var (
	ErrNotFound          = errors.New("account not found")
	ErrNoActiveSession   = errors.New("no active session")
	ErrAlreadyLoggedIn   = errors.New("already logged in")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)
