package constants

const (
	MaxSafeAmountFloat = 9223372036854775.0
)

const (
	MaxHolderNameLen = 100
	CentsPerUnit     = 100
)

// Account numbers are ten-digit integers, matching the classic
// passbook numbering scheme. Zero is reserved for "no account".
const (
	AccountNumberMin = 1000000000
	AccountNumberMax = 9999999999
)
