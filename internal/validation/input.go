// Package validation holds the input validators used by the shell
// prompts. Validators come in two flavors: func(string) error for huh
// fields and func(any) error for survey prompts.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rowanlk/passbook/internal/constants"
	"github.com/rowanlk/passbook/internal/money"
)

// ValidateHolderName validates an account holder name.
// Accepts any (for survey compatibility).
func ValidateHolderName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("holder name must be a string")
	}

	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("holder name can't be empty")
	}

	if len(name) > constants.MaxHolderNameLen {
		return fmt.Errorf("holder name too long (max %d characters)", constants.MaxHolderNameLen)
	}

	return nil
}

// ValidateAmount checks that the input parses as a two-decimal amount
// within the int64 cents range.
func ValidateAmount(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount is required")
	}

	amountFloat, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}

	if amountFloat > constants.MaxSafeAmountFloat || amountFloat < -constants.MaxSafeAmountFloat {
		return fmt.Errorf("amount too large")
	}

	if _, err := money.ParseToCents(input); err != nil {
		return err
	}

	return nil
}

// ValidateNonNegativeAmount is ValidateAmount plus a non-negativity
// check, for opening deposits.
func ValidateNonNegativeAmount(input string) error {
	if err := ValidateAmount(input); err != nil {
		return err
	}

	cents, err := money.ParseToCents(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if cents < 0 {
		return fmt.Errorf("initial deposit can't be negative")
	}

	return nil
}

// ValidateAccountNumber checks that the input is a ten-digit account
// number.
func ValidateAccountNumber(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("account number is required")
	}

	number, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return fmt.Errorf("account number must be digits only")
	}

	if number < constants.AccountNumberMin || number > constants.AccountNumberMax {
		return fmt.Errorf("account number must be ten digits")
	}

	return nil
}
