// Package money converts between display amounts and the int64 cents
// representation used everywhere inside the ledger. Amounts are never
// handled as floats past the parsing boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/rowanlk/passbook/internal/constants"
)

// FormatFromCents converts cents to a two-decimal currency string.
func FormatFromCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/float64(constants.CentsPerUnit))
}

// ParseToCents converts a currency string to cents.
// e.g., "150.50" -> 15050, "150" -> 15000, "-3.5" -> -350
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	negative := false
	if strings.HasPrefix(amountStr, "-") {
		negative = true
		amountStr = amountStr[1:]
	}

	var dollars, cents int64

	// Handle formats: "150", "150.5", "150.50"
	parts := strings.Split(amountStr, ".")

	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	if parts[0] != "" {
		_, err := fmt.Sscanf(parts[0], "%d", &dollars)
		if err != nil || dollars < 0 {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
	}

	if len(parts) == 2 {
		centStr := parts[1]
		// Pad or truncate to 2 digits
		if len(centStr) == 1 {
			centStr += "0" // "150.5" -> "50"
		} else if len(centStr) > 2 {
			centStr = centStr[:2]
		}

		_, err := fmt.Sscanf(centStr, "%d", &cents)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
	}

	total := dollars*int64(constants.CentsPerUnit) + cents
	if negative {
		total = -total
	}
	return total, nil
}
