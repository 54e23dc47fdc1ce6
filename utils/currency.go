package utils

import "fmt"

// FormatCurrencyINR formats an amount as Indian rupees for receipts
// and notifications. Example: 15000.50 -> "Rs 15000.50".
func FormatCurrencyINR(amount float64) string {
	return fmt.Sprintf("Rs %.2f", amount)
}
