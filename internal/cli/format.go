// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a dollar amount rounded to whole dollars.
// e.g., 1234.5 -> "$1,235", -12 -> "-$12"
func FormatCurrency(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatExact formats a dollar amount with cents when it has any.
// e.g., 138.01 -> "$138.01", 504 -> "$504"
func FormatExact(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return FormatCurrency(d)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents == 100 {
		return sign + FormatCurrency(whole.Add(decimal.NewFromInt(1)))
	}
	return sign + "$" + FormatNumber(whole.IntPart()) + "." + leftPad(strconv.FormatInt(cents, 10), 2)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatYesNo renders a flag for display.
func FormatYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
