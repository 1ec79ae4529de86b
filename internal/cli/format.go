// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency prefixes formatted amounts. The root command sets it from config.
var Currency = "R$"

// FormatMoney formats an amount to two decimals, e.g. "R$ 12.50".
func FormatMoney(v decimal.Decimal) string {
	return Currency + " " + v.StringFixed(2)
}

// FormatFloatMoney formats a stored record amount.
func FormatFloatMoney(v float64) string {
	return FormatMoney(decimal.NewFromFloat(v))
}

// FormatSignedMoney formats an amount with an explicit sign, e.g. "+R$ 5.00".
func FormatSignedMoney(v decimal.Decimal) string {
	switch v.Sign() {
	case 1:
		return "+" + FormatMoney(v)
	case -1:
		return "-" + FormatMoney(v.Neg())
	default:
		return FormatMoney(v)
	}
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

// FormatDelta formats the change from previous to current with its
// percentage, e.g. "+R$ 50.00 (+12.5%)". The percentage is omitted when
// previous is zero.
func FormatDelta(current, previous decimal.Decimal) string {
	delta := current.Sub(previous)
	s := FormatSignedMoney(delta)
	if previous.IsZero() {
		return s
	}
	pct := delta.Div(previous.Abs()).Mul(decimal.NewFromInt(100))
	sign := ""
	if pct.IsPositive() {
		sign = "+"
	}
	return fmt.Sprintf("%s (%s%s%%)", s, sign, pct.StringFixed(1))
}

// Plural picks the singular or plural noun for n.
func Plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return FormatNumber(int64(n)) + " " + many
}

// Truncate shortens s to at most max runes, marking the cut with "…".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
