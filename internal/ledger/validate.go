package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation and lookup errors. A rejected operation changes nothing.
var (
	ErrEmptyLabel    = errors.New("label is empty")
	ErrInvalidAmount = errors.New("amount is not a number")
	ErrNotFound      = errors.New("record not found")
)

// ParseAmount parses a user-entered money amount. Surrounding spaces are
// ignored and a decimal comma is accepted ("12,50"). Amounts too large for
// a float64 record field are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !Finite(d) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return d, nil
}

// Finite reports whether d converts to a finite float64.
func Finite(d decimal.Decimal) bool {
	f, _ := d.Float64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func parseLabel(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyLabel
	}
	return s, nil
}

// parseInput validates a label/amount pair the way every add and edit does.
func parseInput(label, amount string) (string, float64, error) {
	l, err := parseLabel(label)
	if err != nil {
		return "", 0, err
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return "", 0, err
	}
	f, _ := a.Float64()
	return l, f, nil
}
