// Package core holds the domain types shared by every other package.
//
// This file contains amount parsing and formatting. Amounts are
// decimal.Decimal so aggregation sums stay exact; a string that does not
// parse is rejected instead of being coerced to a garbage number.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts free-text numeric entry into a decimal amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and a
// leading sign. Empty or non-numeric input returns ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
