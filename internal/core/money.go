// Package core defines the ledger's record type together with the parsing
// and validation rules applied before anything is stored.
//
// Money is kept in integer cents; floating point only appears at the
// display boundary.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a raw amount string to Money with half-up rounding
// on the third decimal place. Both dot (12.34) and comma (12,34) decimal
// separators are accepted. Signed, empty, non-numeric and non-positive
// inputs are rejected with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34") -> Money{1234}
//	ParseAmount("12,345") -> Money{1235} (rounds up)
func ParseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if s[0] == '+' || s[0] == '-' {
		// Only unsigned positive values are accepted.
		return Money{}, ErrInvalidAmount
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Guard the *100 below against overflow.
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return Money{}, ErrInvalidAmount
	}
	// First two fractional digits are cents; the third decides rounding.
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		frac += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		frac++
	}
	cents := iv*100 + frac
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// Euros returns the amount as a float64 for display purposes.
// Calculations should stay on cents to avoid floating-point drift.
func (m Money) Euros() float64 {
	return float64(m.Cents) / 100.0
}

// String renders the amount as a Euro currency string (e.g. "€12,34").
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := strconv.FormatInt(cents/100, 10) + "," + fmt.Sprintf("%02d", cents%100)
	if neg {
		return "-€" + s
	}
	return "€" + s
}
