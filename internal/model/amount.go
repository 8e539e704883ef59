package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale bounds the exponent of any amount in either direction.
	MaxScale = 18
	// MaxDigits bounds the number of significant digits of any amount.
	MaxDigits = 100
)

// ErrOutOfRange is returned for amounts too large or too finely divided to
// store.
var ErrOutOfRange = errors.New("amount out of range")

// ParseAmount parses a decimal string and rejects values whose exponent or
// digit count is outside the supported window.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !InRange(d) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return d, nil
}

// InRange reports whether d can be stored and formatted cheaply.
func InRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxScale || exp > MaxScale {
		return false
	}
	return d.NumDigits() <= MaxDigits
}
