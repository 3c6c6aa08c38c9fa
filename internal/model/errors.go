package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// InvalidInputError reports a form field that cannot be used for a calculation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Amount limits. Exponent bounds are checked before any comparison so a value
// like "1e20000000" is rejected without being expanded.
const (
	maxAmountText     = 32
	minAmountExponent = -10
	maxAmountExponent = 12
)

// MaxAmount is the largest amount accepted in any money or percentage field.
var MaxAmount = decimal.New(1, maxAmountExponent)

// ParseAmount parses a money or percentage field typed by the user.
// Blank text counts as zero, matching an untouched form field.
func ParseAmount(field, text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, nil
	}
	if len(text) > maxAmountText {
		return decimal.Zero, &InvalidInputError{Field: field, Reason: "is too long"}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &InvalidInputError{Field: field, Reason: fmt.Sprintf("%q is not a number", text)}
	}
	if err := checkAmount(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// checkAmount enforces the sign, precision and magnitude rules for an amount.
func checkAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return &InvalidInputError{Field: field, Reason: "must not be negative"}
	}
	if d.Exponent() < minAmountExponent {
		return &InvalidInputError{Field: field, Reason: "has too many decimal places"}
	}
	if d.Exponent() > maxAmountExponent || d.GreaterThan(MaxAmount) {
		return &InvalidInputError{Field: field, Reason: "must not exceed " + MaxAmount.String()}
	}
	return nil
}

// ParseCount parses a whole-number field that must be at least 1.
func ParseCount(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &InvalidInputError{Field: field, Reason: fmt.Sprintf("%q is not a whole number", text)}
	}
	if n < 1 {
		return 0, &InvalidInputError{Field: field, Reason: "must be at least 1"}
	}
	return n, nil
}
