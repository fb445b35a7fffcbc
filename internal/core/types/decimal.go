// Package types provides common numeric types for money, quantities and rates.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors; rounding to
// MoneyScale happens once, at the externally visible edge.
type Money = decimal.Decimal

// Quantity represents a quantity of goods, possibly fractional.
// Stored as NUMERIC(15,4) in PostgreSQL.
type Quantity = decimal.Decimal

// Scales for externally visible values. Intermediate arithmetic is
// never rounded; only final fields are.
const (
	MoneyScale    int32 = 2
	QuantityScale int32 = 4
)

// NewMoneyFromString creates a Money value from a string.
// This is the preferred constructor for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundMoney rounds to MoneyScale (half away from zero).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// RoundQuantity rounds to QuantityScale.
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}

// ClampNonNegative returns zero for negative values, d otherwise.
// Negative inputs are rejected at the validation layer; the calculators
// clamp instead of crashing when one slips through.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percent100 is the divisor for percentage rates (0-100).
var Percent100 = decimal.NewFromInt(100)

// IsValidPercent reports whether d lies in [0, 100].
func IsValidPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(Percent100)
}
