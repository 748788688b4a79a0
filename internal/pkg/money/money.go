// Package money provides precise monetary arithmetic using big.Rat.
// Values are stored as rational numbers (numerator/denominator) to avoid
// floating-point accumulation error in order totals.
package money

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string cannot be parsed as a
// decimal amount.
var ErrInvalidAmount = errors.New("invalid money amount")

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	rat *big.Rat
}

// New creates a Money from numerator and denominator.
// Example: New(4999, 100) represents $49.99.
func New(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// FromDecimal creates a Money from a decimal value.
func FromDecimal(d decimal.Decimal) *Money {
	return &Money{rat: new(big.Rat).Set(d.Rat())}
}

// Parse creates a Money from a decimal string such as "49.99".
func Parse(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d), nil
}

// Numerator returns the numerator, or an error if it exceeds int64 bounds.
func (m *Money) Numerator() (int64, error) {
	num := m.rat.Num()
	if !num.IsInt64() {
		return 0, fmt.Errorf("money numerator exceeds int64 bounds")
	}
	return num.Int64(), nil
}

// Denominator returns the denominator, or an error if it exceeds int64 bounds.
func (m *Money) Denominator() (int64, error) {
	denom := m.rat.Denom()
	if !denom.IsInt64() {
		return 0, fmt.Errorf("money denominator exceeds int64 bounds")
	}
	return denom.Int64(), nil
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyInt multiplies this Money value by an integer quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
