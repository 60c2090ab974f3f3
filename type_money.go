package tradesim

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The simulator quotes everything in a single display currency.
const displayCurrency = "USD"

// Money represents a monetary amount. The value is held as an exact decimal
// so that repeated deposits, trades and valuations never accumulate binary
// floating point noise.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a float amount.
func M(value float64) Money {
	return Money{value: decimal.NewFromFloat(value)}
}

// MD creates a Money from an exact decimal value.
func MD(value decimal.Decimal) Money {
	return Money{value: value}
}

// currency returns the full display currency metadata.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, displayCurrency).Currency()
}

// String formats the amount with the display currency formatter, e.g. "$150.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString formats the amount with an explicit sign, and zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulInt scales the amount by a whole number of shares.
func (m Money) MulInt(n int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(n))}
}

// MarshalJSON writes the amount as a bare number rounded to the currency's
// minor unit.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(int32(m.currency().Fraction)).MarshalJSON()
}

// UnmarshalJSON reads a bare number back into an exact decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
