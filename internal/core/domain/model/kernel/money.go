package kernel

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places a rendered amount carries.
const MoneyPrecision = 2

// Money is an immutable currency amount backed by shopspring/decimal so that
// tariff arithmetic is exact. The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps amount without rounding it.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat is a convenience for literal tariff values.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the exact underlying amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul scales the amount by factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Rounded returns the amount rounded half away from zero to MoneyPrecision places.
func (m Money) Rounded() Money {
	return Money{amount: m.amount.Round(MoneyPrecision)}
}

// String renders the amount with exactly two decimals and no symbol, e.g. "434.38".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyPrecision)
}

// Format renders the amount with a currency prefix and two decimals, e.g.
// "R1234.50". Digits are not grouped.
func (m Money) Format(symbol string) string {
	ac := accounting.Accounting{
		Symbol:    symbol,
		Precision: MoneyPrecision,
		Thousand:  "",
		Decimal:   ".",
	}
	return ac.FormatMoneyBigRat(m.amount.Round(MoneyPrecision).Rat())
}
