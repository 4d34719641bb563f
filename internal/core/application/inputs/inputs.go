// Package inputs turns raw form values into numbers for the pure domain
// services. Estimator inputs fail open: anything missing or unparsable is
// replaced by a documented default instead of raising an error.
//
// Default substitution rules:
//   - dimensions and weights: 0
//   - volumetric divisor: the tariff's default divisor
//   - non-finite values (NaN, ±Inf) count as unparsable
//   - values beyond MaxMagnitude, or written with an exponent beyond
//     MaxExponent, count as unparsable
package inputs

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxExponent bounds the decimal exponent of a parsed value. Rescaling
	// "1e200000000" would otherwise build a 200-million-digit integer.
	MaxExponent = 32
	// MaxInputLength bounds the raw text accepted as a number.
	MaxInputLength = 64
)

// MaxMagnitude is the largest absolute value accepted, in any unit.
var MaxMagnitude = decimal.NewFromInt(1_000_000_000)

// Number parses raw as a decimal. ok is false when raw is blank, not a
// finite decimal number, or out of bounds.
func Number(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > MaxInputLength {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	// The exponent must be checked before any comparison: Cmp rescales too.
	if exp := value.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Zero, false
	}
	if value.Abs().GreaterThan(MaxMagnitude) {
		return decimal.Zero, false
	}
	return value, true
}

// NumberOr parses raw, substituting fallback when it is missing or unparsable.
func NumberOr(raw string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := Number(raw); ok {
		return value
	}
	return fallback
}

// Optional parses raw into a NullDecimal that is Valid only when raw holds a number.
func Optional(raw string) decimal.NullDecimal {
	value, ok := Number(raw)
	return decimal.NullDecimal{Decimal: value, Valid: ok}
}

// Text trims surrounding whitespace from a free-text field.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}
