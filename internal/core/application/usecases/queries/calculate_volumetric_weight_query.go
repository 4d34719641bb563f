// Package queries contains the read-only use cases of the quote estimator.
// Each query is built from raw visitor input, which its constructor coerces
// with the inputs package, and is answered by a handler wired to the pure
// domain services.
package queries

import (
	"errors"

	"courierquote/internal/core/application/inputs"
	"courierquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculateVolumetricWeightQueryIsNotConstructed = errors.New(
	"CalculateVolumetricWeightQuery must be created via NewCalculateVolumetricWeightQuery constructor",
)

// CalculateVolumetricWeightQuery asks for the volumetric weight of a parcel.
// Missing or unparsable dimensions count as zero; a missing or unparsable
// divisor is left unset so the handler can apply the tariff default.
//
// Example:
//
//	query := NewCalculateVolumetricWeightQuery("50", "40", "25", "")
//	res, err := handler.Handle(ctx, query)
//	fmt.Println(res.Display) // "10"
type CalculateVolumetricWeightQuery struct {
	length  decimal.Decimal
	width   decimal.Decimal
	height  decimal.Decimal
	divisor decimal.NullDecimal

	guard guard.ConstructorGuard
}

// NewCalculateVolumetricWeightQuery coerces raw form values. It never fails.
func NewCalculateVolumetricWeightQuery(length, width, height, divisor string) CalculateVolumetricWeightQuery {
	return CalculateVolumetricWeightQuery{
		length:  inputs.NumberOr(length, decimal.Zero),
		width:   inputs.NumberOr(width, decimal.Zero),
		height:  inputs.NumberOr(height, decimal.Zero),
		divisor: inputs.Optional(divisor),
		guard:   guard.NewConstructorGuard(),
	}
}

func (q CalculateVolumetricWeightQuery) Validate() error {
	return q.guard.Validate(ErrCalculateVolumetricWeightQueryIsNotConstructed)
}

func (q CalculateVolumetricWeightQuery) Length() decimal.Decimal { return q.length }
func (q CalculateVolumetricWeightQuery) Width() decimal.Decimal  { return q.width }
func (q CalculateVolumetricWeightQuery) Height() decimal.Decimal { return q.height }

// Divisor returns the supplied divisor, or fallback when none was given.
func (q CalculateVolumetricWeightQuery) Divisor(fallback decimal.Decimal) decimal.Decimal {
	if q.divisor.Valid {
		return q.divisor.Decimal
	}
	return fallback
}

// CalculateVolumetricWeightQueryResponse is the whole-kilogram volumetric weight.
type CalculateVolumetricWeightQueryResponse struct {
	Weight  decimal.Decimal
	Divisor decimal.Decimal
	// Display is the weight as a whole-number string, e.g. "6".
	Display string
}
