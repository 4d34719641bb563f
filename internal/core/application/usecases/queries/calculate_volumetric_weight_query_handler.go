package queries

import (
	"context"

	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/services"
)

// CalculateVolumetricWeightQueryHandler answers volumetric weight queries.
type CalculateVolumetricWeightQueryHandler struct {
	calculator services.VolumetricCalculator
	tariff     tariff.Tariff
}

// NewCalculateVolumetricWeightQueryHandler needs the tariff for its default divisor.
func NewCalculateVolumetricWeightQueryHandler(
	calculator services.VolumetricCalculator,
	t tariff.Tariff,
) CalculateVolumetricWeightQueryHandler {
	return CalculateVolumetricWeightQueryHandler{calculator: calculator, tariff: t}
}

func (h CalculateVolumetricWeightQueryHandler) Handle(
	_ context.Context,
	query CalculateVolumetricWeightQuery,
) (CalculateVolumetricWeightQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateVolumetricWeightQueryResponse{}, err
	}
	if err := h.tariff.Validate(); err != nil {
		return CalculateVolumetricWeightQueryResponse{}, err
	}

	divisor := query.Divisor(h.tariff.VolumetricDivisor())
	weight := h.calculator.Compute(query.Length(), query.Width(), query.Height(), divisor)

	return CalculateVolumetricWeightQueryResponse{
		Weight:  weight,
		Divisor: divisor,
		Display: weight.StringFixed(0),
	}, nil
}
