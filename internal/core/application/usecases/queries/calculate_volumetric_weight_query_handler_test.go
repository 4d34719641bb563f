package queries_test

import (
	"testing"

	"courierquote/internal/core/application/usecases/queries"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateVolumetricWeightQueryHandler_Handle(t *testing.T) {
	handler := queries.NewCalculateVolumetricWeightQueryHandler(services.NewVolumetricCalculator(), tariff.DefaultTariff())

	tests := []struct {
		name        string
		l, w, h     string
		divisor     string
		wantDisplay string
		wantDivisor string
	}{
		{name: "default divisor", l: "30", w: "30", h: "30", divisor: "", wantDisplay: "6", wantDivisor: "5000"},
		{name: "unparsable divisor falls back", l: "50", w: "40", h: "25", divisor: "n/a", wantDisplay: "10", wantDivisor: "5000"},
		{name: "explicit divisor", l: "50", w: "40", h: "25", divisor: "4000", wantDisplay: "13", wantDivisor: "4000"},
		{name: "zero divisor", l: "50", w: "40", h: "25", divisor: "0", wantDisplay: "0", wantDivisor: "0"},
		{name: "missing dimension", l: "50", w: "", h: "25", divisor: "", wantDisplay: "0", wantDivisor: "5000"},
		{name: "huge exponent dimension", l: "1e200000000", w: "1", h: "1", divisor: "", wantDisplay: "0", wantDivisor: "5000"},
		{name: "huge exponent divisor", l: "50", w: "40", h: "25", divisor: "1e-200000000", wantDisplay: "10", wantDivisor: "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := queries.NewCalculateVolumetricWeightQuery(tt.l, tt.w, tt.h, tt.divisor)

			res, err := handler.Handle(t.Context(), query)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDisplay, res.Display)
			assert.Equal(t, tt.wantDivisor, res.Divisor.String())
		})
	}
}

func TestCalculateVolumetricWeightQuery_NotConstructedViaConstructor(t *testing.T) {
	handler := queries.NewCalculateVolumetricWeightQueryHandler(services.NewVolumetricCalculator(), tariff.DefaultTariff())

	_, err := handler.Handle(t.Context(), queries.CalculateVolumetricWeightQuery{})

	require.ErrorIs(t, err, queries.ErrCalculateVolumetricWeightQueryIsNotConstructed)
}
