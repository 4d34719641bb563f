package services_test

import (
	"math"
	"testing"

	"courierquote/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVolumetricCalculator_Compute(t *testing.T) {
	calc := services.NewVolumetricCalculator()

	tests := []struct {
		name             string
		l, w, h, divisor string
		want             string
	}{
		{name: "exact", l: "50", w: "40", h: "25", divisor: "5000", want: "10"},
		{name: "rounds up", l: "30", w: "30", h: "30", divisor: "5000", want: "6"},
		{name: "tiny parcel rounds up to one", l: "1", w: "1", h: "1", divisor: "5000", want: "1"},
		{name: "fractional dimensions", l: "10.5", w: "20.25", h: "5", divisor: "4000", want: "1"},
		{name: "zero dimension", l: "0", w: "40", h: "25", divisor: "5000", want: "0"},
		{name: "zero divisor", l: "50", w: "40", h: "25", divisor: "0", want: "0"},
		{name: "negative divisor", l: "50", w: "40", h: "25", divisor: "-5000", want: "0"},
		{name: "negative volume", l: "-50", w: "40", h: "25", divisor: "5000", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(d(tt.l), d(tt.w), d(tt.h), d(tt.divisor))

			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestVolumetricCalculator_MatchesCeilingForNonNegativeInputs(t *testing.T) {
	calc := services.NewVolumetricCalculator()

	for _, l := range []int64{0, 1, 7, 33, 120} {
		for _, w := range []int64{1, 13, 60} {
			for _, h := range []int64{2, 45} {
				for _, div := range []int64{1, 4000, 5000, 6000} {
					want := int64(math.Ceil(float64(l*w*h) / float64(div)))

					got := calc.Compute(
						decimal.NewFromInt(l), decimal.NewFromInt(w), decimal.NewFromInt(h), decimal.NewFromInt(div))

					assert.Equal(t, want, got.IntPart())
					assert.True(t, got.Equal(got.Truncate(0)), "result must be whole")
				}
			}
		}
	}
}
