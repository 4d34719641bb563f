package tariff_test

import (
	"testing"

	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTariff_DefaultConfig(t *testing.T) {
	tr, err := tariff.NewTariff(tariff.DefaultConfig())

	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.Equal(t, "R", tr.CurrencySymbol())
	assert.True(t, tr.RoadSurcharge().Equal(decimal.RequireFromString("1.32")))
	assert.True(t, tr.DocumentationFee().IsEqual(kernel.MoneyFromFloat(10)))
	assert.True(t, tr.VolumetricDivisor().Equal(decimal.NewFromInt(5000)))
	assert.True(t, tr.OvernightTierKg().Equal(decimal.NewFromInt(2)))
	assert.True(t, tr.RoadTierKg().Equal(decimal.NewFromInt(10)))
}

func TestTariff_EveryZoneHasARate(t *testing.T) {
	tr := tariff.DefaultTariff()

	for _, zone := range tariff.OvernightZones() {
		rate, err := tr.OvernightRate(zone)
		require.NoError(t, err, zone.String())
		assert.True(t, rate.First.Amount().IsPositive(), zone.String())
	}
	for _, zone := range tariff.RoadZones() {
		rate, err := tr.RoadRate(zone)
		require.NoError(t, err, zone.String())
		assert.True(t, rate.Minimum.Amount().IsPositive(), zone.String())
	}
}

func TestTariff_PublishedRates(t *testing.T) {
	tr := tariff.DefaultTariff()

	majorOther, err := tr.OvernightRate(tariff.MajorOther)
	require.NoError(t, err)
	assert.Equal(t, "140.00", majorOther.First.String())
	assert.Equal(t, "60.00", majorOther.PerKg.String())

	outlying, err := tr.RoadRate(tariff.Outlying)
	require.NoError(t, err)
	assert.Equal(t, "254.00", outlying.Minimum.String())
	assert.Equal(t, "13.50", outlying.PerKg.String())
}

func TestTariff_LookupWithInvalidZone(t *testing.T) {
	tr := tariff.DefaultTariff()

	_, err := tr.OvernightRate(tariff.UnknownOvernightZone)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = tr.RoadRate(tariff.RoadZone(42))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTariff_RejectsIncompleteTables(t *testing.T) {
	cfg := tariff.DefaultConfig()
	delete(cfg.Overnight, tariff.RegionalPE)
	delete(cfg.Road, tariff.George)

	_, err := tariff.NewTariff(cfg)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "regional_pe")
	assert.Contains(t, err.Error(), "george")
}

func TestNewTariff_RejectsInvalidConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tariff.Config)
		want   error
	}{
		{
			name:   "negative rate",
			mutate: func(c *tariff.Config) { c.Road[tariff.Local] = tariff.RoadRate{Minimum: kernel.MoneyFromFloat(-1)} },
			want:   errs.ErrValueIsInvalid,
		},
		{
			name:   "zero surcharge",
			mutate: func(c *tariff.Config) { c.RoadSurcharge = decimal.Zero },
			want:   errs.ErrValueIsOutOfRange,
		},
		{
			name:   "zero divisor",
			mutate: func(c *tariff.Config) { c.VolumetricDivisor = decimal.Zero },
			want:   errs.ErrValueIsOutOfRange,
		},
		{
			name:   "negative fee",
			mutate: func(c *tariff.Config) { c.DocumentationFee = kernel.MoneyFromFloat(-10) },
			want:   errs.ErrValueIsOutOfRange,
		},
		{
			name:   "negative tier",
			mutate: func(c *tariff.Config) { c.RoadTierKg = decimal.NewFromInt(-1) },
			want:   errs.ErrValueIsOutOfRange,
		},
		{
			name:   "blank currency",
			mutate: func(c *tariff.Config) { c.CurrencySymbol = "  " },
			want:   errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tariff.DefaultConfig()
			tt.mutate(&cfg)

			_, err := tariff.NewTariff(cfg)

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTariff_ZeroValueIsNotConstructed(t *testing.T) {
	var tr tariff.Tariff

	require.ErrorIs(t, tr.Validate(), tariff.ErrTariffIsNotConstructed)
}
