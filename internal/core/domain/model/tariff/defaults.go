package tariff

import (
	"courierquote/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DefaultConfig returns the published price list.
func DefaultConfig() Config {
	return Config{
		Overnight: map[OvernightZone]OvernightRate{
			MajorCT:       {First: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(72)},
			MajorPE:       {First: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(72)},
			MajorEL:       {First: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(72)},
			MajorOther:    {First: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(60)},
			RegionalCT:    {First: kernel.MoneyFromFloat(240), PerKg: kernel.MoneyFromFloat(72)},
			RegionalPE:    {First: kernel.MoneyFromFloat(240), PerKg: kernel.MoneyFromFloat(72)},
			RegionalEL:    {First: kernel.MoneyFromFloat(240), PerKg: kernel.MoneyFromFloat(72)},
			RegionalOther: {First: kernel.MoneyFromFloat(240), PerKg: kernel.MoneyFromFloat(72)},
		},
		Road: map[RoadZone]RoadRate{
			Local:         {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(4)},
			Durban:        {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(6.5)},
			CapeTown:      {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(8.7)},
			PortElizabeth: {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(9.5)},
			EastLondon:    {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(9.5)},
			Bloemfontein:  {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(9.5)},
			George:        {Minimum: kernel.MoneyFromFloat(140), PerKg: kernel.MoneyFromFloat(13.5)},
			Outlying:      {Minimum: kernel.MoneyFromFloat(254), PerKg: kernel.MoneyFromFloat(13.5)},
		},
		OvernightTierKg:   decimal.NewFromInt(2),
		RoadTierKg:        decimal.NewFromInt(10),
		RoadSurcharge:     decimal.RequireFromString("1.32"),
		DocumentationFee:  kernel.MoneyFromFloat(10),
		VolumetricDivisor: decimal.NewFromInt(5000),
		CurrencySymbol:    "R",
	}
}

// DefaultTariff builds the published price list. It panics only if
// DefaultConfig itself is incomplete.
func DefaultTariff() Tariff {
	t, err := NewTariff(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return t
}
