package services

import (
	"errors"

	"courierquote/internal/core/domain/model/area"
	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// PriceEngine prices shipments against a tariff.
//
// Business rules:
//   - The chargeable weight is max(actual, volumetric, 0)
//   - A zero chargeable weight costs exactly zero: no documentation fee
//   - Overnight: the first-tier fee covers up to the overnight tier, then per kg
//   - Road: the minimum covers up to the road tier, then per kg, and the road
//     subtotal is multiplied by the road surcharge
//   - The documentation fee is added after any surcharge
//
// Example:
//
//	engine := NewPriceEngine(tariff.DefaultTariff())
//	total, err := engine.Price(tariff.Overnight, decimal.NewFromInt(5), decimal.Zero, state)
//	// regional_other: 240 + 3×72 + 10 = 466.00
type PriceEngine struct {
	tariff tariff.Tariff
}

func NewPriceEngine(t tariff.Tariff) PriceEngine {
	return PriceEngine{tariff: t}
}

// ChargeableWeight returns the greater of actual and volumetric weight, floored at zero.
func (e PriceEngine) ChargeableWeight(actual, volumetric decimal.Decimal) decimal.Decimal {
	return decimal.Max(actual, volumetric, decimal.Zero)
}

// Price returns the exact total for the shipment. Errors are reserved for
// values that were not built through their constructors or an unknown service.
func (e PriceEngine) Price(
	service tariff.ServiceType,
	actual, volumetric decimal.Decimal,
	state area.State,
) (kernel.Money, error) {
	if err := errors.Join(e.tariff.Validate(), service.Validate(), state.Validate()); err != nil {
		return kernel.Money{}, err
	}

	chargeable := e.ChargeableWeight(actual, volumetric)
	if !chargeable.IsPositive() {
		return kernel.ZeroMoney(), nil
	}

	var (
		subtotal kernel.Money
		err      error
	)
	switch service {
	case tariff.Overnight:
		subtotal, err = e.overnightSubtotal(chargeable, state.Overnight())
	case tariff.Road:
		subtotal, err = e.roadSubtotal(chargeable, state.Road())
	}
	if err != nil {
		return kernel.Money{}, err
	}

	return subtotal.Add(e.tariff.DocumentationFee()), nil
}

func (e PriceEngine) overnightSubtotal(chargeable decimal.Decimal, zone tariff.OvernightZone) (kernel.Money, error) {
	rate, err := e.tariff.OvernightRate(zone)
	if err != nil {
		return kernel.Money{}, err
	}

	tier := e.tariff.OvernightTierKg()
	if chargeable.LessThanOrEqual(tier) {
		return rate.First, nil
	}
	return rate.First.Add(rate.PerKg.Mul(chargeable.Sub(tier))), nil
}

func (e PriceEngine) roadSubtotal(chargeable decimal.Decimal, zone tariff.RoadZone) (kernel.Money, error) {
	rate, err := e.tariff.RoadRate(zone)
	if err != nil {
		return kernel.Money{}, err
	}

	tier := e.tariff.RoadTierKg()
	subtotal := rate.Minimum
	if chargeable.GreaterThan(tier) {
		subtotal = subtotal.Add(rate.PerKg.Mul(chargeable.Sub(tier)))
	}
	return subtotal.Mul(e.tariff.RoadSurcharge()), nil
}
