package tariff

import (
	"errors"
	"fmt"
	"strings"

	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/pkg/errs"
	"courierquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTariffIsNotConstructed is returned when a zero-value Tariff is used.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// OvernightRate prices an overnight zone: First covers everything up to the
// first tier, PerKg applies to each kilogram beyond it.
type OvernightRate struct {
	First kernel.Money
	PerKg kernel.Money
}

// RoadRate prices a road zone: Minimum covers everything up to the minimum
// tier, PerKg applies to each kilogram beyond it.
type RoadRate struct {
	Minimum kernel.Money
	PerKg   kernel.Money
}

// Config is the raw, externally adjustable price list. It is turned into a
// Tariff by NewTariff, which checks that it is complete.
type Config struct {
	Overnight map[OvernightZone]OvernightRate
	Road      map[RoadZone]RoadRate

	// OvernightTierKg is the weight covered by OvernightRate.First.
	OvernightTierKg decimal.Decimal
	// RoadTierKg is the weight covered by RoadRate.Minimum.
	RoadTierKg decimal.Decimal
	// RoadSurcharge multiplies the road subtotal before the documentation fee.
	RoadSurcharge decimal.Decimal
	// DocumentationFee is added once to every non-zero quote.
	DocumentationFee kernel.Money
	// VolumetricDivisor is used when a volumetric request omits its divisor.
	VolumetricDivisor decimal.Decimal
	CurrencySymbol    string
}

// Tariff is a validated, immutable price list. Every OvernightZone and
// RoadZone has a rate, so lookups by a valid zone cannot miss.
//
// Example:
//
//	t, err := tariff.NewTariff(tariff.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	rate, _ := t.OvernightRate(tariff.MajorOther) // First: 140, PerKg: 60
type Tariff struct {
	overnight [RegionalOther + 1]OvernightRate
	road      [Outlying + 1]RoadRate

	overnightTierKg   decimal.Decimal
	roadTierKg        decimal.Decimal
	roadSurcharge     decimal.Decimal
	documentationFee  kernel.Money
	volumetricDivisor decimal.Decimal
	currencySymbol    string

	guard guard.ConstructorGuard
}

// NewTariff validates cfg and builds a Tariff. All problems are reported
// together via errors.Join.
func NewTariff(cfg Config) (Tariff, error) {
	t := Tariff{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setOvernight(cfg.Overnight),
		t.setRoad(cfg.Road),
		t.setTiers(cfg.OvernightTierKg, cfg.RoadTierKg),
		t.setRoadSurcharge(cfg.RoadSurcharge),
		t.setDocumentationFee(cfg.DocumentationFee),
		t.setVolumetricDivisor(cfg.VolumetricDivisor),
		t.setCurrencySymbol(cfg.CurrencySymbol),
	); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

// Validate ensures the tariff was built by NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// OvernightRate returns the rate for zone.
func (t Tariff) OvernightRate(zone OvernightZone) (OvernightRate, error) {
	if err := zone.Validate(); err != nil {
		return OvernightRate{}, err
	}
	return t.overnight[zone], nil
}

// RoadRate returns the rate for zone.
func (t Tariff) RoadRate(zone RoadZone) (RoadRate, error) {
	if err := zone.Validate(); err != nil {
		return RoadRate{}, err
	}
	return t.road[zone], nil
}

func (t Tariff) OvernightTierKg() decimal.Decimal   { return t.overnightTierKg }
func (t Tariff) RoadTierKg() decimal.Decimal        { return t.roadTierKg }
func (t Tariff) RoadSurcharge() decimal.Decimal     { return t.roadSurcharge }
func (t Tariff) DocumentationFee() kernel.Money     { return t.documentationFee }
func (t Tariff) VolumetricDivisor() decimal.Decimal { return t.volumetricDivisor }
func (t Tariff) CurrencySymbol() string             { return t.currencySymbol }

func (t *Tariff) setOvernight(rates map[OvernightZone]OvernightRate) error {
	var problems []error
	for _, zone := range OvernightZones() {
		rate, ok := rates[zone]
		if !ok {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"overnight_rates", fmt.Errorf("no rate for zone %s", zone)))
			continue
		}
		if rate.First.IsNegative() || rate.PerKg.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"overnight_rates", fmt.Errorf("negative rate for zone %s", zone)))
			continue
		}
		t.overnight[zone] = rate
	}
	return errors.Join(problems...)
}

func (t *Tariff) setRoad(rates map[RoadZone]RoadRate) error {
	var problems []error
	for _, zone := range RoadZones() {
		rate, ok := rates[zone]
		if !ok {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"road_rates", fmt.Errorf("no rate for zone %s", zone)))
			continue
		}
		if rate.Minimum.IsNegative() || rate.PerKg.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"road_rates", fmt.Errorf("negative rate for zone %s", zone)))
			continue
		}
		t.road[zone] = rate
	}
	return errors.Join(problems...)
}

func (t *Tariff) setTiers(overnightKg, roadKg decimal.Decimal) error {
	var problems []error
	if overnightKg.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("overnight_tier_kg", overnightKg, 0, "∞"))
	}
	if roadKg.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("road_tier_kg", roadKg, 0, "∞"))
	}
	t.overnightTierKg = overnightKg
	t.roadTierKg = roadKg
	return errors.Join(problems...)
}

func (t *Tariff) setRoadSurcharge(surcharge decimal.Decimal) error {
	if !surcharge.IsPositive() {
		return errs.NewValueIsOutOfRangeError("road_surcharge", surcharge, "0 (exclusive)", "∞")
	}
	t.roadSurcharge = surcharge
	return nil
}

func (t *Tariff) setDocumentationFee(fee kernel.Money) error {
	if fee.IsNegative() {
		return errs.NewValueIsOutOfRangeError("documentation_fee", fee, 0, "∞")
	}
	t.documentationFee = fee
	return nil
}

func (t *Tariff) setVolumetricDivisor(divisor decimal.Decimal) error {
	if !divisor.IsPositive() {
		return errs.NewValueIsOutOfRangeError("volumetric_divisor", divisor, "0 (exclusive)", "∞")
	}
	t.volumetricDivisor = divisor
	return nil
}

func (t *Tariff) setCurrencySymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return errs.NewValueIsRequiredError("currency_symbol")
	}
	t.currencySymbol = symbol
	return nil
}
