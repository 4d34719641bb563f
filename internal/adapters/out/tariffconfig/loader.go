package tariffconfig

import (
	"errors"
	"fmt"
	"os"

	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Load reads the document at path and overlays it on the published price
// list and override set. An empty path returns the defaults unchanged.
// The returned Config has not been validated; pass it to tariff.NewTariff.
func Load(path string) (tariff.Config, town.OverrideSet, error) {
	if path == "" {
		return tariff.DefaultConfig(), town.DefaultOverrides(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return tariff.Config{}, town.OverrideSet{}, fmt.Errorf("read tariff: %w", err)
	}

	return Parse(raw)
}

// Parse overlays a YAML document on the defaults. Unknown zone keys are
// rejected with errs.ErrObjectNotFound so that a typo cannot silently leave
// a default rate in place.
func Parse(raw []byte) (tariff.Config, town.OverrideSet, error) {
	var dto TariffDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return tariff.Config{}, town.OverrideSet{}, errs.NewValueIsInvalidErrorWithCause("tariff", err)
	}

	cfg := tariff.DefaultConfig()
	overrides := town.DefaultOverrides()

	if dto.CurrencySymbol != "" {
		cfg.CurrencySymbol = dto.CurrencySymbol
	}
	if dto.DocumentationFee.Set {
		cfg.DocumentationFee = kernel.NewMoney(dto.DocumentationFee.Value)
	}
	setDecimal(&cfg.RoadSurcharge, dto.RoadSurcharge)
	setDecimal(&cfg.OvernightTierKg, dto.OvernightTierKg)
	setDecimal(&cfg.RoadTierKg, dto.RoadTierKg)
	setDecimal(&cfg.VolumetricDivisor, dto.VolumetricDivisor)
	if dto.RegionalOverrides != nil {
		overrides = town.NewOverrideSet(*dto.RegionalOverrides...)
	}

	var zoneErrs []error
	for key, rate := range dto.Overnight {
		zone, err := tariff.ParseOvernightZone(key)
		if err != nil {
			zoneErrs = append(zoneErrs, fmt.Errorf("overnight: %w", err))
			continue
		}
		current := cfg.Overnight[zone]
		setMoney(&current.First, rate.First)
		setMoney(&current.PerKg, rate.PerKg)
		cfg.Overnight[zone] = current
	}
	for key, rate := range dto.Road {
		zone, err := tariff.ParseRoadZone(key)
		if err != nil {
			zoneErrs = append(zoneErrs, fmt.Errorf("road: %w", err))
			continue
		}
		current := cfg.Road[zone]
		setMoney(&current.Minimum, rate.Minimum)
		setMoney(&current.PerKg, rate.PerKg)
		cfg.Road[zone] = current
	}
	if err := errors.Join(zoneErrs...); err != nil {
		return tariff.Config{}, town.OverrideSet{}, err
	}

	return cfg, overrides, nil
}

func setDecimal(dst *decimal.Decimal, n Number) {
	if n.Set {
		*dst = n.Value
	}
}

func setMoney(dst *kernel.Money, n Number) {
	if n.Set {
		*dst = kernel.NewMoney(n.Value)
	}
}
