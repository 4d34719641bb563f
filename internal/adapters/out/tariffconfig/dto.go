// Package tariffconfig loads a price list from a YAML document. Every key is
// optional; whatever the document leaves out keeps its published default.
//
//	currency_symbol: R
//	documentation_fee: 10
//	road_surcharge: 1.32
//	overnight_tier_kg: 2
//	road_tier_kg: 10
//	volumetric_divisor: 5000
//	regional_overrides: [somerset west, somerset-wes]
//	overnight:
//	  major_other: {first: 140, per_kg: 60}
//	road:
//	  outlying: {minimum: 254, per_kg: 13.5}
package tariffconfig

import (
	"courierquote/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Number is a YAML scalar decoded straight into a decimal, so that values
// such as 8.7 never pass through a float.
type Number struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errs.NewValueIsInvalidError(node.Value)
	}

	value, err := decimal.NewFromString(node.Value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(node.Value, err)
	}

	n.Value = value
	n.Set = true
	return nil
}

// OvernightRateDTO overrides one overnight zone.
type OvernightRateDTO struct {
	First Number `yaml:"first"`
	PerKg Number `yaml:"per_kg"`
}

// RoadRateDTO overrides one road zone.
type RoadRateDTO struct {
	Minimum Number `yaml:"minimum"`
	PerKg   Number `yaml:"per_kg"`
}

// TariffDTO is the whole document.
type TariffDTO struct {
	CurrencySymbol    string                      `yaml:"currency_symbol"`
	DocumentationFee  Number                      `yaml:"documentation_fee"`
	RoadSurcharge     Number                      `yaml:"road_surcharge"`
	OvernightTierKg   Number                      `yaml:"overnight_tier_kg"`
	RoadTierKg        Number                      `yaml:"road_tier_kg"`
	VolumetricDivisor Number                      `yaml:"volumetric_divisor"`
	RegionalOverrides *[]string                   `yaml:"regional_overrides"`
	Overnight         map[string]OvernightRateDTO `yaml:"overnight"`
	Road              map[string]RoadRateDTO      `yaml:"road"`
}
