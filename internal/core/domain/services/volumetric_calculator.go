package services

import "github.com/shopspring/decimal"

// VolumetricCalculator derives the billing weight implied by a parcel's size.
// Carriers bill whole units, so the result is always a whole number.
type VolumetricCalculator struct{}

func NewVolumetricCalculator() VolumetricCalculator {
	return VolumetricCalculator{}
}

// Compute returns ceil(length × width × height / divisor).
// A non-positive divisor, or a non-positive result, yields zero.
func (VolumetricCalculator) Compute(length, width, height, divisor decimal.Decimal) decimal.Decimal {
	if !divisor.IsPositive() {
		return decimal.Zero
	}

	volume := length.Mul(width).Mul(height)
	if !volume.IsPositive() {
		return decimal.Zero
	}

	whole, remainder := volume.QuoRem(divisor, 0)
	if remainder.IsPositive() {
		whole = whole.Add(decimal.NewFromInt(1))
	}
	return whole
}
