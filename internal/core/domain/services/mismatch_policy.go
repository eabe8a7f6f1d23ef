// Package services contains stateless domain services that coordinate rules
// spanning value objects, such as the intake mismatch policy.
package services

import (
	"math"

	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/pkg/errs"
)

// MismatchPolicy decides whether warehouse-measured values deviate from the
// declared values beyond tolerance. Tolerances are fractions (0.05 = 5%) and
// come from configuration; the engine assumes no default.
type MismatchPolicy struct {
	weightTolerance    float64
	dimensionTolerance float64
}

// NewMismatchPolicy creates a policy with the given tolerance fractions.
// Both must lie in [0, 1).
func NewMismatchPolicy(weightTolerance, dimensionTolerance float64) (MismatchPolicy, error) {
	if weightTolerance < 0 || weightTolerance >= 1 {
		return MismatchPolicy{}, errs.NewValueIsOutOfRangeError("weightTolerance", weightTolerance, 0, 1)
	}
	if dimensionTolerance < 0 || dimensionTolerance >= 1 {
		return MismatchPolicy{}, errs.NewValueIsOutOfRangeError("dimensionTolerance", dimensionTolerance, 0, 1)
	}
	return MismatchPolicy{
		weightTolerance:    weightTolerance,
		dimensionTolerance: dimensionTolerance,
	}, nil
}

// WithinTolerance reports whether the measured weight and dimensions are
// within tolerance of the declared ones. Deviation is relative to the
// declared value.
func (p MismatchPolicy) WithinTolerance(
	declaredWeight, measuredWeight shipment.Weight,
	declaredDims, measuredDims shipment.Dimensions,
) bool {
	if !withinFraction(declaredWeight.Kg(), measuredWeight.Kg(), p.weightTolerance) {
		return false
	}

	pairs := [][2]float64{
		{declaredDims.LengthCm(), measuredDims.LengthCm()},
		{declaredDims.WidthCm(), measuredDims.WidthCm()},
		{declaredDims.HeightCm(), measuredDims.HeightCm()},
	}
	for _, pair := range pairs {
		if !withinFraction(pair[0], pair[1], p.dimensionTolerance) {
			return false
		}
	}
	return true
}

func withinFraction(declared, measured, tolerance float64) bool {
	return math.Abs(measured-declared) <= declared*tolerance
}
