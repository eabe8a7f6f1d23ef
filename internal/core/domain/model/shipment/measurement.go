package shipment

import (
	"exportflow/internal/pkg/errs"
)

const (
	maxWeightKg     = 1000.0
	maxDimensionCm  = 500.0
	minMeasuredUnit = 0.0
)

// Weight is a parcel weight in kilograms. Declared at booking, measured at
// warehouse intake.
type Weight struct {
	kg float64
}

// NewWeight validates and wraps a weight in kilograms.
func NewWeight(kg float64) (Weight, error) {
	if kg <= minMeasuredUnit || kg > maxWeightKg {
		return Weight{}, errs.NewValueIsOutOfRangeError("weightKg", kg, minMeasuredUnit, maxWeightKg)
	}
	return Weight{kg: kg}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// Validate returns an error for the zero value.
func (w Weight) Validate() error {
	if w.kg <= minMeasuredUnit {
		return errs.NewValueIsRequiredError("weight")
	}
	return nil
}

// Dimensions are parcel length, width and height in centimeters.
type Dimensions struct {
	lengthCm float64
	widthCm  float64
	heightCm float64
}

// NewDimensions validates and wraps parcel dimensions in centimeters.
func NewDimensions(lengthCm, widthCm, heightCm float64) (Dimensions, error) {
	for name, v := range map[string]float64{
		"lengthCm": lengthCm,
		"widthCm":  widthCm,
		"heightCm": heightCm,
	} {
		if v <= minMeasuredUnit || v > maxDimensionCm {
			return Dimensions{}, errs.NewValueIsOutOfRangeError(name, v, minMeasuredUnit, maxDimensionCm)
		}
	}
	return Dimensions{lengthCm: lengthCm, widthCm: widthCm, heightCm: heightCm}, nil
}

// LengthCm returns the length in centimeters.
func (d Dimensions) LengthCm() float64 { return d.lengthCm }

// WidthCm returns the width in centimeters.
func (d Dimensions) WidthCm() float64 { return d.widthCm }

// HeightCm returns the height in centimeters.
func (d Dimensions) HeightCm() float64 { return d.heightCm }

// Validate returns an error for the zero value.
func (d Dimensions) Validate() error {
	if d.lengthCm <= minMeasuredUnit || d.widthCm <= minMeasuredUnit || d.heightCm <= minMeasuredUnit {
		return errs.NewValueIsRequiredError("dimensions")
	}
	return nil
}
