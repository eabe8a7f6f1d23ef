package kernel

import (
	"fmt"
	"regexp"

	"exportflow/internal/pkg/errs"
)

// awbPattern matches issued air-waybill numbers: the "DH" origin prefix,
// an eight digit issue date, and a five digit disambiguator.
var awbPattern = regexp.MustCompile(`^DH\d{8}\d{5}$`)

// ErrAWBIsNotConstructed indicates a zero-value AWB that did not pass through
// a constructor.
var ErrAWBIsNotConstructed = errs.NewValueIsRequiredError(
	"AWB must be created via AWBFromString")

// AWB is the unique air-waybill number assigned to a shipment at booking
// confirmation. Once assigned it is immutable for the shipment's lifetime.
type AWB struct {
	value string
}

// AWBFromString validates and wraps an issued AWB number.
func AWBFromString(s string) (AWB, error) {
	if s == "" {
		return AWB{}, errs.NewValueIsRequiredError("awb")
	}
	if !awbPattern.MatchString(s) {
		return AWB{}, errs.NewValueIsInvalidErrorWithCause("awb",
			fmt.Errorf("%q does not match the issued AWB format", s))
	}
	return AWB{value: s}, nil
}

// String returns the AWB number.
func (a AWB) String() string {
	return a.value
}

// IsEqual compares two AWBs by value.
func (a AWB) IsEqual(other AWB) bool {
	return a.value == other.value
}

// Validate returns ErrAWBIsNotConstructed for the zero value, nil otherwise.
func (a AWB) Validate() error {
	if a.value == "" {
		return ErrAWBIsNotConstructed
	}
	return nil
}
