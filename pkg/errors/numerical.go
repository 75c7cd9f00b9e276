package errors

import (
	"math"
)

// CheckFinite returns a ValidationError when value is NaN or infinite.
// Thresholds compared against entropy or information gain must be finite,
// otherwise every comparison silently evaluates to false.
func CheckFinite(param string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValidationError(param, "must be a finite number", value)
	}
	return nil
}

// CheckNonNegative returns a ValidationError when value is negative.
func CheckNonNegative(param string, value int) error {
	if value < 0 {
		return NewValidationError(param, "must be non-negative", value)
	}
	return nil
}
