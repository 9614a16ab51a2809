package plates

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInventory is returned when the plate inventory is empty or holds a non-positive weight.
	ErrInvalidInventory = errors.New("invalid plate inventory")
	// ErrInvalidBarWeight is returned when the bar weight is not strictly positive.
	ErrInvalidBarWeight = errors.New("invalid bar weight")
	// ErrRequiredWeightTooLow is returned when the requested weight is lighter than the bar alone.
	ErrRequiredWeightTooLow = errors.New("required weight too low")
	// ErrRequiredWeightTooHigh is returned when the requested weight exceeds bar plus every plate on both sides.
	ErrRequiredWeightTooHigh = errors.New("required weight too high")
)

// RangeError reports a requested weight outside what the selector can load.
// Kind is ErrRequiredWeightTooLow or ErrRequiredWeightTooHigh; Limit is the bar
// weight or the maximum achievable weight respectively.
type RangeError struct {
	Kind     error
	Required float64
	Limit    float64
}

func (e *RangeError) Error() string {
	if errors.Is(e.Kind, ErrRequiredWeightTooLow) {
		return fmt.Sprintf("required weight %.1f is less than the bar weight %.1f", e.Required, e.Limit)
	}
	return fmt.Sprintf("required weight %.1f is higher than the total possible weight %.1f", e.Required, e.Limit)
}

func (e *RangeError) Unwrap() error {
	return e.Kind
}

func emptyInventoryError() error {
	return fmt.Errorf("%w: plate list cannot be empty", ErrInvalidInventory)
}

func invalidPlateError(weight float64) error {
	return fmt.Errorf("%w: %.1f is not a valid plate weight, all plate weights must be greater than zero", ErrInvalidInventory, weight)
}

func invalidBarError(weight float64) error {
	return fmt.Errorf("%w: %.1f is not a valid bar weight, bar weight must be greater than zero", ErrInvalidBarWeight, weight)
}
