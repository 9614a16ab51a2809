package plates

import (
	"math"
	"slices"
)

// platesPerBar is the number of sleeves each selected plate is loaded onto.
const platesPerBar = 2

// Selector picks plates for a bar from a fixed inventory. It is immutable after
// construction and safe for concurrent use.
type Selector struct {
	inventory []float64 // ascending
	barWeight float64
	maxWeight float64
}

// New validates the inventory and bar weight and returns a Selector. The
// inventory may contain duplicates; each entry is one plate that can be loaded
// on each side. The caller's slice is copied, not sorted in place.
func New(inventory []float64, barWeight float64) (*Selector, error) {
	if len(inventory) == 0 {
		return nil, emptyInventoryError()
	}
	for _, p := range inventory {
		if p <= 0 || math.IsNaN(p) {
			return nil, invalidPlateError(p)
		}
	}
	if barWeight <= 0 || math.IsNaN(barWeight) {
		return nil, invalidBarError(barWeight)
	}

	sorted := slices.Clone(inventory)
	slices.Sort(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}

	return &Selector{
		inventory: sorted,
		barWeight: barWeight,
		maxWeight: barWeight + sum*platesPerBar,
	}, nil
}

// Select loads the bar toward required using a single descending pass over the
// inventory: each plate is taken if it still fits in the remaining per-side
// target and skipped otherwise. This is not a subset-sum or minimum-count
// solver; when the target is not reachable the result falls short, never over.
func (s *Selector) Select(required float64) (Result, error) {
	if required < s.barWeight || math.IsNaN(required) {
		return Result{}, &RangeError{Kind: ErrRequiredWeightTooLow, Required: required, Limit: s.barWeight}
	}
	if required > s.maxWeight {
		return Result{}, &RangeError{Kind: ErrRequiredWeightTooHigh, Required: required, Limit: s.maxWeight}
	}

	remaining := (required - s.barWeight) / platesPerBar
	chosen := make([]float64, 0, len(s.inventory))
	var perSide float64

	for i := len(s.inventory) - 1; i >= 0; i-- {
		if remaining == 0 {
			break
		}
		p := s.inventory[i]
		if p <= remaining {
			chosen = append(chosen, p)
			remaining -= p
			perSide += p
		}
	}

	return Result{
		Plates:         chosen,
		WeightAchieved: s.barWeight + perSide*platesPerBar,
	}, nil
}

// BarWeight returns the unloaded bar weight.
func (s *Selector) BarWeight() float64 {
	return s.barWeight
}

// MaxWeight returns the heaviest load possible: the bar plus every plate on both sides.
func (s *Selector) MaxWeight() float64 {
	return s.maxWeight
}

// Inventory returns a copy of the plate inventory in ascending order.
func (s *Selector) Inventory() []float64 {
	return slices.Clone(s.inventory)
}
