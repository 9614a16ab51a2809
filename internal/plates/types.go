package plates

// Result is the outcome of a single selection. Plates lists the weights loaded
// on one side of the bar, heaviest first; the other side mirrors it.
// WeightAchieved is the bar plus both sides.
type Result struct {
	Plates         []float64
	WeightAchieved float64
}

// PlateCount is one line of a breakdown: a plate weight and how many of that
// plate go on the bar across both sides.
type PlateCount struct {
	Weight float64
	Count  int
}

// PerSide returns the weight loaded on a single side.
func (r Result) PerSide() float64 {
	var sum float64
	for _, p := range r.Plates {
		sum += p
	}
	return sum
}

// Shortfall returns how far the result falls below required. It is zero for an exact match.
func (r Result) Shortfall(required float64) float64 {
	return required - r.WeightAchieved
}

// Breakdown groups the selected plates by weight, heaviest first, doubling each
// count for the mirrored side. Weights are compared exactly; they are copied
// straight from the inventory and never recomputed.
func (r Result) Breakdown() []PlateCount {
	out := make([]PlateCount, 0, len(r.Plates))
	for _, p := range r.Plates {
		if n := len(out); n > 0 && out[n-1].Weight == p {
			out[n-1].Count += platesPerBar
			continue
		}
		out = append(out, PlateCount{Weight: p, Count: platesPerBar})
	}
	return out
}
