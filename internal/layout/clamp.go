package layout

import "golang.org/x/exp/constraints"

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp[T constraints.Integer](v, minVal, maxVal T) T {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// nonNegative clamps degenerate sizes to zero before they reach a surface.
func nonNegative[T constraints.Integer](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
