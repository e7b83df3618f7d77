package generator

import "math"

// Metropolis returns the acceptance probability min(1, e^(−dS)).
// +Inf is a forbidden transition and yields 0; −Inf yields 1.
// A NaN difference is a defect and returns ErrNaN.
// Complexity: O(1).
func Metropolis(dS float64) (float64, error) {
	if math.IsNaN(dS) {
		return 0, ErrNaN
	}
	if dS <= 0 {
		return 1, nil
	}
	return math.Exp(-dS), nil
}
