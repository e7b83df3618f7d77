package worm

import (
	"fmt"
	"math"
)

// Lengths accumulates worm-length statistics for reports. The fields are
// exported so updaters can persist them.
type Lengths struct {
	Count int
	Sum   float64
	SumSq float64
	Max   int
}

// Record books one closed worm.
func (w *Lengths) Record(length int) {
	w.Count++
	w.Sum += float64(length)
	w.SumSq += float64(length) * float64(length)
	if length > w.Max {
		w.Max = length
	}
}

// Mean returns the average length, 0 before the first worm.
func (w Lengths) Mean() float64 {
	if w.Count == 0 {
		return 0
	}
	return w.Sum / float64(w.Count)
}

// Std returns the population standard deviation of the lengths.
func (w Lengths) Std() float64 {
	if w.Count == 0 {
		return 0
	}
	mean := w.Mean()
	return math.Sqrt(math.Max(0, w.SumSq/float64(w.Count)-mean*mean))
}

// Report formats the statistics.
func (w Lengths) Report() string {
	return fmt.Sprintf("There were %d worms.\nWorm lengths:\n    mean %.6f\n    std  %.6f\n    max  %d",
		w.Count, w.Mean(), w.Std(), w.Max)
}
