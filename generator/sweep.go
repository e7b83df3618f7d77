package generator

import (
	"github.com/sourcegraph/conc/iter"
)

// Sweeper applies a kernel to every element of an update class. Elements of
// one class share no link, so the kernel may run them concurrently as long
// as it writes only to slots indexed by its own element.
type Sweeper struct {
	parallelism int
}

// NewSweeper bounds the number of goroutines per class; p ≤ 1 is serial.
func NewSweeper(p int) Sweeper {
	return Sweeper{parallelism: p}
}

// Sweep calls kernel(i, class[i]) for every element.
// Complexity: O(len(class)) kernel calls.
func (sw Sweeper) Sweep(class []int, kernel func(i, element int)) {
	if sw.parallelism <= 1 || len(class) < 2 {
		for i, e := range class {
			kernel(i, e)
		}
		return
	}
	iter.Iterator[int]{MaxGoroutines: sw.parallelism}.ForEachIdx(class, func(i int, e *int) {
		kernel(i, *e)
	})
}

// SweepClass proposes one change per element of class and decides them all
// against the same starting state.
//
// draw is called serially per element, followed by the element's uniform
// deviate, so the stream is consumed in the same order whatever the
// parallelism. cost runs in the sweeper and must only read shared state.
// apply is called serially for every accepted element.
//
// Returns the number accepted and the summed Metropolis probability.
// Complexity: O(len(class)) draws, costs and applies.
func SweepClass[P any](b *Base, class []int,
	draw func(element int) P,
	cost func(element int, proposal P) float64,
	apply func(element int, proposal P),
) (accepted int, acceptance float64, err error) {
	proposals := make([]P, len(class))
	uniform := make([]float64, len(class))
	for i, e := range class {
		proposals[i] = draw(e)
		uniform[i] = b.RNG.Float64()
	}

	probability := make([]float64, len(class))
	errs := make([]error, len(class))
	b.Sweeper.Sweep(class, func(i, e int) {
		probability[i], errs[i] = Metropolis(cost(e, proposals[i]))
	})

	for i, e := range class {
		if errs[i] != nil {
			return 0, 0, errs[i]
		}
		acceptance += probability[i]
		if uniform[i] < probability[i] {
			apply(e, proposals[i])
			accepted++
		}
	}
	return accepted, acceptance, nil
}

// DifferenceOfSquares returns coupling · ((x + dx)² − x²) without cancellation.
func DifferenceOfSquares(coupling, x, dx float64) float64 {
	return coupling * dx * (2*x + dx)
}
