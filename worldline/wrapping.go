package worldline

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
)

// WrappingUpdate changes the winding of m. Every straight cycle (the t-links
// at one x, or the x-links at one t) is offered one change c and accepted
// or rejected as a unit; a constant shift along a cycle is divergence free.
type WrappingUpdate struct {
	generator.Base
	a        *action.Worldline
	interval int
	cycles   [][]int
	index    []int
}

var _ generator.Generator = (*WrappingUpdate)(nil)

// NewWrappingUpdate draws changes from {±1, …, ±interval}.
func NewWrappingUpdate(a action.Action, interval int, opts ...generator.Option) (*WrappingUpdate, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: wrapping interval %d", generator.ErrBadInterval, interval)
	}
	cycles := Cycles(w.Lattice())
	index := make([]int, len(cycles))
	for i := range index {
		index[i] = i
	}
	return &WrappingUpdate{
		Base:     generator.NewBase(opts...),
		a:        w,
		interval: interval,
		cycles:   cycles,
		index:    index,
	}, nil
}

// Cycles lists the temporal cycle at every x followed by the spatial cycle
// at every t.
// Complexity: O(N²).
func Cycles(l *lattice.Lattice) [][]int {
	cycles := make([][]int, 0, 2*l.N)
	for x := 0; x < l.N; x++ {
		cycle := make([]int, l.N)
		for t := range cycle {
			cycle[t] = l.Link(lattice.T, l.Site(t, x))
		}
		cycles = append(cycles, cycle)
	}
	for t := 0; t < l.N; t++ {
		cycle := make([]int, l.N)
		for x := range cycle {
			cycle[x] = l.Link(lattice.X, l.Site(t, x))
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

func (u *WrappingUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	kappa := u.a.Kappa()
	y := u.a.Links(out)

	accepted, acceptance, err := generator.SweepClass(&u.Base, u.index,
		func(int) int { return u.RNG.Nonzero(u.interval) },
		func(i, c int) float64 {
			var dS float64
			for _, link := range u.cycles[i] {
				dS += worldlineCost(kappa, y[link], float64(c))
			}
			return dS
		},
		func(i, c int) {
			for _, link := range u.cycles[i] {
				out.M[link] += c
			}
		},
	)
	if err != nil {
		return action.Configuration{}, err
	}
	u.Record(len(u.cycles), accepted, acceptance)
	return out, nil
}

func (u *WrappingUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *WrappingUpdate) Report() string                               { return u.Summary("single-wrapping") }
func (u *WrappingUpdate) String() string                               { return "WrappingUpdate" }
