package villain

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
)

// HolonomyUpdate changes the winding sectors of n, which no local update can
// reach. Every strip of parallel links (the t-links on one time slice, or
// the x-links on one spatial slice) is offered one change h and accepted or
// rejected as a unit. A constant shift along a strip has vanishing curl, so
// the constraint holds for every W.
type HolonomyUpdate struct {
	generator.Base
	a        *action.Villain
	interval int
	strips   [][]int
	index    []int
}

var _ generator.Generator = (*HolonomyUpdate)(nil)

// NewHolonomyUpdate draws h from {±1, …, ±interval}.
func NewHolonomyUpdate(a action.Action, interval int, opts ...generator.Option) (*HolonomyUpdate, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: h interval %d", generator.ErrBadInterval, interval)
	}
	strips := Strips(v.Lattice())
	index := make([]int, len(strips))
	for i := range index {
		index[i] = i
	}
	return &HolonomyUpdate{
		Base:     generator.NewBase(opts...),
		a:        v,
		interval: interval,
		strips:   strips,
		index:    index,
	}, nil
}

// Strips lists the t-links of every time slice followed by the x-links of
// every spatial slice.
// Complexity: O(N²).
func Strips(l *lattice.Lattice) [][]int {
	strips := make([][]int, 0, 2*l.N)
	for t := 0; t < l.N; t++ {
		strip := make([]int, l.N)
		for x := range strip {
			strip[x] = l.Link(lattice.T, l.Site(t, x))
		}
		strips = append(strips, strip)
	}
	for x := 0; x < l.N; x++ {
		strip := make([]int, l.N)
		for t := range strip {
			strip[t] = l.Link(lattice.X, l.Site(t, x))
		}
		strips = append(strips, strip)
	}
	return strips
}

func (u *HolonomyUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	kappa := u.a.Kappa()
	x := u.a.Links(out)

	accepted, acceptance, err := generator.SweepClass(&u.Base, u.index,
		func(int) int { return u.RNG.Nonzero(u.interval) },
		func(i, h int) float64 {
			var dS float64
			for _, link := range u.strips[i] {
				dS += villainCost(kappa, x[link], -twoPi*float64(h))
			}
			return dS
		},
		func(i, h int) {
			for _, link := range u.strips[i] {
				out.N[link] += h
			}
		},
	)
	if err != nil {
		return action.Configuration{}, err
	}
	u.Record(len(u.strips), accepted, acceptance)
	return out, nil
}

func (u *HolonomyUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *HolonomyUpdate) Report() string                               { return u.Summary("holonomy") }
func (u *HolonomyUpdate) String() string                               { return "HolonomyUpdate" }
