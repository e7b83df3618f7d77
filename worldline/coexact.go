package worldline

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// CoexactUpdate shifts m by a coexact form δt, t an integer 2-form supported
// on one update class. δ(δt) = 0, so the constraint is kept by construction.
type CoexactUpdate struct {
	generator.Base
	a        *action.Worldline
	interval int
	classes  [][]int
}

var _ generator.Generator = (*CoexactUpdate)(nil)

// NewCoexactUpdate draws t from {±1, …, ±interval}.
func NewCoexactUpdate(a action.Action, interval int, opts ...generator.Option) (*CoexactUpdate, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: t interval %d", generator.ErrBadInterval, interval)
	}
	return &CoexactUpdate{
		Base:     generator.NewBase(opts...),
		a:        w,
		interval: interval,
		classes:  w.Lattice().UpdateClasses(),
	}, nil
}

func (u *CoexactUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa := u.a.Kappa()

	var accepted int
	var acceptance float64
	for _, class := range u.classes {
		y := u.a.Links(out)
		acc, prob, err := generator.SweepClass(&u.Base, class,
			func(int) int { return u.RNG.Nonzero(u.interval) },
			func(p, c int) float64 {
				var dS float64
				for _, t := range plaquetteStencil(l, p) {
					dS += worldlineCost(kappa, y[t.link], float64(t.sign*c))
				}
				return dS
			},
			func(p, c int) {
				for _, t := range plaquetteStencil(l, p) {
					out.M[t.link] += t.sign * c
				}
			},
		)
		if err != nil {
			return action.Configuration{}, err
		}
		accepted += acc
		acceptance += prob
	}
	u.Record(l.Plaquettes, accepted, acceptance)
	return out, nil
}

func (u *CoexactUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *CoexactUpdate) Report() string                               { return u.Summary("coexact") }
func (u *CoexactUpdate) String() string                               { return "CoexactUpdate" }
