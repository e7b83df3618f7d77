package villain

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// ExactUpdate shifts n by an exact form dz, z an integer 0-form supported on
// one update class. d(dz) = 0, so the constraint holds for every W including
// ∞. φ is untouched, so dφ − 2πn changes by −2π·dz on the four links of each
// site.
type ExactUpdate struct {
	generator.Base
	a        *action.Villain
	interval int
	classes  [][]int
}

var _ generator.Generator = (*ExactUpdate)(nil)

// NewExactUpdate draws z from {±1, …, ±interval}.
func NewExactUpdate(a action.Action, interval int, opts ...generator.Option) (*ExactUpdate, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: z interval %d", generator.ErrBadInterval, interval)
	}
	return &ExactUpdate{
		Base:     generator.NewBase(opts...),
		a:        v,
		interval: interval,
		classes:  v.Lattice().UpdateClasses(),
	}, nil
}

func (u *ExactUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa := u.a.Kappa()

	var accepted int
	var acceptance float64
	for _, class := range u.classes {
		x := u.a.Links(out)
		acc, prob, err := generator.SweepClass(&u.Base, class,
			func(int) int { return u.RNG.Nonzero(u.interval) },
			func(s, z int) float64 {
				var dS float64
				for _, t := range siteStencil(l, s) {
					dS += villainCost(kappa, x[t.link], -twoPi*float64(t.sign*z))
				}
				return dS
			},
			func(s, z int) {
				for _, t := range siteStencil(l, s) {
					out.N[t.link] += t.sign * z
				}
			},
		)
		if err != nil {
			return action.Configuration{}, err
		}
		accepted += acc
		acceptance += prob
	}
	u.Record(l.Sites, accepted, acceptance)
	return out, nil
}

func (u *ExactUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *ExactUpdate) Report() string                               { return u.Summary("exact") }
func (u *ExactUpdate) String() string                               { return "ExactUpdate" }
