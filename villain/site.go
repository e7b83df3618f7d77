package villain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// SiteUpdate proposes a uniform change of φ on every site of one update
// class at a time. Sites of one class share no link, so their proposals are
// independent and decided together.
type SiteUpdate struct {
	generator.Base
	a        *action.Villain
	interval float64
	classes  [][]int
}

var _ generator.Generator = (*SiteUpdate)(nil)

// NewSiteUpdate draws φ changes from [−interval, interval); π is the usual choice.
func NewSiteUpdate(a action.Action, interval float64, opts ...generator.Option) (*SiteUpdate, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("%w: φ interval %v", generator.ErrBadInterval, interval)
	}
	return &SiteUpdate{
		Base:     generator.NewBase(opts...),
		a:        v,
		interval: interval,
		classes:  v.Lattice().UpdateClasses(),
	}, nil
}

func (u *SiteUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa := u.a.Kappa()

	var accepted int
	var acceptance float64
	for _, class := range u.classes {
		x := u.a.Links(out)
		acc, prob, err := generator.SweepClass(&u.Base, class,
			func(int) float64 { return u.RNG.Uniform(-u.interval, u.interval) },
			func(s int, change float64) float64 {
				var dS float64
				for _, t := range siteStencil(l, s) {
					dS += villainCost(kappa, x[t.link], float64(t.sign)*change)
				}
				return dS
			},
			func(s int, change float64) { out.Phi[s] += change },
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

func (u *SiteUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *SiteUpdate) Report() string                               { return u.Summary("single-phi") }
func (u *SiteUpdate) String() string                               { return "SiteUpdate" }
