package villain

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// NeighborhoodUpdate visits Sites random sites per sweep. At each it proposes
// a φ change together with independent W-multiple changes of n (possibly
// zero) on the four links that touch the site, and Metropolis-tests the
// whole neighbourhood at once. Proposals are sequential, so each sees the
// previous ones. Finite W only.
type NeighborhoodUpdate struct {
	generator.Base
	a           *action.Villain
	intervalPhi float64
	intervalN   int
}

var _ generator.Generator = (*NeighborhoodUpdate)(nil)

// NewNeighborhoodUpdate draws φ changes from [−intervalPhi, intervalPhi) and
// n changes from W·{−intervalN, …, intervalN}.
func NewNeighborhoodUpdate(a action.Action, intervalPhi float64, intervalN int, opts ...generator.Option) (*NeighborhoodUpdate, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	if v.W().IsInfinite() {
		return nil, generator.ErrInfiniteModulus
	}
	if !(intervalPhi > 0) || intervalN < 0 {
		return nil, fmt.Errorf("%w: φ=%v n=%d", generator.ErrBadInterval, intervalPhi, intervalN)
	}
	return &NeighborhoodUpdate{
		Base:        generator.NewBase(opts...),
		a:           v,
		intervalPhi: intervalPhi,
		intervalN:   intervalN,
	}, nil
}

func (u *NeighborhoodUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa, w := u.a.Kappa(), int(u.a.W())

	var accepted int
	var acceptance float64
	for i := 0; i < l.Sites; i++ {
		s := u.RNG.IntN(l.Sites)
		changePhi := u.RNG.Uniform(-u.intervalPhi, u.intervalPhi)
		var changeN [4]int
		for j := range changeN {
			changeN[j] = w * (u.RNG.IntN(2*u.intervalN+1) - u.intervalN)
		}
		metropolis := u.RNG.Float64()

		stencil := siteStencil(l, s)
		var dS float64
		for j, t := range stencil {
			x := linkValue(l, out.Phi, out.N, t.link)
			dS += villainCost(kappa, x, float64(t.sign)*changePhi-twoPi*float64(changeN[j]))
		}
		p, err := generator.Metropolis(dS)
		if err != nil {
			return action.Configuration{}, err
		}
		acceptance += p
		if metropolis < p {
			out.Phi[s] += changePhi
			for j, t := range stencil {
				out.N[t.link] += changeN[j]
			}
			accepted++
		}
	}
	u.Record(l.Sites, accepted, acceptance)
	return out, nil
}

func (u *NeighborhoodUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *NeighborhoodUpdate) Report() string                               { return u.Summary("single-site") }
func (u *NeighborhoodUpdate) String() string                               { return "NeighborhoodUpdate" }
