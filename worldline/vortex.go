package worldline

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// VortexUpdate proposes v += c on every plaquette of one update class at a
// time, c ∈ {±1, …, ±interval}. m is untouched, so Y = m − δv/W shifts by
// −c·δ(unit)/W on the boundary of each plaquette. At W = ∞ the real vortex
// field is shifted instead, by c drawn uniformly from (−interval, interval).
type VortexUpdate struct {
	generator.Base
	a        *action.Worldline
	interval int
	classes  [][]int
}

var _ generator.Generator = (*VortexUpdate)(nil)

// NewVortexUpdate draws changes from {±1, …, ±interval}, or from the real
// interval of the same width when W = ∞.
func NewVortexUpdate(a action.Action, interval int, opts ...generator.Option) (*VortexUpdate, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: v interval %d", generator.ErrBadInterval, interval)
	}
	return &VortexUpdate{
		Base:     generator.NewBase(opts...),
		a:        w,
		interval: interval,
		classes:  w.Lattice().UpdateClasses(),
	}, nil
}

func (u *VortexUpdate) propose(int) float64 {
	if u.a.W().IsInfinite() {
		width := float64(u.interval)
		return u.RNG.Uniform(-width, width)
	}
	return float64(u.RNG.Nonzero(u.interval))
}

func (u *VortexUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa, scale := u.a.Kappa(), vortexScale(u.a)

	var accepted int
	var acceptance float64
	for _, class := range u.classes {
		y := u.a.Links(out)
		acc, prob, err := generator.SweepClass(&u.Base, class, u.propose,
			func(p int, c float64) float64 {
				var dS float64
				for _, t := range plaquetteStencil(l, p) {
					dS += worldlineCost(kappa, y[t.link], -float64(t.sign)*c*scale)
				}
				return dS
			},
			func(p int, c float64) { shiftVortex(u.a, &out, p, c) },
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

func (u *VortexUpdate) InlineObservables(int) map[string][][]float64 {
	return nil
}

func (u *VortexUpdate) Report() string { return u.Summary("vortex") }

func (u *VortexUpdate) String() string { return "VortexUpdate" }
