package worldline

import (
	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// PlaquetteUpdate visits every plaquette once per sweep in random order and
// proposes m += c·δ(unit) with c = ±1 together with v += c_v, c_v ∈ {−1, 0, 1}.
// Proposals are sequential; each sees the ones before it. At W = ∞ c_v shifts
// the real vortex field.
type PlaquetteUpdate struct {
	generator.Base
	a *action.Worldline
}

var _ generator.Generator = (*PlaquetteUpdate)(nil)

// NewPlaquetteUpdate builds the update.
func NewPlaquetteUpdate(a action.Action, opts ...generator.Option) (*PlaquetteUpdate, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	return &PlaquetteUpdate{Base: generator.NewBase(opts...), a: w}, nil
}

func (u *PlaquetteUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	kappa, scale := u.a.Kappa(), vortexScale(u.a)
	y := u.a.Links(out)

	var accepted int
	var acceptance float64
	for _, p := range u.RNG.Perm(l.Plaquettes) {
		changeM := u.RNG.Sign()
		changeV := u.RNG.IntN(3) - 1
		metropolis := u.RNG.Float64()

		// Y changes by (c − c_v/W) times the boundary loop.
		dy := float64(changeM) - float64(changeV)*scale
		stencil := plaquetteStencil(l, p)
		var dS float64
		for _, t := range stencil {
			dS += worldlineCost(kappa, y[t.link], float64(t.sign)*dy)
		}
		prob, err := generator.Metropolis(dS)
		if err != nil {
			return action.Configuration{}, err
		}
		acceptance += prob
		if metropolis < prob {
			for _, t := range stencil {
				out.M[t.link] += t.sign * changeM
				y[t.link] += float64(t.sign) * dy
			}
			shiftVortex(u.a, &out, p, float64(changeV))
			accepted++
		}
	}
	u.Record(l.Plaquettes, accepted, acceptance)
	return out, nil
}

func (u *PlaquetteUpdate) InlineObservables(int) map[string][][]float64 {
	return nil
}

func (u *PlaquetteUpdate) Report() string { return u.Summary("single-plaquette") }

func (u *PlaquetteUpdate) String() string { return "PlaquetteUpdate" }
