package worldline

import (
	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
)

func asWorldline(a action.Action) (*action.Worldline, error) {
	if a == nil || a.Kind() != action.KindWorldline {
		return nil, generator.ErrWrongAction
	}
	w, ok := a.(*action.Worldline)
	if !ok {
		return nil, generator.ErrWrongAction
	}
	return w, nil
}

// touch is a link changed by a proposal and the sign of that change.
type touch struct {
	link int
	sign int
}

// plaquetteStencil is δ of a unit 2-form on p: the boundary loop of p.
func plaquetteStencil(l *lattice.Lattice, p int) [4]touch {
	return [4]touch{
		{l.Link(lattice.T, p), +1},
		{l.Link(lattice.T, l.Next(p, lattice.X)), -1},
		{l.Link(lattice.X, p), -1},
		{l.Link(lattice.X, l.Next(p, lattice.T)), +1},
	}
}

// vortexScale is how far m − δv/W moves per unit change of v: 1/W, or 1 at
// W = ∞ where the real field RealV stands in for v/W.
func vortexScale(a *action.Worldline) float64 {
	if a.W().IsInfinite() {
		return 1
	}
	return 1 / a.W().Float()
}

// shiftVortex adds c to the vortex field on plaquette p. c is integral
// unless W = ∞.
func shiftVortex(a *action.Worldline, cfg *action.Configuration, p int, c float64) {
	if a.W().IsInfinite() {
		cfg.RealV[p] += c
		return
	}
	cfg.V[p] += int(c)
}

// worldlineCost is ΔS on one link whose m − δv/W shifts by dy.
func worldlineCost(kappa, y, dy float64) float64 {
	return generator.DifferenceOfSquares(1/(2*kappa), y, dy)
}
