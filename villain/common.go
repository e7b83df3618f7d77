package villain

import (
	"math"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
)

// asVillain narrows a to the Villain formulation.
func asVillain(a action.Action) (*action.Villain, error) {
	if a == nil || a.Kind() != action.KindVillain {
		return nil, generator.ErrWrongAction
	}
	v, ok := a.(*action.Villain)
	if !ok {
		return nil, generator.ErrWrongAction
	}
	return v, nil
}

// touch is a link changed by a proposal and the sign of that change.
type touch struct {
	link int
	sign int
}

// siteStencil lists the links whose dφ changes when φ(s) changes by +1.
func siteStencil(l *lattice.Lattice, s int) [4]touch {
	return [4]touch{
		{l.Link(lattice.T, s), -1},
		{l.Link(lattice.X, s), -1},
		{l.Link(lattice.T, l.Prev(s, lattice.T)), +1},
		{l.Link(lattice.X, l.Prev(s, lattice.X)), +1},
	}
}

// linkValue is dφ − 2πn on one link.
func linkValue(l *lattice.Lattice, phi []float64, n []int, link int) float64 {
	mu, r := l.LinkSite(link)
	return phi[l.Next(r, mu)] - phi[r] - twoPi*float64(n[link])
}

// villainCost is ΔS on one link whose dφ − 2πn shifts by dx.
func villainCost(kappa, x, dx float64) float64 {
	return generator.DifferenceOfSquares(kappa/2, x, dx)
}

const twoPi = 2 * math.Pi
