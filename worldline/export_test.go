package worldline

import (
	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
)

// PlaquetteCost is the PlaquetteUpdate energy difference of m += c·δ(unit),
// v += cv on plaquette p, where a unit of v moves Y by scale.
func PlaquetteCost(l *lattice.Lattice, kappa, scale float64, y []float64, p, c, cv int) float64 {
	dy := float64(c) - float64(cv)*scale
	var dS float64
	for _, t := range plaquetteStencil(l, p) {
		dS += worldlineCost(kappa, y[t.link], float64(t.sign)*dy)
	}
	return dS
}

// CoexactCost is the CoexactUpdate energy difference of m += δ(c·unit) on p.
func CoexactCost(l *lattice.Lattice, kappa float64, y []float64, p, c int) float64 {
	return PlaquetteCost(l, kappa, 0, y, p, c, 0)
}

// VortexCost is the VortexUpdate energy difference of v += c on p.
func VortexCost(a *action.Worldline, y []float64, p int, c float64) float64 {
	var dS float64
	for _, t := range plaquetteStencil(a.Lattice(), p) {
		dS += worldlineCost(a.Kappa(), y[t.link], -float64(t.sign)*c*vortexScale(a))
	}
	return dS
}
