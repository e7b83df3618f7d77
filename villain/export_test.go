package villain

import "github.com/katalvlaran/supervillain/lattice"

// SiteCost is the SiteUpdate energy difference of changing φ(s) by change.
func SiteCost(l *lattice.Lattice, kappa float64, x []float64, s int, change float64) float64 {
	var dS float64
	for _, t := range siteStencil(l, s) {
		dS += villainCost(kappa, x[t.link], float64(t.sign)*change)
	}
	return dS
}

// ExactCost is the ExactUpdate energy difference of n += d(z·δ_s).
func ExactCost(l *lattice.Lattice, kappa float64, x []float64, s, z int) float64 {
	var dS float64
	for _, t := range siteStencil(l, s) {
		dS += villainCost(kappa, x[t.link], -twoPi*float64(t.sign*z))
	}
	return dS
}
