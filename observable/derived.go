package observable

import (
	"fmt"
	"math"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
)

// CriticalSpinDimension is the scaling dimension of e^{iφ} at the BKT point.
// Only the unconstrained W = 1 value is known, and it is used for every W.
const CriticalSpinDimension = 0.125

// SpinSusceptibility is the spacetime integral Σ_Δ S(Δ) of an averaged
// Spin_Spin correlator.
func SpinSusceptibility(spinSpin []float64) float64 {
	var sum float64
	for _, v := range spinSpin {
		sum += v
	}
	return sum
}

// SpinSusceptibilityScaled divides χ_S by N^(2−2Δ) so that it tends to a
// constant at the critical coupling.
func SpinSusceptibilityScaled(l *lattice.Lattice, chi float64) float64 {
	return chi / math.Pow(float64(l.N), 2-2*CriticalSpinDimension)
}

// VortexSusceptibility is Σ_Δ V(Δ) / V(0) of an averaged Vortex_Vortex
// correlator. Worm histograms are unnormalized, so the ratio is taken after
// averaging. Returns ErrNormalization if V(0) is zero.
func VortexSusceptibility(vortexVortex []float64) (float64, error) {
	if len(vortexVortex) == 0 || vortexVortex[0] == 0 {
		return 0, fmt.Errorf("%w: Vortex_Vortex(0) = 0", ErrNormalization)
	}
	var sum float64
	for _, v := range vortexVortex {
		sum += v
	}
	return sum / vortexVortex[0], nil
}

// CriticalVortexDimension is the scaling dimension of a unit vortex at the
// transition, 2/W². At W = ∞ every κ is critical and it is 4πκ.
func CriticalVortexDimension(a action.Action) float64 {
	if a.W().IsInfinite() {
		return 4 * math.Pi * a.Kappa()
	}
	w := a.W().Float()
	return 2 / (w * w)
}

// VortexSusceptibilityScaled divides χ_V by N^(2−2Δ_V).
func VortexSusceptibilityScaled(a action.Action, chi float64) float64 {
	n := float64(a.Lattice().N)
	return chi / math.Pow(n, 2-2*CriticalVortexDimension(a))
}

// VortexCriticalMoment is 1/V · Σ_Δ |Δ|^(2Δ_V) V(Δ) / V(0). It tends to 1
// at the critical coupling and to 0 on either side of it.
// Returns ErrNormalization if V(0) is zero.
func VortexCriticalMoment(a action.Action, vortexVortex []float64) (float64, error) {
	l := a.Lattice()
	if len(vortexVortex) != l.Sites {
		return 0, fmt.Errorf("%w: Vortex_Vortex has %d values on %v", ErrNormalization, len(vortexVortex), l)
	}
	if vortexVortex[0] == 0 {
		return 0, fmt.Errorf("%w: Vortex_Vortex(0) = 0", ErrNormalization)
	}
	dimension := CriticalVortexDimension(a)
	var sum float64
	for delta, v := range vortexVortex {
		r2 := float64(l.DistanceSquared(delta, 0))
		sum += math.Pow(r2, dimension) * v
	}
	return sum / float64(l.Sites) / vortexVortex[0], nil
}

// Mean averages equally sized rows, e.g. one correlator per configuration.
func Mean(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, len(rows[0]))
	for _, row := range rows {
		for i, v := range row {
			out[i] += v
		}
	}
	for i := range out {
		out[i] /= float64(len(rows))
	}
	return out
}
