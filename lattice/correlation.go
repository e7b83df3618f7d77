package lattice

import "math"

// Correlation returns the two-point function of two complex 0-forms
// averaged over every origin,
//
//	C(Δ) = 1/V · Σ_s conj(f(s)) · g(s − Δ),
//
// indexed by the site index of Δ.
// Complexity: O(N⁴) time, O(N²) memory.
func Correlation(l *Lattice, f, g []complex128) []complex128 {
	if len(f) != l.Sites || len(g) != l.Sites {
		panic("lattice: correlation needs two 0-forms")
	}
	out := make([]complex128, l.Sites)
	norm := complex(1/float64(l.Sites), 0)
	for delta := 0; delta < l.Sites; delta++ {
		var sum complex128
		for s := 0; s < l.Sites; s++ {
			sum += conj(f[s]) * g[l.Displacement(s, delta)]
		}
		out[delta] = sum * norm
	}
	return out
}

// Phases maps a real 0-form θ to e^{iθ}.
func Phases(theta []float64) []complex128 {
	out := make([]complex128, len(theta))
	for i, v := range theta {
		out[i] = complex(math.Cos(v), math.Sin(v))
	}
	return out
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
