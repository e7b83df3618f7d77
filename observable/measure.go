package observable

import (
	"fmt"
	"math"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
)

// Measure evaluates the named observable on one configuration.
func Measure(a action.Action, name string, cfg action.Configuration) ([]float64, error) {
	o, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return o.Measure(a, cfg)
}

// Measure evaluates o on cfg. Invalid configurations are rejected with
// action.ErrConstraintViolated (or action.ErrShape) before any arithmetic.
// Complexity: O(N²) for the scalars, O(N⁴) for the correlators and O(N⁵)
// for the path-reweighted correlators.
func (o Observable) Measure(a action.Action, cfg action.Configuration) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil action", ErrUnsupported)
	}
	switch a.Kind() {
	case action.KindVillain:
		v, ok := a.(*action.Villain)
		if !ok {
			return nil, fmt.Errorf("%w: %s on %T", ErrUnsupported, o, a)
		}
		if err := check(v, cfg); err != nil {
			return nil, fmt.Errorf("observable: %s: %w", o, err)
		}
		return o.villain(v, cfg)
	case action.KindWorldline:
		w, ok := a.(*action.Worldline)
		if !ok {
			return nil, fmt.Errorf("%w: %s on %T", ErrUnsupported, o, a)
		}
		if err := check(w, cfg); err != nil {
			return nil, fmt.Errorf("observable: %s: %w", o, err)
		}
		return o.worldline(w, cfg)
	default:
		return nil, fmt.Errorf("%w: %s on %v", ErrUnsupported, o, a.Kind())
	}
}

// check reuses Energy's shape and constraint diagnosis.
func check(a action.Action, cfg action.Configuration) error {
	if a.Valid(cfg) {
		return nil
	}
	_, err := a.Energy(cfg)
	if err == nil {
		err = action.ErrConstraintViolated
	}
	return err
}

func (o Observable) villain(a *action.Villain, cfg action.Configuration) ([]float64, error) {
	l := a.Lattice()
	switch o {
	case ActionDensity, InternalEnergyDensity:
		// κ ∂_κ S = S for the Villain action.
		s, err := a.Energy(cfg)
		if err != nil {
			return nil, err
		}
		return []float64{s / float64(l.Sites)}, nil
	case Links:
		return a.Links(cfg), nil
	case WindingSquared, TopologicalSusceptibility:
		return []float64{meanSquare(lattice.D1(l, cfg.N))}, nil
	case TorusWrapping:
		return torusSums(l, cfg.N, 1), nil
	case SpinSpin, VertexVertex, SloppySpinSpin:
		phases := lattice.Phases(cfg.Phi)
		return realParts(lattice.Correlation(l, phases, phases)), nil
	case WindingWinding:
		dn := lattice.Convert[float64](lattice.D1(l, cfg.N))
		return realCorrelation(l, dn, dn), nil
	case VortexVortex:
		// n → n + P inserts a vortex pair; reweight by the action difference.
		x := a.Links(cfg)
		kappa := a.Kappa()
		return pathAverage(l, dualPath, func(link, sign int) float64 {
			return 2 * math.Pi * kappa * (math.Pi - float64(sign)*x[link])
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknown, o)
	}
}

func (o Observable) worldline(a *action.Worldline, cfg action.Configuration) ([]float64, error) {
	l := a.Lattice()
	kappa := a.Kappa()
	switch o {
	case ActionDensity:
		s, err := a.Energy(cfg)
		if err != nil {
			return nil, err
		}
		return []float64{s / float64(l.Sites)}, nil
	case InternalEnergyDensity:
		y := a.Links(cfg)
		u := float64(l.Links)/2 - lattice.Inner(y, y)/(2*kappa)
		return []float64{u / float64(l.Sites)}, nil
	case Links:
		return a.Links(cfg), nil
	case WindingSquared:
		dy := lattice.D1(l, a.Links(cfg))
		return []float64{1/(math.Pi*math.Pi*kappa) - meanSquare(dy)/square(2*math.Pi*kappa)}, nil
	case WindingWinding:
		// (κ dδ(unit) − ⟨dY dY⟩) / (2πκ)², the contact term being the
		// five-point stencil.
		dy := lattice.D1(l, a.Links(cfg))
		unit := make([]float64, l.Plaquettes)
		unit[0] = 1
		stencil := lattice.D1(l, lattice.Delta2(l, unit))
		out := realCorrelation(l, dy, dy)
		norm := square(2 * math.Pi * kappa)
		for i := range out {
			out[i] = (kappa*stencil[i] - out[i]) / norm
		}
		return out, nil
	case TorusWrapping:
		// Every slice carries the same flux.
		return torusSums(l, cfg.M, float64(l.N)), nil
	case SpinSpin, VertexVertex:
		// m → m + P inserts a charge pair; reweight by the action difference.
		return pathAverage(l, directPath, chargeCost(a, cfg)), nil
	case SloppySpinSpin:
		return pathAtOrigin(l, directPath, chargeCost(a, cfg)), nil
	case VortexVortex:
		// e^{2πi v/W}, with the real field standing in for v/W at W = ∞.
		theta := make([]float64, l.Plaquettes)
		if a.W().IsInfinite() {
			for p, v := range cfg.RealV {
				theta[p] = 2 * math.Pi * v
			}
		} else {
			scale := 2 * math.Pi / a.W().Float()
			for p, v := range cfg.V {
				theta[p] = scale * float64(v)
			}
		}
		phases := lattice.Phases(theta)
		return realParts(lattice.Correlation(l, phases, phases)), nil
	default:
		return nil, fmt.Errorf("%w: %s on %v", ErrUnsupported, o, a.Kind())
	}
}

// chargeCost is the per-link action difference of m → m + P.
func chargeCost(a *action.Worldline, cfg action.Configuration) func(link, sign int) float64 {
	y := a.Links(cfg)
	kappa := a.Kappa()
	return func(link, sign int) float64 {
		return (2*float64(sign)*y[link] + 1) / (2 * kappa)
	}
}

// realCorrelation is lattice.Correlation of two real forms on sites or
// plaquettes.
func realCorrelation(l *lattice.Lattice, f, g []float64) []float64 {
	return realParts(lattice.Correlation(l, complexes(f), complexes(g)))
}

func complexes(f []float64) []complex128 {
	out := make([]complex128, len(f))
	for i, v := range f {
		out[i] = complex(v, 0)
	}
	return out
}

// torusSums returns Σ f_t / norm and Σ f_x / norm.
func torusSums(l *lattice.Lattice, f []int, norm float64) []float64 {
	out := make([]float64, lattice.Dimensions)
	for i, v := range f {
		mu, _ := l.LinkSite(i)
		out[mu] += float64(v)
	}
	for mu := range out {
		out[mu] /= norm
	}
	return out
}

func meanSquare[E lattice.Scalar](f []E) float64 {
	var sum float64
	for _, v := range f {
		sum += float64(v) * float64(v)
	}
	return sum / float64(len(f))
}

func realParts(z []complex128) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = real(v)
	}
	return out
}

func square(x float64) float64 { return x * x }
