package action

import (
	"fmt"
	"math"

	"github.com/katalvlaran/supervillain/lattice"
)

// Worldline is S = 1/(2κ) · Σ_links (m − δv/W)² + C with δm = 0, where
// C = Links/2 · ln(2πκ) − Sites · ln(2π) makes Z match the Villain partition
// function exactly.
type Worldline struct {
	l        *lattice.Lattice
	kappa    float64
	w        Modulus
	constant float64
}

var _ Action = (*Worldline)(nil)

// NewWorldline validates κ and W and binds them to the lattice.
func NewWorldline(l *lattice.Lattice, kappa float64, w Modulus) (*Worldline, error) {
	if err := checkKappa(kappa); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Worldline{
		l:        l,
		kappa:    kappa,
		w:        w,
		constant: float64(l.Links)/2*math.Log(2*math.Pi*kappa) - float64(l.Sites)*math.Log(2*math.Pi),
	}, nil
}

func (a *Worldline) Kind() Kind                { return KindWorldline }
func (a *Worldline) Lattice() *lattice.Lattice { return a.l }
func (a *Worldline) Kappa() float64            { return a.kappa }
func (a *Worldline) W() Modulus                { return a.w }

// Constant is the configuration-independent offset C.
func (a *Worldline) Constant() float64 { return a.constant }

func (a *Worldline) String() string {
	return fmt.Sprintf("Worldline(%v, κ=%g, W=%v)", a.l, a.kappa, a.w)
}

// Links returns m − δv/W. At W = ∞ the real field RealV takes the place of
// v/W, so this is m − δRealV.
// Complexity: O(N²).
func (a *Worldline) Links(cfg Configuration) []float64 {
	out := lattice.Convert[float64](cfg.M)
	for i, y := range a.Vorticity(cfg) {
		out[i] -= y
	}
	return out
}

// Vorticity returns the 1-form δv/W, or δRealV at W = ∞.
func (a *Worldline) Vorticity(cfg Configuration) []float64 {
	if a.w.IsInfinite() {
		return lattice.Delta2(a.l, cfg.RealV)
	}
	out := lattice.Convert[float64](lattice.Delta2(a.l, cfg.V))
	w := a.w.Float()
	for i := range out {
		out[i] /= w
	}
	return out
}

// Energy evaluates the action, or returns ErrShape / ErrConstraintViolated.
func (a *Worldline) Energy(cfg Configuration) (float64, error) {
	if !a.shaped(cfg) {
		return 0, ErrShape
	}
	if !a.constrained(cfg) {
		return 0, ErrConstraintViolated
	}
	links := a.Links(cfg)
	return 0.5/a.kappa*lattice.Inner(links, links) + a.constant, nil
}

// Valid reports δm = 0 at every site.
func (a *Worldline) Valid(cfg Configuration) bool {
	return a.shaped(cfg) && a.constrained(cfg)
}

func (a *Worldline) constrained(cfg Configuration) bool {
	for _, div := range lattice.Delta1(a.l, cfg.M) {
		if div != 0 {
			return false
		}
	}
	return true
}

func (a *Worldline) shaped(cfg Configuration) bool {
	if len(cfg.M) != a.l.Links {
		return false
	}
	if a.w.IsInfinite() {
		return len(cfg.RealV) == a.l.Plaquettes
	}
	return len(cfg.V) == a.l.Plaquettes
}

// NewConfigurations allocates count cold configurations.
func (a *Worldline) NewConfigurations(count int) []Configuration {
	out := make([]Configuration, count)
	for i := range out {
		out[i] = a.Cold()
	}
	return out
}

// Cold returns m = 0, v = 0. At W = ∞ the zero vortex field is RealV.
func (a *Worldline) Cold() Configuration {
	if a.w.IsInfinite() {
		return Configuration{
			M:     lattice.Zeros[int](a.l, 1),
			RealV: lattice.Zeros[float64](a.l, 2),
		}
	}
	return Configuration{
		M: lattice.Zeros[int](a.l, 1),
		V: lattice.Zeros[int](a.l, 2),
	}
}

// EquivalenceTransform returns v + λW, m + δλ for an integer 2-form λ.
// m − δv/W is unchanged, and so is every observable. W = ∞ has no integer
// redundancy and the copy is returned untouched.
func (a *Worldline) EquivalenceTransform(cfg Configuration, lambda []int) (Configuration, error) {
	if len(lambda) != a.l.Plaquettes || !a.shaped(cfg) {
		return Configuration{}, ErrShape
	}
	out := cfg.Clone()
	if a.w.IsInfinite() {
		return out, nil
	}
	for p, l := range lambda {
		out.V[p] += l * int(a.w)
	}
	for i, d := range lattice.Delta2(a.l, lambda) {
		out.M[i] += d
	}
	return out, nil
}

// CanonicalV returns the representative of cfg's equivalence class with
// v ∈ [0, W): m − δ⌊v/W⌋, v mod W. With W = ∞ every class is a single
// configuration and cfg is returned as a copy.
func (a *Worldline) CanonicalV(cfg Configuration) (Configuration, error) {
	if !a.shaped(cfg) {
		return Configuration{}, ErrShape
	}
	out := cfg.Clone()
	if a.w.IsInfinite() {
		return out, nil
	}
	w := int(a.w)
	floor := make([]int, a.l.Plaquettes)
	for p, v := range cfg.V {
		floor[p] = floorDiv(v, w)
		out.V[p] = v - floor[p]*w
	}
	for i, d := range lattice.Delta2(a.l, floor) {
		out.M[i] -= d
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
