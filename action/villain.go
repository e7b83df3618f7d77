package action

import (
	"fmt"
	"math"

	"github.com/katalvlaran/supervillain/lattice"
)

// Villain is S = κ/2 · Σ_links (dφ − 2πn)² with d(n) ≡ 0 (mod W).
type Villain struct {
	l     *lattice.Lattice
	kappa float64
	w     Modulus
}

var _ Action = (*Villain)(nil)

// NewVillain validates κ and W and binds them to the lattice.
func NewVillain(l *lattice.Lattice, kappa float64, w Modulus) (*Villain, error) {
	if err := checkKappa(kappa); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Villain{l: l, kappa: kappa, w: w}, nil
}

func (a *Villain) Kind() Kind                { return KindVillain }
func (a *Villain) Lattice() *lattice.Lattice { return a.l }
func (a *Villain) Kappa() float64            { return a.kappa }
func (a *Villain) W() Modulus                { return a.w }

func (a *Villain) String() string {
	return fmt.Sprintf("Villain(%v, κ=%g, W=%v)", a.l, a.kappa, a.w)
}

// Links returns dφ − 2πn, the gauge-invariant combination.
// Complexity: O(N²).
func (a *Villain) Links(cfg Configuration) []float64 {
	out := lattice.D0(a.l, cfg.Phi)
	for i, n := range cfg.N {
		out[i] -= 2 * math.Pi * float64(n)
	}
	return out
}

// Energy evaluates the action, or returns ErrShape / ErrConstraintViolated.
func (a *Villain) Energy(cfg Configuration) (float64, error) {
	if !a.shaped(cfg) {
		return 0, ErrShape
	}
	if !a.constrained(cfg) {
		return 0, ErrConstraintViolated
	}
	links := a.Links(cfg)
	return a.kappa / 2 * lattice.Inner(links, links), nil
}

// Valid reports d(n) ≡ 0 (mod W) on every plaquette.
func (a *Villain) Valid(cfg Configuration) bool {
	return a.shaped(cfg) && a.constrained(cfg)
}

// Vortices returns d(n), the integer vorticity on every plaquette.
func (a *Villain) Vortices(cfg Configuration) []int {
	return lattice.D1(a.l, cfg.N)
}

func (a *Villain) constrained(cfg Configuration) bool {
	for _, dn := range lattice.D1(a.l, cfg.N) {
		if !a.w.Divides(dn) {
			return false
		}
	}
	return true
}

func (a *Villain) shaped(cfg Configuration) bool {
	return len(cfg.Phi) == a.l.Sites && len(cfg.N) == a.l.Links
}

// NewConfigurations allocates count cold configurations.
func (a *Villain) NewConfigurations(count int) []Configuration {
	out := make([]Configuration, count)
	for i := range out {
		out[i] = a.Cold()
	}
	return out
}

// Cold returns φ = 0, n = 0.
func (a *Villain) Cold() Configuration {
	return Configuration{
		Phi: lattice.Zeros[float64](a.l, 0),
		N:   lattice.Zeros[int](a.l, 1),
	}
}

// GaugeTransform returns φ + 2πk, n + dk for an integer 0-form k.
// The input is not modified; inline observables are carried over.
func (a *Villain) GaugeTransform(cfg Configuration, k []int) (Configuration, error) {
	if len(k) != a.l.Sites || !a.shaped(cfg) {
		return Configuration{}, ErrShape
	}
	out := cfg.Clone()
	dk := lattice.D0(a.l, k)
	for s, ks := range k {
		out.Phi[s] += 2 * math.Pi * float64(ks)
	}
	for i, d := range dk {
		out.N[i] += d
	}
	return out, nil
}

func checkKappa(kappa float64) error {
	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return ErrBadKappa
	}
	return nil
}
