package action

import (
	"maps"
	"slices"

	"github.com/katalvlaran/supervillain/lattice"
)

// Kind enumerates the formulations. The set is closed.
type Kind int

const (
	// KindVillain is the φ, n formulation.
	KindVillain Kind = iota
	// KindWorldline is the m, v formulation.
	KindWorldline
)

// String returns the formulation name.
func (k Kind) String() string {
	switch k {
	case KindVillain:
		return "Villain"
	case KindWorldline:
		return "Worldline"
	default:
		return "Kind(?)"
	}
}

// Field names, used consistently by configurations, observables and storage.
const (
	FieldPhi   = "phi"
	FieldN     = "n"
	FieldM     = "m"
	FieldV     = "v"
	FieldRealV = "realv"
)

// Configuration is one state of the chain. Villain uses Phi and N, Worldline
// uses M and V; the others stay nil. At W = ∞ the Worldline vortex field is
// real rather than integer and lives in RealV instead of V.
//
// Observables carries inline measurements attached by the generator that
// produced the configuration, e.g. a worm's displacement histogram.
type Configuration struct {
	Phi []float64
	N   []int
	M   []int
	V   []int

	RealV []float64

	Observables map[string][]float64
}

// Clone deep-copies the configuration.
func (c Configuration) Clone() Configuration {
	out := Configuration{
		Phi: slices.Clone(c.Phi),
		N:   slices.Clone(c.N),
		M:   slices.Clone(c.M),
		V:   slices.Clone(c.V),

		RealV: slices.Clone(c.RealV),
	}
	if c.Observables != nil {
		out.Observables = make(map[string][]float64, len(c.Observables))
		for name, values := range c.Observables {
			out.Observables[name] = slices.Clone(values)
		}
	}
	return out
}

// Fields lists the names of the fields the configuration carries.
func (c Configuration) Fields() []string {
	var names []string
	if c.Phi != nil {
		names = append(names, FieldPhi)
	}
	if c.N != nil {
		names = append(names, FieldN)
	}
	if c.M != nil {
		names = append(names, FieldM)
	}
	if c.V != nil {
		names = append(names, FieldV)
	}
	if c.RealV != nil {
		names = append(names, FieldRealV)
	}
	return names
}

// Observe attaches an inline observable, replacing any previous value.
func (c *Configuration) Observe(name string, values []float64) {
	if c.Observables == nil {
		c.Observables = make(map[string][]float64)
	}
	c.Observables[name] = values
}

// ObservableNames returns the inline observable names in sorted order.
func (c Configuration) ObservableNames() []string {
	return slices.Sorted(maps.Keys(c.Observables))
}

// Action evaluates one formulation on one lattice.
type Action interface {
	Kind() Kind
	Lattice() *lattice.Lattice
	Kappa() float64
	W() Modulus

	// Energy returns S(cfg). It returns ErrConstraintViolated rather than a
	// number when cfg is outside the physical sector.
	Energy(cfg Configuration) (float64, error)
	// Valid reports whether cfg has the right shape and satisfies the constraint.
	Valid(cfg Configuration) bool
	// Links returns the real 1-form that enters the action quadratically.
	Links(cfg Configuration) []float64
	// NewConfigurations allocates count cold configurations.
	NewConfigurations(count int) []Configuration
	// Cold returns the all-zero configuration.
	Cold() Configuration

	String() string
}
