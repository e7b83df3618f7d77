package observable

import (
	"fmt"

	"github.com/katalvlaran/supervillain/lattice"
)

// Observable enumerates the measurable quantities.
type Observable int

const (
	ActionDensity Observable = iota
	InternalEnergyDensity
	Links
	WindingSquared
	TopologicalSusceptibility
	TorusWrapping
	SpinSpin
	VortexVortex
	WindingWinding
	VertexVertex
	SloppySpinSpin
)

var names = [...]string{
	ActionDensity:             "ActionDensity",
	InternalEnergyDensity:     "InternalEnergyDensity",
	Links:                     "Links",
	WindingSquared:            "WindingSquared",
	TopologicalSusceptibility: "TopologicalSusceptibility",
	TorusWrapping:             "TorusWrapping",
	SpinSpin:                  "Spin_Spin",
	VortexVortex:              "Vortex_Vortex",
	WindingWinding:            "Winding_Winding",
	VertexVertex:              "Vertex_Vertex",
	SloppySpinSpin:            "SloppySpin_Spin",
}

// All lists every observable in declaration order.
func All() []Observable {
	out := make([]Observable, len(names))
	for i := range out {
		out[i] = Observable(i)
	}
	return out
}

// String returns the name used for inline observables and reports.
func (o Observable) String() string {
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Observable(%d)", int(o))
	}
	return names[o]
}

// Parse looks an observable up by name.
func Parse(name string) (Observable, error) {
	for i, n := range names {
		if n == name {
			return Observable(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Width returns the number of values one measurement produces on l.
func (o Observable) Width(l *lattice.Lattice) int {
	switch o {
	case Links:
		return l.Links
	case TorusWrapping:
		return lattice.Dimensions
	case SpinSpin, VortexVortex, WindingWinding, VertexVertex, SloppySpinSpin:
		return l.Sites
	default:
		return 1
	}
}
