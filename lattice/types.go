// Package lattice defines the Lattice type, scalar constraints and direction
// constants shared by the forms and operators of this package.
package lattice

// Scalar is the set of element types a p-form may carry.
// Integer forms (n, m, v) and real forms (φ, dφ−2πn) share every operator.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float64
}

// Direction indexes the two lattice axes.
type Direction int

const (
	// T is the temporal axis, the first coordinate.
	T Direction = iota
	// X is the spatial axis, the second coordinate.
	X
)

// Dimensions is the number of lattice axes. Fixed; the package is 2D only.
const Dimensions = 2

// Lattice is an N×N torus. It is immutable once built and safe for
// concurrent reads.
//
// Sites, Links and Plaquettes are the sizes of 0-, 1- and 2-forms.
// next and prev hold the periodic neighbour of every site along each axis.
type Lattice struct {
	N          int
	Sites      int
	Links      int
	Plaquettes int

	next [Dimensions][]int
	prev [Dimensions][]int
}
