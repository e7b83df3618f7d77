package worm

import (
	"github.com/katalvlaran/supervillain/lattice"
)

// Source is the randomness a walk consumes.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Move is one crossing out of a position: the head lands on To and the link
// field changes by Sign times the worm's orientation.
type Move struct {
	To   int
	Link int
	Sign int
}

// Moves lists the four crossings out of every position.
type Moves [][4]Move

// Surface is the field a worm walks on.
//
// Field is modified in place as the head moves; Background is read only.
// The link value entering the action is Background + Step·Field.
type Surface struct {
	Lattice    *lattice.Lattice
	Moves      Moves
	Background []float64
	Field      []int
	Coupling   float64
	Step       float64
}

// Variant selects the acceptance discipline.
type Variant int

const (
	// Geometric draws every transition from the normalized Metropolis weights.
	Geometric Variant = iota
	// Classic tests a uniformly chosen move and closes with a fixed probability.
	Classic
)

// String names the variant.
func (v Variant) String() string {
	switch v {
	case Geometric:
		return "Geometric"
	case Classic:
		return "Classic"
	default:
		return "Variant(?)"
	}
}

// DefaultCloseProbability is the Classic close probability on coincidence.
const DefaultCloseProbability = 0.2

// Options configure a walk.
type Options struct {
	Variant Variant
	// CloseProbability is used by Classic only.
	CloseProbability float64
}

// DefaultOptions returns the Geometric walk.
func DefaultOptions() Options {
	return Options{Variant: Geometric, CloseProbability: DefaultCloseProbability}
}

// Result describes one closed worm.
type Result struct {
	// Histogram counts head-minus-tail displacements, indexed like a 0-form.
	Histogram []float64
	// Crossings is the number of links the head crossed.
	Crossings int
	// Transitions counts every non-closing draw, accepted or not.
	Transitions int
	// Head and Tail are the positions at closing; they are equal.
	Head, Tail int
}
