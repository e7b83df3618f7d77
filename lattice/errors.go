package lattice

import "errors"

var (
	// ErrBadSize indicates a side length that cannot form a torus with distinct neighbours.
	ErrBadSize = errors.New("lattice: side length must be at least 2")
	// ErrRank indicates a p-form rank with no meaning on a 2D lattice.
	ErrRank = errors.New("lattice: no such form rank in two dimensions")
)
