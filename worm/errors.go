package worm

import "errors"

var (
	// ErrZeroWeight indicates that every transition out of the head has zero weight.
	ErrZeroWeight = errors.New("worm: all transitions have zero weight")
	// ErrSurface indicates a surface whose forms do not fit its lattice.
	ErrSurface = errors.New("worm: surface does not match lattice")
)
