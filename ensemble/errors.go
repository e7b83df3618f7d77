package ensemble

import "errors"

var (
	// ErrBadSteps indicates a non-positive number of steps.
	ErrBadSteps = errors.New("ensemble: steps must be positive")

	// ErrBadStride indicates Every with a stride below 1.
	ErrBadStride = errors.New("ensemble: stride must be at least 1")

	// ErrBadCut indicates Cut outside [0, Len].
	ErrBadCut = errors.New("ensemble: cut outside the chain")

	// ErrEmpty indicates an operation that needs at least one configuration.
	ErrEmpty = errors.New("ensemble: no configurations")
)
