package generator

import "errors"

var (
	// ErrBadStride indicates a KeepEvery stride below one.
	ErrBadStride = errors.New("generator: stride must be at least 1")
	// ErrNaN indicates a NaN energy difference; it is a logic defect upstream.
	ErrNaN = errors.New("generator: energy difference is NaN")
	// ErrWrongAction indicates an updater paired with the wrong formulation.
	ErrWrongAction = errors.New("generator: action has the wrong formulation")
	// ErrInfiniteModulus indicates an update that only exists for finite W.
	ErrInfiniteModulus = errors.New("generator: update requires finite W")
	// ErrBadInterval indicates a proposal interval that is empty or unbounded.
	ErrBadInterval = errors.New("generator: proposal interval must be finite and positive")
	// ErrState indicates persisted generator state that does not fit the generator.
	ErrState = errors.New("generator: malformed state")
)
