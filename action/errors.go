package action

import "errors"

var (
	// ErrBadKappa indicates a coupling that is not finite and positive.
	ErrBadKappa = errors.New("action: kappa must be finite and positive")
	// ErrBadModulus indicates a constraint integer W below 1.
	ErrBadModulus = errors.New("action: W must be a positive integer or infinity")
	// ErrBadKind indicates an unknown formulation name.
	ErrBadKind = errors.New("action: unknown formulation")
	// ErrShape indicates a configuration whose fields do not fit the lattice.
	ErrShape = errors.New("action: configuration fields do not match the lattice")
	// ErrConstraintViolated indicates a configuration outside the physical sector.
	ErrConstraintViolated = errors.New("action: configuration violates the constraint")
)
