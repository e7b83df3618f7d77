package observable

import "errors"

var (
	// ErrUnknown indicates a name that is not an observable.
	ErrUnknown = errors.New("observable: unknown observable")

	// ErrUnsupported indicates an observable with no definition for the action's kind.
	ErrUnsupported = errors.New("observable: not defined for this formulation")

	// ErrNormalization indicates a correlator whose zero-displacement value is 0.
	ErrNormalization = errors.New("observable: correlator cannot be normalized")
)
