package checkpoint

import "errors"

var (
	// ErrVersion indicates a snapshot written by an incompatible version.
	ErrVersion = errors.New("checkpoint: unsupported snapshot version")

	// ErrNotFound indicates a run id missing from the index.
	ErrNotFound = errors.New("checkpoint: run not found")

	// ErrMismatch indicates a snapshot that disagrees with its own header.
	ErrMismatch = errors.New("checkpoint: snapshot is inconsistent")
)
