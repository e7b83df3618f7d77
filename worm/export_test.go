package worm

// WalkFrom runs a walk with a fixed tail and orientation.
func WalkFrom(rng Source, s *Surface, opts Options, tail, orientation int) (Result, error) {
	return walk(rng, s, opts, tail, orientation)
}
