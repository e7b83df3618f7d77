package generator

// DefaultParallelism runs colour-class kernels serially.
const DefaultParallelism = 1

// Options configure a concrete updater.
//
// Seed 0 draws a fresh seed from the runtime source, so unseeded
// generators never share a stream; pass a non-zero seed for reproducible
// chains.
type Options struct {
	Seed        uint64
	Parallelism int
}

// DefaultOptions returns an unseeded, serial configuration.
func DefaultOptions() Options {
	return Options{Parallelism: DefaultParallelism}
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the random stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallelism bounds the goroutines used per colour class.
// Panics if p < 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic("generator: WithParallelism(p<1)")
	}
	return func(o *Options) { o.Parallelism = p }
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Child returns the options of the i-th member of a composite, with a seed
// derived from o.Seed so every member owns a distinct stream.
func (o Options) Child(i int) []Option {
	seed := o.Seed
	if seed != 0 {
		seed = DeriveSeed(seed, uint64(i)+1)
	}
	return []Option{WithSeed(seed), WithParallelism(o.Parallelism)}
}
