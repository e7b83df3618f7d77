package ensemble

import (
	"log/slog"

	"github.com/katalvlaran/supervillain/action"
)

// Options configure Generate and Extend.
type Options struct {
	// Start is the configuration the first step is applied to; nil is cold.
	Start *action.Configuration
	// StartIndex labels the first generated configuration.
	StartIndex int
	// Progress, if set, is called after every step.
	Progress func(done, total int)
	// Logger receives run summaries; nil uses slog.Default().
	Logger *slog.Logger
	// Metrics, if set, records step counts and durations.
	Metrics *Metrics
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions starts cold at index 0 without progress reporting.
func DefaultOptions() Options {
	return Options{}
}

// WithStart seeds the chain with cfg instead of a cold start.
func WithStart(cfg action.Configuration) Option {
	return func(o *Options) { o.Start = &cfg }
}

// WithStartIndex sets the index of the first generated configuration.
func WithStartIndex(i int) Option {
	return func(o *Options) { o.StartIndex = i }
}

// WithProgress installs a progress callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
