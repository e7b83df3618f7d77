package ensemble

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/observable"
)

// Ensemble is a chain of configurations sampled from Action.
//
// Configurations[i] carries label Index[i]; Inline[name][i] is the inline
// measurement the generator attached to it. Stored configurations have no
// Observables of their own.
type Ensemble struct {
	Action         action.Action
	Configurations []action.Configuration
	Index          []int
	Inline         map[string][][]float64

	cache *observable.Cache
}

// New wraps existing configurations, labelled from 0.
func New(a action.Action, cfgs []action.Configuration) *Ensemble {
	e := &Ensemble{
		Action:         a,
		Configurations: cfgs,
		Index:          make([]int, len(cfgs)),
		Inline:         make(map[string][][]float64),
		cache:          observable.NewCache(),
	}
	for i := range e.Index {
		e.Index[i] = i
	}
	return e
}

// Generate runs gen for steps steps from a cold start (or Options.Start).
//
// If ctx is cancelled the configurations generated so far are returned
// together with the context's error.
func Generate(ctx context.Context, a action.Action, steps int, gen generator.Generator, opts ...Option) (*Ensemble, error) {
	o := apply(opts...)
	start := a.Cold()
	if o.Start != nil {
		start = o.Start.Clone()
	}
	e := New(a, nil)
	err := e.run(ctx, start, o.StartIndex, steps, gen, o)
	return e, err
}

// Extend appends steps more configurations generated from the last one.
// Indices continue from the last label unless Options.StartIndex is set.
func (e *Ensemble) Extend(ctx context.Context, steps int, gen generator.Generator, opts ...Option) error {
	if e.Len() == 0 {
		return ErrEmpty
	}
	opts = append([]Option{WithStartIndex(e.Index[e.Len()-1] + 1)}, opts...)
	o := apply(opts...)
	start := e.Last()
	if o.Start != nil {
		start = o.Start.Clone()
	}
	return e.run(ctx, start, o.StartIndex, steps, gen, o)
}

func (e *Ensemble) run(ctx context.Context, start action.Configuration, index, steps int, gen generator.Generator, o Options) error {
	if steps < 1 {
		return fmt.Errorf("%w: %d", ErrBadSteps, steps)
	}
	if !e.Action.Valid(start) {
		return fmt.Errorf("ensemble: start: %w", action.ErrConstraintViolated)
	}
	e.memo().Invalidate()

	logger := o.Logger.With("action", e.Action.String(), "generator", gen.String())
	inline := gen.InlineObservables(steps)
	cfgs := make([]action.Configuration, 0, steps)
	labels := make([]int, 0, steps)

	began := time.Now()
	cfg := start
	cfg.Observables = nil
	var err error
	for i := 0; i < steps; i++ {
		if err = ctx.Err(); err != nil {
			logger.Warn("generation interrupted", "done", i, "planned", steps)
			break
		}
		t0 := time.Now()
		next, stepErr := gen.Step(cfg)
		if stepErr != nil {
			o.Metrics.failure()
			err = fmt.Errorf("ensemble: step %d: %w", index+i, stepErr)
			break
		}
		o.Metrics.step(time.Since(t0))

		for name, rows := range inline {
			if values, ok := next.Observables[name]; ok {
				copy(rows[i], values)
			}
		}
		next.Observables = nil
		cfgs = append(cfgs, next)
		labels = append(labels, index+i)
		if o.Progress != nil {
			o.Progress(i+1, steps)
		}
		cfg = next
	}

	e.append(cfgs, labels, inline)
	o.Metrics.length(e.Len())
	if len(cfgs) > 0 {
		elapsed := time.Since(began)
		logger.Info("generated configurations",
			"count", len(cfgs),
			"elapsed", elapsed,
			"per_configuration", elapsed/time.Duration(len(cfgs)),
		)
	}
	return err
}

// append adds generated configurations and keeps every inline series
// aligned with Configurations, padding with zero rows where a generator did
// not produce a series.
func (e *Ensemble) append(cfgs []action.Configuration, labels []int, inline map[string][][]float64) {
	before, added := e.Len(), len(cfgs)
	for name, rows := range e.Inline {
		if _, ok := inline[name]; !ok {
			e.Inline[name] = append(rows, zeroRows(added, width(rows))...)
		}
	}
	for name, rows := range inline {
		existing, ok := e.Inline[name]
		if !ok {
			existing = zeroRows(before, width(rows))
		}
		e.Inline[name] = append(existing, rows[:added]...)
	}
	e.Configurations = append(e.Configurations, cfgs...)
	e.Index = append(e.Index, labels...)
}

// memo returns the measurement cache, creating it for ensembles built as
// struct literals.
func (e *Ensemble) memo() *observable.Cache {
	if e.cache == nil {
		e.cache = observable.NewCache()
	}
	return e.cache
}

// Len is the number of configurations.
func (e *Ensemble) Len() int { return len(e.Configurations) }

// Last returns a copy of the final configuration.
func (e *Ensemble) Last() action.Configuration {
	return e.Configurations[e.Len()-1].Clone()
}

// Cut drops the first start configurations, e.g. for thermalization.
func (e *Ensemble) Cut(start int) (*Ensemble, error) {
	if start < 0 || start > e.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadCut, start, e.Len())
	}
	return e.subset(func(i int) bool { return i >= start }), nil
}

// Every keeps every stride-th configuration, starting with the first.
func (e *Ensemble) Every(stride int) (*Ensemble, error) {
	if stride < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadStride, stride)
	}
	return e.subset(func(i int) bool { return i%stride == 0 }), nil
}

func (e *Ensemble) subset(keep func(i int) bool) *Ensemble {
	out := &Ensemble{
		Action: e.Action,
		Inline: make(map[string][][]float64, len(e.Inline)),
		cache:  observable.NewCache(),
	}
	for i := range e.Configurations {
		if !keep(i) {
			continue
		}
		out.Configurations = append(out.Configurations, e.Configurations[i])
		out.Index = append(out.Index, e.Index[i])
		for name, rows := range e.Inline {
			out.Inline[name] = append(out.Inline[name], rows[i])
		}
	}
	return out
}

func zeroRows(n, w int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, w)
	}
	return rows
}

func width(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}
