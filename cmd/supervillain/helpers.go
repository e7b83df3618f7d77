// Shared helpers for supervillain commands.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/checkpoint"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/villain"
	"github.com/katalvlaran/supervillain/worldline"
)

// recipe is everything needed to assemble the same generator twice.
type recipe struct {
	Seed        uint64
	Parallelism int
	Stride      int
}

func (r recipe) meta() checkpoint.Meta {
	return checkpoint.Meta{Seed: r.Seed, Parallelism: r.Parallelism, Stride: r.Stride}
}

// recipeOf reads the recipe of a new run. A zero seed is replaced by a
// random one so the run can be recorded and reproduced.
func recipeOf(cfg *viper.Viper) (recipe, error) {
	r := recipe{
		Seed:        cfg.GetUint64(cfgKeySeed),
		Parallelism: cfg.GetInt(cfgKeyParallelism),
		Stride:      cfg.GetInt(cfgKeyEvery),
	}
	if r.Seed == 0 {
		r.Seed = rand.Uint64() | 1
	}
	if r.Parallelism < 1 {
		return r, fmt.Errorf("%w: parallelism must be at least 1, got %d", errUsage, r.Parallelism)
	}
	if r.Stride < 1 {
		return r, fmt.Errorf("%w: %d", generator.ErrBadStride, r.Stride)
	}
	return r, nil
}

// recipeFromManifest recovers the recipe a stored run was generated with.
func recipeFromManifest(m checkpoint.Manifest) recipe {
	r := recipe{Seed: m.Seed, Parallelism: m.Parallelism, Stride: m.Stride}
	if r.Parallelism < 1 {
		r.Parallelism = generator.DefaultParallelism
	}
	if r.Stride < 1 {
		r.Stride = 1
	}
	return r
}

// actionOf builds the action named by formulation, n, kappa and w.
func actionOf(cfg *viper.Viper) (action.Action, error) {
	kind, err := action.ParseKind(cfg.GetString(cfgKeyFormulation))
	if err != nil {
		return nil, err
	}
	w, err := action.ParseModulus(cfg.GetString(cfgKeyW))
	if err != nil {
		return nil, err
	}
	l, err := lattice.New(cfg.GetInt(cfgKeyN))
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, cfg.GetInt(cfgKeyN))
	}
	return action.New(kind, l, cfg.GetFloat64(cfgKeyKappa), w)
}

// buildGenerator assembles the hammer of a's formulation, thinned by the
// recipe's stride, checked against the constraint after every kept
// configuration and logged at debug level.
func buildGenerator(a action.Action, r recipe, logger *slog.Logger) (generator.Generator, error) {
	opts := []generator.Option{
		generator.WithSeed(r.Seed),
		generator.WithParallelism(r.Parallelism),
	}
	var (
		hammer generator.Generator
		err    error
	)
	switch a.Kind() {
	case action.KindVillain:
		hammer, err = villain.NewHammer(a, opts...)
	case action.KindWorldline:
		hammer, err = worldline.NewHammer(a, opts...)
	default:
		err = fmt.Errorf("%w: %v", action.ErrBadKind, a.Kind())
	}
	if err != nil {
		return nil, err
	}
	thinned, err := generator.KeepEvery(r.Stride, hammer)
	if err != nil {
		return nil, err
	}
	return generator.Logged(generator.Constrained(a, thinned), logger), nil
}

// progressLogger reports roughly every tenth of a run.
func progressLogger(logger *slog.Logger) func(done, total int) {
	return func(done, total int) {
		every := max(total/10, 1)
		if done%every == 0 || done == total {
			logger.Info("progress", "done", done, "total", total)
		}
	}
}

// logMetrics writes the current value of every gathered metric.
func logMetrics(logger *slog.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				logger.Info("metric", "name", mf.GetName(),
					"count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
		}
	}
	return nil
}
