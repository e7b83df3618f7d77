package ensemble

import (
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/observable"
)

// Measure evaluates o on every configuration, concurrently, and memoizes
// the rows until the chain next changes.
func (e *Ensemble) Measure(o observable.Observable) ([][]float64, error) {
	if rows, ok := e.memo().Get(o); ok {
		return rows, nil
	}
	rows, err := iter.MapErr(e.Configurations, func(cfg *action.Configuration) ([]float64, error) {
		return o.Measure(e.Action, *cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("ensemble: %s: %w", o, err)
	}
	e.memo().Put(o, rows)
	return rows, nil
}

// Mean is the ensemble average of o.
func (e *Ensemble) Mean(o observable.Observable) ([]float64, error) {
	if e.Len() == 0 {
		return nil, ErrEmpty
	}
	rows, err := e.Measure(o)
	if err != nil {
		return nil, err
	}
	return observable.Mean(rows), nil
}

// InlineMean averages an inline series, e.g. a worm's correlator estimate.
// The boolean is false if the series was not recorded.
func (e *Ensemble) InlineMean(name string) ([]float64, bool) {
	rows, ok := e.Inline[name]
	if !ok || len(rows) == 0 {
		return nil, false
	}
	return observable.Mean(rows), true
}
