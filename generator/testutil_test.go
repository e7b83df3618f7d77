package generator_test

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// drift is a minimal Villain updater: it adds a uniform draw to every φ and
// records the mean draw as an inline observable.
type drift struct {
	generator.Base
	sites int
}

func newDrift(sites int, seed uint64) *drift {
	return &drift{Base: generator.NewBase(generator.WithSeed(seed)), sites: sites}
}

func (d *drift) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	var mean float64
	for s := range out.Phi {
		x := d.RNG.Uniform(-1, 1)
		out.Phi[s] += x
		mean += x / float64(d.sites)
	}
	d.Record(d.sites, d.sites, float64(d.sites))
	out.Observe("Drift", []float64{mean})
	return out, nil
}

func (d *drift) InlineObservables(steps int) map[string][][]float64 {
	rows := make([][]float64, steps)
	for i := range rows {
		rows[i] = make([]float64, 1)
	}
	return map[string][][]float64{"Drift": rows}
}

func (d *drift) Report() string { return d.Summary("drift") }
func (d *drift) String() string { return "Drift" }

// vandal breaks the Villain constraint on purpose.
type vandal struct{}

func (vandal) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	out.N[0]++
	return out, nil
}
func (vandal) InlineObservables(int) map[string][][]float64 { return nil }
func (vandal) Report() string                               { return "" }
func (vandal) String() string                               { return "Vandal" }

// failing always errors.
type failing struct{}

var errBoom = fmt.Errorf("boom")

func (failing) Step(action.Configuration) (action.Configuration, error) {
	return action.Configuration{}, errBoom
}
func (failing) InlineObservables(int) map[string][][]float64 { return nil }
func (failing) Report() string                               { return "" }
func (failing) String() string                               { return "Failing" }
