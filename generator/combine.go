package generator

import (
	"fmt"
	"maps"
	"strings"

	"github.com/katalvlaran/supervillain/action"
)

// Sequence applies its generators in order as one chain step.
type Sequence struct {
	gens []Generator
}

var (
	_ Generator = (*Sequence)(nil)
	_ Stateful  = (*Sequence)(nil)
)

// Sequentially composes generators: Step(c) = gₖ(…g₂(g₁(c))).
func Sequentially(gens ...Generator) *Sequence {
	return &Sequence{gens: gens}
}

// Generators returns the members in application order.
func (q *Sequence) Generators() []Generator { return q.gens }

func (q *Sequence) Step(cfg action.Configuration) (action.Configuration, error) {
	result := cfg
	for _, g := range q.gens {
		next, err := g.Step(result)
		if err != nil {
			return action.Configuration{}, fmt.Errorf("%v: %w", g, err)
		}
		result = next
	}
	if len(q.gens) == 0 {
		return cfg.Clone(), nil
	}
	return result, nil
}

// InlineObservables is the union over the members.
func (q *Sequence) InlineObservables(steps int) map[string][][]float64 {
	combined := make(map[string][][]float64)
	for _, g := range q.gens {
		maps.Copy(combined, g.InlineObservables(steps))
	}
	return combined
}

// Report concatenates the members' reports.
func (q *Sequence) Report() string {
	reports := make([]string, 0, len(q.gens))
	for _, g := range q.gens {
		reports = append(reports, g.Report())
	}
	return strings.Join(reports, "\n\n")
}

func (q *Sequence) String() string {
	names := make([]string, 0, len(q.gens))
	for _, g := range q.gens {
		names = append(names, g.String())
	}
	return "Sequentially((" + strings.Join(names, ", ") + "))"
}

func (q *Sequence) MarshalState() ([]byte, error)    { return marshalChildren(q.gens) }
func (q *Sequence) UnmarshalState(data []byte) error { return unmarshalChildren(q.gens, data) }

// Thinning runs its generator k times per step and keeps only the last
// configuration. Inline observables are averaged over the k inner steps.
type Thinning struct {
	stride int
	g      Generator
}

var (
	_ Generator = (*Thinning)(nil)
	_ Stateful  = (*Thinning)(nil)
)

// KeepEvery thins g by k. Returns ErrBadStride if k < 1.
func KeepEvery(k int, g Generator) (*Thinning, error) {
	if k < 1 {
		return nil, ErrBadStride
	}
	return &Thinning{stride: k, g: g}, nil
}

// Stride returns k.
func (th *Thinning) Stride() int { return th.stride }

func (th *Thinning) Step(cfg action.Configuration) (action.Configuration, error) {
	blocked := make(map[string][]float64)
	for name := range th.g.InlineObservables(1) {
		blocked[name] = nil
	}

	result := cfg
	for i := 0; i < th.stride; i++ {
		next, err := th.g.Step(result)
		if err != nil {
			return action.Configuration{}, err
		}
		result = next
		for name, sum := range blocked {
			values, ok := result.Observables[name]
			if !ok {
				continue
			}
			if sum == nil {
				sum = make([]float64, len(values))
				blocked[name] = sum
			}
			for j, v := range values {
				sum[j] += v / float64(th.stride)
			}
		}
	}
	for name, mean := range blocked {
		if mean != nil {
			result.Observe(name, mean)
		}
	}
	return result, nil
}

func (th *Thinning) InlineObservables(steps int) map[string][][]float64 {
	return th.g.InlineObservables(steps)
}

func (th *Thinning) Report() string { return th.g.Report() }

func (th *Thinning) String() string {
	return fmt.Sprintf("KeepEvery(%d, %v)", th.stride, th.g)
}

func (th *Thinning) MarshalState() ([]byte, error) {
	return marshalChildren([]Generator{th.g})
}

func (th *Thinning) UnmarshalState(data []byte) error {
	return unmarshalChildren([]Generator{th.g}, data)
}
