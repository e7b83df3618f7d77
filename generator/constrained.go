package generator

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
)

// Checked verifies the constraint on every configuration its generator
// emits. A violation is a defect in the generator and aborts the chain.
type Checked struct {
	a action.Action
	g Generator
}

var (
	_ Generator = (*Checked)(nil)
	_ Stateful  = (*Checked)(nil)
)

// Constrained wraps g with a validity check against a.
func Constrained(a action.Action, g Generator) *Checked {
	return &Checked{a: a, g: g}
}

func (c *Checked) Step(cfg action.Configuration) (action.Configuration, error) {
	out, err := c.g.Step(cfg)
	if err != nil {
		return action.Configuration{}, err
	}
	if !c.a.Valid(out) {
		return action.Configuration{}, fmt.Errorf("%v: %w", c.g, action.ErrConstraintViolated)
	}
	return out, nil
}

func (c *Checked) InlineObservables(steps int) map[string][][]float64 {
	return c.g.InlineObservables(steps)
}

func (c *Checked) Report() string { return c.g.Report() }
func (c *Checked) String() string { return fmt.Sprintf("Constrained(%v)", c.g) }

func (c *Checked) MarshalState() ([]byte, error) { return marshalChildren([]Generator{c.g}) }

func (c *Checked) UnmarshalState(data []byte) error {
	return unmarshalChildren([]Generator{c.g}, data)
}
