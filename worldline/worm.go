package worldline

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/worm"
)

// Inline observables emitted by Worm.
const (
	SpinSpin   = "Spin_Spin"
	WormLength = "Worm_Length"
)

// Worm opens a charge/anti-charge pair on a site and moves the head along
// links, changing m by ±1 on each crossing, until the pair annihilates. The
// displacement histogram estimates the spin two-point function. v is never
// touched.
//
// Worm_Length is the number of displacements tallied, so it always equals
// the histogram's sum. For Classic it counts rejected proposals as well as
// crossings.
type Worm struct {
	generator.Base
	a       *action.Worldline
	opts    worm.Options
	moves   worm.Moves
	lengths worm.Lengths
}

var (
	_ generator.Generator = (*Worm)(nil)
	_ generator.Stateful  = (*Worm)(nil)
)

// NewWorm builds a worm of the given variant; Geometric is the reference.
func NewWorm(a action.Action, variant worm.Variant, opts ...generator.Option) (*Worm, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	wo := worm.DefaultOptions()
	wo.Variant = variant
	return &Worm{
		Base:  generator.NewBase(opts...),
		a:     w,
		opts:  wo,
		moves: worm.DirectMoves(w.Lattice()),
	}, nil
}

func (u *Worm) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()

	background := u.a.Vorticity(out)
	for i := range background {
		background[i] = -background[i]
	}
	surface := &worm.Surface{
		Lattice:    l,
		Moves:      u.moves,
		Background: background,
		Field:      out.M,
		Coupling:   1 / (2 * u.a.Kappa()),
		Step:       1,
	}
	res, err := worm.Walk(u.RNG, surface, u.opts)
	if err != nil {
		return action.Configuration{}, fmt.Errorf("worldline: %w", err)
	}
	u.lengths.Record(res.Transitions)
	u.Record(1, 1, 1)

	out.Observe(SpinSpin, res.Histogram)
	out.Observe(WormLength, []float64{float64(res.Transitions)})
	return out, nil
}

func (u *Worm) InlineObservables(steps int) map[string][][]float64 {
	return map[string][][]float64{
		SpinSpin:   rows(steps, u.a.Lattice().Sites),
		WormLength: rows(steps, 1),
	}
}

// Lengths returns the accumulated worm-length statistics.
func (u *Worm) Lengths() worm.Lengths { return u.lengths }

func (u *Worm) Report() string { return u.lengths.Report() }
func (u *Worm) String() string { return u.opts.Variant.String() + "Worm" }

// MarshalState adds the length statistics to the base state.
func (u *Worm) MarshalState() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(u.lengths); err != nil {
		return nil, err
	}
	return u.MarshalStateWith(buf.Bytes())
}

func (u *Worm) UnmarshalState(data []byte) error {
	extra, err := u.UnmarshalStateWith(data)
	if err != nil {
		return err
	}
	var lengths worm.Lengths
	if err := gob.NewDecoder(bytes.NewReader(extra)).Decode(&lengths); err != nil {
		return fmt.Errorf("%w: worm lengths: %v", generator.ErrState, err)
	}
	u.lengths = lengths
	return nil
}

func rows(steps, width int) [][]float64 {
	out := make([][]float64, steps)
	for i := range out {
		out[i] = make([]float64, width)
	}
	return out
}
