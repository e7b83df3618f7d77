package villain

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/worm"
)

// Inline observables emitted by Worm.
const (
	VortexVortex = "Vortex_Vortex"
	WormLength   = "Worm_Length"
)

// Worm moves a vortex/anti-vortex pair over the plaquettes, changing n by ±1
// on every crossed link, until the pair annihilates. The head-minus-tail
// displacement histogram estimates the vortex two-point function.
// φ is never touched; combine Worm with SiteUpdate for ergodicity.
//
// Worm_Length is the number of displacements tallied, so it always equals
// the histogram's sum.
type Worm struct {
	generator.Base
	a       *action.Villain
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
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	wo := worm.DefaultOptions()
	wo.Variant = variant
	return &Worm{
		Base:  generator.NewBase(opts...),
		a:     v,
		opts:  wo,
		moves: worm.DualMoves(v.Lattice()),
	}, nil
}

func (u *Worm) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	l := u.a.Lattice()
	surface := &worm.Surface{
		Lattice:    l,
		Moves:      u.moves,
		Background: lattice.D0(l, out.Phi),
		Field:      out.N,
		Coupling:   u.a.Kappa() / 2,
		Step:       -twoPi,
	}
	res, err := worm.Walk(u.RNG, surface, u.opts)
	if err != nil {
		return action.Configuration{}, fmt.Errorf("villain: %w", err)
	}
	u.lengths.Record(res.Transitions)
	u.Record(1, 1, 1)

	out.Observe(VortexVortex, res.Histogram)
	out.Observe(WormLength, []float64{float64(res.Transitions)})
	return out, nil
}

func (u *Worm) InlineObservables(steps int) map[string][][]float64 {
	return map[string][][]float64{
		VortexVortex: rows(steps, u.a.Lattice().Plaquettes),
		WormLength:   rows(steps, 1),
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
