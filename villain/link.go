package villain

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
)

// LinkUpdate proposes n += W·c on every link, c uniform in {±1, …, ±interval}.
// With φ frozen each link enters the action alone, so the whole 1-form is one
// class. Shifting by multiples of W leaves d(n) mod W unchanged; W = ∞ has
// no such shifts and is rejected with ErrInfiniteModulus.
type LinkUpdate struct {
	generator.Base
	a        *action.Villain
	interval int
	links    []int
}

var _ generator.Generator = (*LinkUpdate)(nil)

// NewLinkUpdate builds the update; interval must be at least 1.
func NewLinkUpdate(a action.Action, interval int, opts ...generator.Option) (*LinkUpdate, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	if v.W().IsInfinite() {
		return nil, generator.ErrInfiniteModulus
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: n interval %d", generator.ErrBadInterval, interval)
	}
	links := make([]int, v.Lattice().Links)
	for i := range links {
		links[i] = i
	}
	return &LinkUpdate{Base: generator.NewBase(opts...), a: v, interval: interval, links: links}, nil
}

func (u *LinkUpdate) Step(cfg action.Configuration) (action.Configuration, error) {
	out := cfg.Clone()
	kappa, w := u.a.Kappa(), int(u.a.W())
	x := u.a.Links(out)

	accepted, acceptance, err := generator.SweepClass(&u.Base, u.links,
		func(int) int { return w * u.RNG.Nonzero(u.interval) },
		func(link, change int) float64 {
			return villainCost(kappa, x[link], -twoPi*float64(change))
		},
		func(link, change int) { out.N[link] += change },
	)
	if err != nil {
		return action.Configuration{}, err
	}
	u.Record(len(u.links), accepted, acceptance)
	return out, nil
}

func (u *LinkUpdate) InlineObservables(int) map[string][][]float64 { return nil }
func (u *LinkUpdate) Report() string                               { return u.Summary("single-link") }
func (u *LinkUpdate) String() string                               { return "LinkUpdate" }
