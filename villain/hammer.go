package villain

import (
	"math"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/worm"
)

// NewHammer composes an ergodic Villain update:
// SiteUpdate, LinkUpdate, ExactUpdate, HolonomyUpdate and a Geometric Worm.
// LinkUpdate changes n by multiples of W and is left out when W = ∞.
// Every member gets a stream derived from the seed in opts.
func NewHammer(a action.Action, opts ...generator.Option) (*generator.Sequence, error) {
	v, err := asVillain(a)
	if err != nil {
		return nil, err
	}
	o := generator.Apply(opts...)

	var gens []generator.Generator
	site, err := NewSiteUpdate(v, math.Pi, o.Child(len(gens))...)
	if err != nil {
		return nil, err
	}
	gens = append(gens, site)

	if !v.W().IsInfinite() {
		link, err := NewLinkUpdate(v, 1, o.Child(len(gens))...)
		if err != nil {
			return nil, err
		}
		gens = append(gens, link)
	}

	exact, err := NewExactUpdate(v, 1, o.Child(len(gens))...)
	if err != nil {
		return nil, err
	}
	gens = append(gens, exact)

	holonomy, err := NewHolonomyUpdate(v, 1, o.Child(len(gens))...)
	if err != nil {
		return nil, err
	}
	gens = append(gens, holonomy)

	w, err := NewWorm(v, worm.Geometric, o.Child(len(gens))...)
	if err != nil {
		return nil, err
	}
	gens = append(gens, w)

	return generator.Sequentially(gens...), nil
}
