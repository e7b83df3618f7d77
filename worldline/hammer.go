package worldline

import (
	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/worm"
)

// NewHammer composes an ergodic Worldline update: VortexUpdate, CoexactUpdate,
// WrappingUpdate and a Geometric Worm. Every member gets a stream derived
// from the seed in opts.
func NewHammer(a action.Action, opts ...generator.Option) (*generator.Sequence, error) {
	w, err := asWorldline(a)
	if err != nil {
		return nil, err
	}
	o := generator.Apply(opts...)

	vortex, err := NewVortexUpdate(w, 1, o.Child(0)...)
	if err != nil {
		return nil, err
	}
	coexact, err := NewCoexactUpdate(w, 1, o.Child(1)...)
	if err != nil {
		return nil, err
	}
	wrapping, err := NewWrappingUpdate(w, 1, o.Child(2)...)
	if err != nil {
		return nil, err
	}
	wormUpdate, err := NewWorm(w, worm.Geometric, o.Child(3)...)
	if err != nil {
		return nil, err
	}
	return generator.Sequentially(vortex, coexact, wrapping, wormUpdate), nil
}
