package worldline_test

import (
	"testing"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/worldline"
)

func BenchmarkHammer_N32(b *testing.B) {
	a, err := action.NewWorldline(lattice.MustNew(32), 0.5, 3)
	if err != nil {
		b.Fatal(err)
	}
	h, err := worldline.NewHammer(a, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	cfg := a.Cold()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if cfg, err = h.Step(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPlaquetteUpdate_N32(b *testing.B) {
	a, err := action.NewWorldline(lattice.MustNew(32), 0.5, 3)
	if err != nil {
		b.Fatal(err)
	}
	g, err := worldline.NewPlaquetteUpdate(a, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	cfg := a.Cold()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if cfg, err = g.Step(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
