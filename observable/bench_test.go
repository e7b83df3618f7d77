package observable_test

import (
	"testing"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/observable"
)

func BenchmarkSpinSpin_Worldline_N16(b *testing.B) {
	a, err := action.NewWorldline(lattice.MustNew(16), 0.5, 2)
	if err != nil {
		b.Fatal(err)
	}
	cfg := a.Cold()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := observable.SpinSpin.Measure(a, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVortexVortex_Villain_N16(b *testing.B) {
	a, err := action.NewVillain(lattice.MustNew(16), 0.5, 1)
	if err != nil {
		b.Fatal(err)
	}
	cfg := a.Cold()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := observable.VortexVortex.Measure(a, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
