package lattice_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/supervillain/lattice"
)

func BenchmarkD0_N64(b *testing.B) {
	l := lattice.MustNew(64)
	f := randomFloats(rand.New(rand.NewPCG(1, 1)), l.Sites)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lattice.D0(l, f)
	}
}

func BenchmarkDelta2_N64(b *testing.B) {
	l := lattice.MustNew(64)
	v := randomInts(rand.New(rand.NewPCG(1, 1)), l.Plaquettes)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lattice.Delta2(l, v)
	}
}

func BenchmarkCorrelation_N16(b *testing.B) {
	l := lattice.MustNew(16)
	f := lattice.Phases(randomFloats(rand.New(rand.NewPCG(1, 1)), l.Sites))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lattice.Correlation(l, f, f)
	}
}
