package generator_test

import (
	"testing"

	"github.com/katalvlaran/supervillain/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_SeedDeterminism(t *testing.T) {
	a, b := generator.NewStream(42), generator.NewStream(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	c := generator.NewStream(43)
	assert.NotEqual(t, generator.NewStream(42).Uint64(), c.Uint64())
}

func TestStream_MarshalContinuity(t *testing.T) {
	s := generator.NewStream(5)
	s.Uint64()
	state, err := s.MarshalBinary()
	require.NoError(t, err)
	want := s.Uint64()

	r := generator.NewStream(6)
	require.NoError(t, r.UnmarshalBinary(state))
	assert.Equal(t, want, r.Uint64())
}

func TestStream_Draws(t *testing.T) {
	s := generator.NewStream(9)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		sign := s.Sign()
		require.True(t, sign == 1 || sign == -1)

		c := s.Nonzero(2)
		require.NotZero(t, c)
		require.True(t, c >= -2 && c <= 2)
		seen[c] = true

		u := s.Uniform(-3, 3)
		require.True(t, u >= -3 && u < 3)
	}
	assert.Len(t, seen, 4)
}

func TestDeriveSeed_Distinct(t *testing.T) {
	seen := map[uint64]bool{}
	for i := uint64(0); i < 64; i++ {
		seen[generator.DeriveSeed(1, i)] = true
	}
	assert.Len(t, seen, 64)
}

func TestOptions(t *testing.T) {
	o := generator.Apply(generator.WithSeed(3), generator.WithParallelism(4))
	assert.Equal(t, uint64(3), o.Seed)
	assert.Equal(t, 4, o.Parallelism)
	assert.Panics(t, func() { generator.WithParallelism(0) })

	c0 := generator.Apply(o.Child(0)...)
	c1 := generator.Apply(o.Child(1)...)
	assert.NotEqual(t, c0.Seed, c1.Seed)
	assert.Equal(t, 4, c1.Parallelism)

	unseeded := generator.Apply(generator.DefaultOptions().Child(3)...)
	assert.Zero(t, unseeded.Seed)
}

// TestSweeper_ParallelMatchesSerial checks that the worker count does not
// change the result of a kernel that writes only its own slot.
func TestSweeper_ParallelMatchesSerial(t *testing.T) {
	class := make([]int, 257)
	for i := range class {
		class[i] = 3 * i
	}
	run := func(p int) []int {
		out := make([]int, len(class))
		generator.NewSweeper(p).Sweep(class, func(i, e int) { out[i] = e * e })
		return out
	}
	assert.Equal(t, run(1), run(8))
}
