package lattice_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/supervillain/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizes covers even and odd sides, including the degenerate N=2 torus where
// the forward and backward neighbours coincide.
var sizes = []int{2, 3, 4, 5, 7, 8}

// TestNew_Sizes checks the form sizes of freshly built lattices.
func TestNew_Sizes(t *testing.T) {
	for _, n := range sizes {
		l, err := lattice.New(n)
		require.NoError(t, err)
		assert.Equal(t, n*n, l.Sites)
		assert.Equal(t, 2*n*n, l.Links)
		assert.Equal(t, n*n, l.Plaquettes)
	}
}

func TestNew_BadSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := lattice.New(n)
		assert.ErrorIs(t, err, lattice.ErrBadSize)
	}
	assert.Panics(t, func() { lattice.MustNew(1) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Lattice2D(5,5)", lattice.MustNew(5).String())
}

// TestModAndCentered checks both coordinate conventions on even and odd sides.
func TestModAndCentered(t *testing.T) {
	l := lattice.MustNew(4)
	tt, x := l.Mod(-1, 9)
	assert.Equal(t, 3, tt)
	assert.Equal(t, 1, x)

	var got []int
	for i := 0; i < 4; i++ {
		c, _ := l.Centered(i, 0)
		got = append(got, c)
	}
	assert.Equal(t, []int{0, 1, 2, -1}, got)

	l = lattice.MustNew(5)
	got = got[:0]
	for i := 0; i < 5; i++ {
		c, _ := l.Centered(i, 0)
		got = append(got, c)
	}
	assert.Equal(t, []int{0, 1, 2, -2, -1}, got)
}

// TestNeighbours checks that Next and Prev are inverse and wrap periodically.
func TestNeighbours(t *testing.T) {
	for _, n := range sizes {
		l := lattice.MustNew(n)
		for s := 0; s < l.Sites; s++ {
			for _, mu := range []lattice.Direction{lattice.T, lattice.X} {
				assert.Equal(t, s, l.Prev(l.Next(s, mu), mu))
				assert.Equal(t, s, l.Next(l.Prev(s, mu), mu))
			}
		}
		assert.Equal(t, l.Site(0, 0), l.Next(l.Site(n-1, 0), lattice.T))
		assert.Equal(t, l.Site(0, n-1), l.Prev(l.Site(0, 0), lattice.X))
	}
}

func TestLinkIndexing(t *testing.T) {
	l := lattice.MustNew(3)
	for link := 0; link < l.Links; link++ {
		mu, s := l.LinkSite(link)
		assert.Equal(t, link, l.Link(mu, s))
	}
}

func TestDisplacement(t *testing.T) {
	l := lattice.MustNew(5)
	a, b := l.Site(1, 4), l.Site(3, 0)
	tt, x := l.Coordinates(l.Displacement(a, b))
	assert.Equal(t, 3, tt)
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, l.Displacement(a, a))
	// Shortest periodic separation: (−2, −1) → 5.
	assert.Equal(t, 5, l.DistanceSquared(a, b))
}

// randomInts fills a form of the given size with small integers.
func randomInts(r *rand.Rand, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = r.IntN(21) - 10
	}
	return out
}

func randomFloats(r *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = r.NormFloat64()
	}
	return out
}

// TestNilpotency checks dd = 0 and δδ = 0 on random forms.
func TestNilpotency(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range sizes {
		l := lattice.MustNew(n)
		f := randomInts(r, l.Sites)
		assert.Equal(t, make([]int, l.Plaquettes), lattice.D1(l, lattice.D0(l, f)), "dd, N=%d", n)

		v := randomInts(r, l.Plaquettes)
		assert.Equal(t, make([]int, l.Sites), lattice.Delta1(l, lattice.Delta2(l, v)), "δδ, N=%d", n)
	}
}

// TestAdjoint checks ⟨d f, a⟩ = ⟨f, δ a⟩ for both ranks.
func TestAdjoint(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range sizes {
		l := lattice.MustNew(n)

		f := randomFloats(r, l.Sites)
		a := randomFloats(r, l.Links)
		assert.InDelta(t, lattice.Inner(lattice.D0(l, f), a), lattice.Inner(f, lattice.Delta1(l, a)), 1e-9)

		v := randomFloats(r, l.Plaquettes)
		assert.InDelta(t, lattice.Inner(lattice.D1(l, a), v), lattice.Inner(a, lattice.Delta2(l, v)), 1e-9)
	}
}

// TestD1_UnitPlaquette checks the orientation of a single plaquette boundary.
func TestD1_UnitPlaquette(t *testing.T) {
	l := lattice.MustNew(4)
	p := l.Site(1, 2)
	unit := make([]int, l.Plaquettes)
	unit[p] = 1

	boundary := lattice.Delta2(l, unit)
	assert.Equal(t, 1, boundary[l.Link(lattice.T, p)])
	assert.Equal(t, -1, boundary[l.Link(lattice.X, p)])
	assert.Equal(t, -1, boundary[l.Link(lattice.T, l.Next(p, lattice.X))])
	assert.Equal(t, 1, boundary[l.Link(lattice.X, l.Next(p, lattice.T))])

	// The boundary of a plaquette is a closed loop.
	assert.Equal(t, make([]int, l.Sites), lattice.Delta1(l, boundary))
	// Its curl is concentrated on the plaquette and its four edge-sharing neighbours.
	curl := lattice.D1(l, boundary)
	assert.Equal(t, 4, curl[p])
}

func TestRankDispatch(t *testing.T) {
	l := lattice.MustNew(3)
	f := make([]int, l.Sites)

	out, err := lattice.D(l, 0, f)
	require.NoError(t, err)
	assert.Len(t, out, l.Links)

	_, err = lattice.D(l, 2, f)
	assert.ErrorIs(t, err, lattice.ErrRank)

	_, err = lattice.Delta(l, 0, f)
	assert.ErrorIs(t, err, lattice.ErrRank)

	_, err = lattice.Form[int](l, 3, 1)
	assert.ErrorIs(t, err, lattice.ErrRank)

	forms, err := lattice.Form[float64](l, 1, 2)
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Len(t, forms[1], l.Links)

	assert.Panics(t, func() { lattice.Zeros[int](l, -1) })
	assert.Panics(t, func() { lattice.D0(l, make([]int, l.Links)) })
}

func TestRoll(t *testing.T) {
	l := lattice.MustNew(3)
	f := make([]int, l.Sites)
	f[l.Site(0, 0)] = 7
	rolled := lattice.Roll(l, f, 1, -1)
	assert.Equal(t, 7, rolled[l.Site(1, 2)])
	assert.Equal(t, 7, lattice.Inner(rolled, rolled)/7)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, []float64{1, -2, 3}, lattice.Convert[float64]([]int{1, -2, 3}))
}
