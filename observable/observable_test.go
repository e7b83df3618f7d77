package observable_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/observable"
	"github.com/katalvlaran/supervillain/villain"
	"github.com/katalvlaran/supervillain/worldline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, o := range observable.All() {
		got, err := observable.Parse(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := observable.Parse("Energy")
	assert.ErrorIs(t, err, observable.ErrUnknown)
	assert.Equal(t, "Spin_Spin", observable.SpinSpin.String())
	assert.Equal(t, villain.VortexVortex, observable.VortexVortex.String())
	assert.Equal(t, worldline.SpinSpin, observable.SpinSpin.String())
}

// TestPaths checks that the fixed paths have the intended boundaries.
func TestPaths(t *testing.T) {
	for _, n := range []int{2, 4, 5} {
		l := lattice.MustNew(n)
		for delta := 0; delta < l.Sites; delta++ {
			dt, dx := l.Centered(l.Coordinates(delta))

			want := make([]int, l.Sites)
			if delta != 0 {
				want[0], want[delta] = -1, +1
			}
			assert.Equal(t, want, lattice.Delta1(l, observable.DirectPathForm(l, dt, dx)), "direct N=%d Δ=(%d,%d)", n, dt, dx)

			for i := range want {
				want[i] = -want[i]
			}
			assert.Equal(t, want, lattice.D1(l, observable.DualPathForm(l, dt, dx)), "dual N=%d Δ=(%d,%d)", n, dt, dx)
		}
	}
}

func TestWidths(t *testing.T) {
	for _, a := range []action.Action{villainAction(t, 3, 0.4, 2), worldlineAction(t, 3, 0.4, 2)} {
		cfg := a.Cold()
		for _, o := range observable.All() {
			got, err := o.Measure(a, cfg)
			if o == observable.TopologicalSusceptibility && a.Kind() == action.KindWorldline {
				assert.ErrorIs(t, err, observable.ErrUnsupported)
				continue
			}
			require.NoError(t, err, "%s %v", o, a.Kind())
			assert.Len(t, got, o.Width(a.Lattice()), "%s %v", o, a.Kind())
		}
	}
}

func TestCold_Villain(t *testing.T) {
	kappa := 0.3
	a := villainAction(t, 4, kappa, 1)
	l := a.Lattice()
	cfg := a.Cold()

	density, err := observable.Measure(a, "ActionDensity", cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, density)

	spin, err := observable.SpinSpin.Measure(a, cfg)
	require.NoError(t, err)
	for _, v := range spin {
		assert.InDelta(t, 1, v, 1e-12)
	}

	vortex, err := observable.VortexVortex.Measure(a, cfg)
	require.NoError(t, err)
	for delta, v := range vortex {
		dt, dx := l.Centered(l.Coordinates(delta))
		length := math.Abs(float64(dt)) + math.Abs(float64(dx))
		assert.InDelta(t, math.Exp(-2*math.Pi*math.Pi*kappa*length), v, 1e-12)
	}
	assert.Equal(t, 1.0, vortex[0])
}

func TestCold_Worldline(t *testing.T) {
	kappa := 0.7
	a := worldlineAction(t, 4, kappa, 3)
	l := a.Lattice()
	cfg := a.Cold()

	density, err := observable.ActionDensity.Measure(a, cfg)
	require.NoError(t, err)
	assert.InDelta(t, a.Constant()/float64(l.Sites), density[0], 1e-12)

	internal, err := observable.InternalEnergyDensity.Measure(a, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1, internal[0], 1e-12)

	spin, err := observable.SpinSpin.Measure(a, cfg)
	require.NoError(t, err)
	for delta, v := range spin {
		dt, dx := l.Centered(l.Coordinates(delta))
		length := math.Abs(float64(dt)) + math.Abs(float64(dx))
		assert.InDelta(t, math.Exp(-length/(2*kappa)), v, 1e-12)
	}

	vortex, err := observable.VortexVortex.Measure(a, cfg)
	require.NoError(t, err)
	for _, v := range vortex {
		assert.InDelta(t, 1, v, 1e-12)
	}

	winding, err := observable.WindingWinding.Measure(a, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1/(math.Pi*math.Pi*kappa), winding[0], 1e-12)
	assert.InDelta(t, -1/(4*math.Pi*math.Pi*kappa), winding[1], 1e-12)
}

func TestTorusWrapping(t *testing.T) {
	a := worldlineAction(t, 3, 1, action.Infinity)
	l := a.Lattice()
	cfg := a.Cold()
	cfg.M[0] = 1
	_, err := observable.TorusWrapping.Measure(a, cfg)
	assert.ErrorIs(t, err, action.ErrConstraintViolated)

	cfg = a.Cold()
	for t0 := 0; t0 < l.N; t0++ {
		cfg.M[l.Link(lattice.T, l.Site(t0, 1))] = -2
	}
	got, err := observable.TorusWrapping.Measure(a, cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0}, got)
}

func TestInvalid(t *testing.T) {
	a := villainAction(t, 3, 1, 1)
	_, err := observable.Links.Measure(a, action.Configuration{})
	assert.ErrorIs(t, err, action.ErrShape)
	_, err = observable.Links.Measure(nil, a.Cold())
	assert.ErrorIs(t, err, observable.ErrUnsupported)

	a2 := villainAction(t, 3, 1, 2)
	cfg := a2.Cold()
	cfg.N[0] = 1
	_, err = observable.WindingSquared.Measure(a2, cfg)
	assert.ErrorIs(t, err, action.ErrConstraintViolated)
}

// TestGaugeInvariance transforms sampled Villain configurations by random
// integer k ∈ [−10, 10] and compares every observable.
func TestGaugeInvariance(t *testing.T) {
	a := villainAction(t, 5, 0.5, 1)
	hammer, err := villain.NewHammer(a, generator.WithSeed(11))
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(3, 5))

	cfg := a.Cold()
	configurations := 1000
	if testing.Short() {
		configurations = 100
	}
	for i := 0; i < configurations; i++ {
		cfg, err = hammer.Step(cfg)
		require.NoError(t, err)

		k := make([]int, a.Lattice().Sites)
		for s := range k {
			k[s] = r.IntN(21) - 10
		}
		moved, err := a.GaugeTransform(cfg, k)
		require.NoError(t, err)

		for _, o := range observable.All() {
			want, err := o.Measure(a, cfg)
			require.NoError(t, err)
			got, err := o.Measure(a, moved)
			require.NoError(t, err)
			requireClose(t, want, got, "%s on configuration %d", o, i)
		}
	}
}

// TestEquivalenceInvariance shifts sampled Worldline configurations by
// random λ and compares every observable the formulation defines.
func TestEquivalenceInvariance(t *testing.T) {
	a := worldlineAction(t, 4, 0.5, 3)
	hammer, err := worldline.NewHammer(a, generator.WithSeed(13))
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(7, 1))

	cfg := a.Cold()
	for i := 0; i < 200; i++ {
		cfg, err = hammer.Step(cfg)
		require.NoError(t, err)

		lambda := make([]int, a.Lattice().Plaquettes)
		for p := range lambda {
			lambda[p] = r.IntN(11) - 5
		}
		moved, err := a.EquivalenceTransform(cfg, lambda)
		require.NoError(t, err)
		canonical, err := a.CanonicalV(cfg)
		require.NoError(t, err)

		for _, o := range observable.All() {
			if o == observable.TopologicalSusceptibility {
				continue
			}
			want, err := o.Measure(a, cfg)
			require.NoError(t, err)
			got, err := o.Measure(a, moved)
			require.NoError(t, err)
			requireClose(t, want, got, "%s on configuration %d", o, i)
			got, err = o.Measure(a, canonical)
			require.NoError(t, err)
			requireClose(t, want, got, "%s canonical on configuration %d", o, i)
		}
	}
}

func TestDerived(t *testing.T) {
	assert.Equal(t, 6.0, observable.SpinSusceptibility([]float64{1, 2, 3}))

	chi, err := observable.VortexSusceptibility([]float64{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, chi)
	_, err = observable.VortexSusceptibility([]float64{0, 1})
	assert.ErrorIs(t, err, observable.ErrNormalization)

	assert.Equal(t, []float64{2, 3}, observable.Mean([][]float64{{1, 2}, {3, 4}}))
	assert.Nil(t, observable.Mean(nil))
}

func TestDerived_Scaled(t *testing.T) {
	l := lattice.MustNew(4)
	assert.InDelta(t, 3/math.Pow(4, 1.75), observable.SpinSusceptibilityScaled(l, 3), 1e-15)

	w2 := worldlineAction(t, 4, 0.3, 2)
	assert.Equal(t, 0.5, observable.CriticalVortexDimension(w2))
	assert.InDelta(t, 5/math.Pow(4, 1), observable.VortexSusceptibilityScaled(w2, 5), 1e-15)

	inf := villainAction(t, 4, 0.1, action.Infinity)
	assert.InDelta(t, 0.4*math.Pi, observable.CriticalVortexDimension(inf), 1e-15)
}

func TestVortexCriticalMoment(t *testing.T) {
	// On 3×3 four displacements have r² = 1 and four have r² = 2, so with
	// Δ_V = 2 a flat correlator gives (4·1 + 4·4) / 9.
	a := worldlineAction(t, 3, 0.5, 1)
	flat := make([]float64, 9)
	for i := range flat {
		flat[i] = 2
	}
	moment, err := observable.VortexCriticalMoment(a, flat)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/9, moment, 1e-12)

	flat[0] = 0
	_, err = observable.VortexCriticalMoment(a, flat)
	assert.ErrorIs(t, err, observable.ErrNormalization)
	_, err = observable.VortexCriticalMoment(a, []float64{1})
	assert.ErrorIs(t, err, observable.ErrNormalization)
}

// sampled returns configurations from a short hammer chain.
func sampled(t *testing.T, a action.Action, count int) []action.Configuration {
	t.Helper()
	var (
		g   generator.Generator
		err error
	)
	switch a := a.(type) {
	case *action.Villain:
		g, err = villain.NewHammer(a, generator.WithSeed(17))
	case *action.Worldline:
		g, err = worldline.NewHammer(a, generator.WithSeed(17))
	}
	require.NoError(t, err)
	out := make([]action.Configuration, 0, count)
	cfg := a.Cold()
	for i := 0; i < count; i++ {
		cfg, err = g.Step(cfg)
		require.NoError(t, err)
		out = append(out, cfg)
	}
	return out
}

// TestWindingWinding checks that the correlator reduces to WindingSquared at
// the origin and integrates to zero, the plaquette winding being exact.
func TestWindingWinding(t *testing.T) {
	for _, w := range []action.Modulus{1, 2, action.Infinity} {
		for _, a := range []action.Action{villainAction(t, 4, 0.6, w), worldlineAction(t, 4, 0.6, w)} {
			for i, cfg := range sampled(t, a, 20) {
				ww, err := observable.WindingWinding.Measure(a, cfg)
				require.NoError(t, err)
				squared, err := observable.WindingSquared.Measure(a, cfg)
				require.NoError(t, err)
				require.InDelta(t, squared[0], ww[0], 1e-12, "%v W=%v configuration %d", a.Kind(), w, i)

				var sum float64
				for _, v := range ww {
					sum += v
				}
				require.InDelta(t, 0, sum, 1e-9, "%v W=%v configuration %d", a.Kind(), w, i)
			}
		}
	}
}

// TestVertexVertex checks that the vertex correlator is the spin correlator
// and that the sloppy estimator agrees with it where it must.
func TestVertexVertex(t *testing.T) {
	for _, a := range []action.Action{villainAction(t, 4, 0.6, 2), worldlineAction(t, 4, 0.6, 2)} {
		for _, cfg := range sampled(t, a, 10) {
			spin, err := observable.SpinSpin.Measure(a, cfg)
			require.NoError(t, err)
			vertex, err := observable.VertexVertex.Measure(a, cfg)
			require.NoError(t, err)
			assert.Equal(t, spin, vertex)

			sloppy, err := observable.SloppySpinSpin.Measure(a, cfg)
			require.NoError(t, err)
			assert.InDelta(t, 1, sloppy[0], 1e-12)
			if a.Kind() == action.KindVillain {
				assert.Equal(t, spin, sloppy)
			}
		}
	}
}

func TestSloppySpinSpin_Cold(t *testing.T) {
	kappa := 0.7
	a := worldlineAction(t, 4, kappa, 3)
	l := a.Lattice()
	sloppy, err := observable.SloppySpinSpin.Measure(a, a.Cold())
	require.NoError(t, err)
	full, err := observable.SpinSpin.Measure(a, a.Cold())
	require.NoError(t, err)
	for delta, v := range sloppy {
		dt, dx := l.Centered(l.Coordinates(delta))
		length := math.Abs(float64(dt)) + math.Abs(float64(dx))
		assert.InDelta(t, math.Exp(-length/(2*kappa)), v, 1e-12)
		assert.InDelta(t, full[delta], v, 1e-12)
	}
}

// TestVortexVortex_InfiniteModulus checks e^{2πi v} on the real vortex field:
// a half-unit everywhere is a uniform phase, and so invisible.
func TestVortexVortex_InfiniteModulus(t *testing.T) {
	a := worldlineAction(t, 3, 0.5, action.Infinity)
	cfg := a.Cold()
	cfg.RealV[4] = 0.25
	before, err := observable.VortexVortex.Measure(a, cfg)
	require.NoError(t, err)
	// e^{iπ/2} against 1 is orthogonal, so Δ ≠ 0 loses two of nine terms.
	assert.InDelta(t, 1, before[0], 1e-12)
	assert.InDelta(t, 7.0/9, before[1], 1e-12)

	for p := range cfg.RealV {
		cfg.RealV[p] += 0.5
	}
	after, err := observable.VortexVortex.Measure(a, cfg)
	require.NoError(t, err)
	requireClose(t, before, after)
}

func TestCache(t *testing.T) {
	c := observable.NewCache()
	_, ok := c.Get(observable.Links)
	assert.False(t, ok)

	c.Put(observable.Links, [][]float64{{1}})
	rows, ok := c.Get(observable.Links)
	require.True(t, ok)
	assert.Equal(t, [][]float64{{1}}, rows)
	assert.Equal(t, 1, c.Len())

	c.Invalidate()
	assert.Equal(t, 0, c.Len())
}

// requireClose compares elementwise to 1e-12, relative to the value when it
// exceeds one. Reweighted correlators can be large.
func requireClose(t *testing.T, want, got []float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		tolerance := 1e-12 * math.Max(1, math.Abs(want[i]))
		require.InDelta(t, want[i], got[i], tolerance, msgAndArgs...)
	}
}

func villainAction(t *testing.T, n int, kappa float64, w action.Modulus) *action.Villain {
	t.Helper()
	a, err := action.NewVillain(lattice.MustNew(n), kappa, w)
	require.NoError(t, err)
	return a
}

func worldlineAction(t *testing.T, n int, kappa float64, w action.Modulus) *action.Worldline {
	t.Helper()
	a, err := action.NewWorldline(lattice.MustNew(n), kappa, w)
	require.NoError(t, err)
	return a
}
