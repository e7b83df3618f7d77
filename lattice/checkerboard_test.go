package lattice_test

import (
	"testing"

	"github.com/katalvlaran/supervillain/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neighbours reports whether a and b share a link.
func neighbours(l *lattice.Lattice, a, b int) bool {
	for _, mu := range []lattice.Direction{lattice.T, lattice.X} {
		if l.Next(a, mu) == b || l.Prev(a, mu) == b {
			return true
		}
	}
	return false
}

// TestCheckerboarding_Partition checks disjointness, cover and balance.
func TestCheckerboarding_Partition(t *testing.T) {
	for _, n := range sizes {
		l := lattice.MustNew(n)
		cb := l.Checkerboarding()

		seen := make([]int, l.Sites)
		for _, class := range cb {
			for _, s := range class {
				seen[s]++
			}
		}
		for s, c := range seen {
			assert.Equal(t, 1, c, "site %d in %d classes (N=%d)", s, c, n)
		}
		diff := len(cb[0]) - len(cb[1])
		assert.LessOrEqual(t, diff*diff, 1, "N=%d", n)
	}
}

func TestCheckerboarding_EvenIndependent(t *testing.T) {
	for _, n := range []int{2, 4, 8} {
		l := lattice.MustNew(n)
		for _, class := range l.Checkerboarding() {
			for _, a := range class {
				for _, b := range class {
					assert.False(t, neighbours(l, a, b), "N=%d: %d and %d", n, a, b)
				}
			}
		}
	}
}

// TestUpdateClasses_Independent checks that no class contains two neighbours,
// for odd sides too, where plain parity fails across the wrap.
func TestUpdateClasses_Independent(t *testing.T) {
	for _, n := range sizes {
		l := lattice.MustNew(n)
		classes := l.UpdateClasses()
		if n%2 == 0 {
			require.Len(t, classes, 2)
		} else {
			require.Len(t, classes, 4)
		}

		total := 0
		for _, class := range classes {
			total += len(class)
			for _, a := range class {
				for _, b := range class {
					assert.False(t, neighbours(l, a, b), "N=%d: %d and %d", n, a, b)
				}
			}
		}
		assert.Equal(t, l.Sites, total)
	}
}

func TestCheckerboarding_OddWrapCollides(t *testing.T) {
	l := lattice.MustNew(3)
	cb := l.Checkerboarding()
	// (0,0) and (2,0) have equal parity and are joined by the periodic wrap.
	a, b := l.Site(0, 0), l.Site(2, 0)
	assert.Contains(t, cb[0], a)
	assert.Contains(t, cb[0], b)
	assert.True(t, neighbours(l, a, b))
}
