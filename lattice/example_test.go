package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/supervillain/lattice"
)

// ExampleLattice_Checkerboarding splits a 4×4 torus into its two colours.
func ExampleLattice_Checkerboarding() {
	l := lattice.MustNew(4)
	cb := l.Checkerboarding()
	fmt.Println(l, len(cb[0]), len(cb[1]))
	// Output: Lattice2D(4,4) 8 8
}

// ExampleD1 shows that the curl of a gradient vanishes.
func ExampleD1() {
	l := lattice.MustNew(3)
	f := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	fmt.Println(lattice.D1(l, lattice.D0(l, f)))
	// Output: [0 0 0 0 0 0 0 0 0]
}
