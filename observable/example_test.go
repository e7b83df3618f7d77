package observable_test

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/observable"
)

func ExampleMeasure() {
	a, _ := action.NewWorldline(lattice.MustNew(4), 0.5, action.Infinity)
	cfg := a.Cold()
	density, _ := observable.Measure(a, "InternalEnergyDensity", cfg)
	spin, _ := observable.Measure(a, "Spin_Spin", cfg)
	fmt.Printf("%.3f %.3f %.3f\n", density[0], spin[0], spin[1])
	// Output: 1.000 1.000 0.368
}
