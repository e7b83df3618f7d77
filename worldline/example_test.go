package worldline_test

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/worldline"
)

func ExampleNewHammer() {
	a, _ := action.NewWorldline(lattice.MustNew(4), 0.5, 2)
	hammer, _ := worldline.NewHammer(a, generator.WithSeed(1))
	cfg := a.Cold()
	for i := 0; i < 10; i++ {
		cfg, _ = hammer.Step(cfg)
	}
	fmt.Println(hammer, a.Valid(cfg))
	// Output: Sequentially((VortexUpdate, CoexactUpdate, WrappingUpdate, GeometricWorm)) true
}
