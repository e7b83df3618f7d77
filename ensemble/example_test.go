package ensemble_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/ensemble"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/worldline"
)

func ExampleGenerate() {
	a, _ := action.NewWorldline(lattice.MustNew(4), 0.5, action.Infinity)
	hammer, _ := worldline.NewHammer(a, generator.WithSeed(7))

	e, err := ensemble.Generate(context.Background(), a, 100, hammer, ensemble.WithLogger(quiet))
	if err != nil {
		panic(err)
	}
	thermalized, _ := e.Cut(20)
	decorrelated, _ := thermalized.Every(4)
	fmt.Println(e.Len(), decorrelated.Len(), decorrelated.Index[0], decorrelated.Index[1])
	// Output: 100 20 20 24
}
