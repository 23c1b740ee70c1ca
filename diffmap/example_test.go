package diffmap_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/diffmaps/builder"
	"github.com/katalvlaran/diffmaps/diffmap"
	"github.com/katalvlaran/diffmaps/kernel"
)

// ExampleEmbed unrolls a helix into a single diffusion coordinate.
func ExampleEmbed() {
	data, err := builder.Helix(200)
	if err != nil {
		panic(err)
	}
	spec, err := kernel.GaussianSigma(0.1)
	if err != nil {
		panic(err)
	}

	emb, err := diffmap.Embed(context.Background(), data, 1, spec, 1, diffmap.WithSeed(7))
	if err != nil {
		panic(err)
	}
	coord, _ := emb.Col(0)
	fmt.Println(emb.Rows(), emb.Cols())
	fmt.Println("monotonic:", strictlyMonotonic(coord))
	// Output:
	// 200 1
	// monotonic: true
}

// ExampleAssemble shows the coordinate formula on hand-made eigenpairs.
func ExampleAssemble() {
	emb, err := diffmap.Assemble(
		[]float64{1, 0.5},
		[][]float64{{0.6, 0.8}, {0.8, -0.6}},
		[]float64{4, 1},
		1,
	)
	if err != nil {
		panic(err)
	}
	fmt.Print(emb)
	// Output:
	// [0.2]
	// [-0.3]
}
