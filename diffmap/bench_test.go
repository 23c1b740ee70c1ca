package diffmap_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/diffmaps/diffmap"
)

func BenchmarkEmbedHelix(b *testing.B) {
	data := helix(b, 1000)
	spec := sigmaKernel(b, 0.1)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := diffmap.Embed(ctx, data, 2, spec, 1, diffmap.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
