package affinity_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/diffmaps/affinity"
	"github.com/katalvlaran/diffmaps/matrix"
)

var sinkK *matrix.Sparse

func BenchmarkBuild(b *testing.B) {
	data := spiralData(b, 1000)
	ev := gaussian(b, 50, 3)
	for _, w := range []int{1, 0} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				K, err := affinity.Build(context.Background(), data, ev, 1e-6, affinity.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				sinkK = K
			}
		})
	}
}
