package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffmaps/matrix"
)

func TestOptionPanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(-1) })
	require.Panics(t, func() { matrix.WithParallelNNZ(-5) })
	require.NotPanics(t, func() { matrix.WithWorkers(0) })
}

func TestOptionsDoNotChangeResults(t *testing.T) {
	const n = 200
	triples := randomSymmetricTriples(n, 0.05, 3)
	a := MustSparse(t, n, triples)
	b := MustSparse(t, n, triples, matrix.WithWorkers(3), matrix.WithParallelNNZ(0), nil)
	require.Equal(t, a.RowSums(), b.RowSums())
	require.Equal(t, a.Triples(), b.Triples())
}
