// SPDX-License-Identifier: MIT

package affinity

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/diffmaps/internal/shard"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
)

const opBuild = "affinity.Build"

// Build computes the thresholded affinity matrix of data under ev.
//
// Implementation:
//   - Stage 1: validate inputs (non-nil, matching dimension, epsilon).
//   - Stage 2: evaluate the lower triangle in triangular-balanced shards, each
//     appending (i,j,v) and its mirror (j,i,v) to a private buffer.
//   - Stage 3: concatenate buffers in shard order and assemble CSR.
//
// Behavior highlights:
//   - An entry is kept iff v >= epsilon. A threshold above every off-diagonal
//     affinity yields a diagonal matrix, not an error.
//   - data is only read; concurrent Builds over the same data are safe.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch, ErrInvalidEpsilon, ctx.Err().
//
// Complexity:
//   - Time O(n²·d) kernel work split across workers, Space O(nnz).
func Build(ctx context.Context, data *matrix.Dense, ev kernel.Evaluator, epsilon float64, opts ...Option) (*matrix.Sparse, error) {
	if data == nil || ev == nil {
		return nil, fmt.Errorf("%s: %w", opBuild, ErrNilInput)
	}
	if ev.Dim() != data.Cols() {
		return nil, fmt.Errorf("%s: evaluator dim %d, data cols %d: %w", opBuild, ev.Dim(), data.Cols(), ErrDimensionMismatch)
	}
	if math.IsNaN(epsilon) || epsilon < 0 || math.IsInf(epsilon, 1) {
		return nil, fmt.Errorf("%s: epsilon=%g: %w", opBuild, epsilon, ErrInvalidEpsilon)
	}

	o := gatherOptions(opts...)
	n := data.Rows()
	workers := shard.Workers(o.workers)
	ranges := shard.Triangular(n, workers, o.minRows)
	buffers := make([][]matrix.Triple, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for s, r := range ranges {
		g.Go(func() error {
			buf, err := evalShard(gctx, data, ev, epsilon, r)
			buffers[s] = buf
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range buffers {
		total += len(b)
	}
	triples := make([]matrix.Triple, 0, total)
	for _, b := range buffers {
		triples = append(triples, b...)
	}

	return matrix.NewSparse(n, triples, matrix.WithWorkers(o.workers))
}

// evalShard evaluates rows [r.Lo, r.Hi) against all columns j <= i.
func evalShard(ctx context.Context, data *matrix.Dense, ev kernel.Evaluator, epsilon float64, r shard.Range) ([]matrix.Triple, error) {
	var buf []matrix.Triple
	for i := r.Lo; i < r.Hi; i++ {
		if (i-r.Lo)%cancelCheckRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		xi := data.RowView(i)
		for j := 0; j <= i; j++ {
			v := ev.Affinity(xi, data.RowView(j))
			if v < epsilon {
				continue
			}
			buf = append(buf, matrix.Triple{Row: i, Col: j, Value: v})
			if i != j {
				buf = append(buf, matrix.Triple{Row: j, Col: i, Value: v})
			}
		}
	}

	return buf, nil
}
