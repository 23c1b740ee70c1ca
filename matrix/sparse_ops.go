// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-parallel kernels over Sparse: MulVec/MatVec, RowSums, ScaleSymmetric.
//   - Structural queries over the stored pattern: connected components.
//
// Determinism & Performance:
//   - Rows are partitioned with shard.Even; every row is reduced sequentially in
//     column order, so results do not depend on the worker count.
//   - Below Options.parallelNNZ stored entries the kernels run inline.
//
// AI-Hints:
//   - MulVec is the hot path of the Lanczos solver; it allocates nothing when the
//     matrix is below the parallel threshold.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/diffmaps/internal/shard"
)

const (
	opMatVec         = "MatVec"
	opScaleSymmetric = "ScaleSymmetric"

	// minRowsPerShard keeps shards from degenerating into single rows.
	minRowsPerShard = 64
)

// forRows runs fn over [0, n) either inline or split across workers.
// fn must only write to row-indexed outputs inside [lo, hi).
func (s *Sparse) forRows(fn func(lo, hi int)) {
	workers := shard.Workers(s.opts.workers)
	if workers == 1 || len(s.values) < s.opts.parallelNNZ {
		fn(0, s.n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range shard.Even(s.n, workers, minRowsPerShard) {
		g.Go(func() error {
			fn(r.Lo, r.Hi)
			return nil
		})
	}
	_ = g.Wait() // row kernels cannot fail
}

// MulVec computes dst = S·x. It implements the linear-operator contract used
// by package eigen: len(dst) and len(x) must both equal Dim(); dst and x must
// not alias. Violating the length contract panics with an index error.
//
// Complexity: O(nnz) work, parallel over rows above the nnz threshold.
func (s *Sparse) MulVec(dst, x []float64) {
	_ = dst[s.n-1]
	_ = x[s.n-1]
	s.forRows(func(lo, hi int) {
		var acc float64
		for i := lo; i < hi; i++ {
			acc = 0
			for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				acc += s.values[k] * x[s.colIdx[k]]
			}
			dst[i] = acc
		}
	})
}

// MatVec is the checked counterpart of MulVec: it validates x and returns a
// freshly allocated result.
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrDimensionMismatch (wrong length).
func (s *Sparse) MatVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.n); err != nil {
		return nil, fmt.Errorf("%s: %w", opMatVec, err)
	}
	out := make([]float64, s.n)
	s.MulVec(out, x)

	return out, nil
}

// RowSums returns Σ_j S[i,j] for every row i (the degree vector of an
// affinity matrix). Sums run in column order inside each row.
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.n)
	s.forRows(func(lo, hi int) {
		var acc float64
		for i := lo; i < hi; i++ {
			acc = 0
			for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				acc += s.values[k]
			}
			out[i] = acc
		}
	})

	return out
}

// ScaleSymmetric returns diag(scale)·S·diag(scale), i.e. every stored entry
// (i,j) multiplied by scale[i]·scale[j]. The sparsity pattern is shared with
// s; s itself is not modified.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch from ValidateVecLen.
//   - ErrNaNInf when a scaled value overflows or scale holds NaN/Inf.
//
// Complexity: O(nnz), parallel over rows above the nnz threshold.
func (s *Sparse) ScaleSymmetric(scale []float64) (*Sparse, error) {
	if err := ValidateVecLen(scale, s.n); err != nil {
		return nil, fmt.Errorf("%s: %w", opScaleSymmetric, err)
	}
	if err := ValidateFiniteVec(scale); err != nil {
		return nil, fmt.Errorf("%s: %w", opScaleSymmetric, err)
	}

	values := make([]float64, len(s.values))
	s.forRows(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			si := scale[i]
			for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				values[k] = s.values[k] * si * scale[s.colIdx[k]]
			}
		}
	})
	if err := ValidateFiniteVec(values); err != nil {
		return nil, fmt.Errorf("%s: %w", opScaleSymmetric, err)
	}

	return s.withValues(values), nil
}

// Components labels the connected components of the undirected graph whose
// edges are the stored off-diagonal entries. labels[i] is the component id of
// row i; ids are assigned in order of their smallest row.
//
// Implementation:
//   - Breadth-first search from every unlabeled row, in increasing row order,
//     with a slice-backed FIFO queue.
//
// Complexity: O(n + nnz) time, O(n) extra space.
func (s *Sparse) Components() (count int, labels []int) {
	labels = make([]int, s.n)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, s.n)

	for root := 0; root < s.n; root++ {
		if labels[root] >= 0 {
			continue
		}
		labels[root] = count
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for k := s.rowPtr[u]; k < s.rowPtr[u+1]; k++ {
				v := s.colIdx[k]
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return count, labels
}
