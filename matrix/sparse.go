// SPDX-License-Identifier: MIT

// Package matrix - Sparse square storage in compressed sparse row (CSR) form.
//
// Purpose:
//   - Hold affinity and normalized diffusion matrices where only entries above a
//     sparsification threshold are kept.
//   - Provide the row-parallel MulVec used by the Lanczos solver (see package eigen).
//
// Layout:
//   - rowPtr has n+1 offsets; row i occupies [rowPtr[i], rowPtr[i+1]).
//   - colIdx/values hold the stored entries; columns are strictly increasing
//     inside every row, so lookups are binary searches and iteration order is fixed.
//
// Determinism:
//   - Assembly sorts by (row, col) regardless of the triple order, so two triple
//     lists with the same content always yield bit-identical matrices.
//   - Every reduction (row sum, row dot product) runs sequentially inside its row.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

const (
	ctxNewSparse = "NewSparse"
	ctxSparseAt  = "Sparse.At"
)

// Sparse is an immutable n×n matrix in CSR form.
type Sparse struct {
	n      int
	rowPtr []int     // len n+1
	colIdx []int     // len nnz, ascending inside each row
	values []float64 // len nnz
	opts   Options   // resolved kernel configuration (workers, thresholds)
}

// csrEntry is the assembly record used while sorting columns inside a row.
type csrEntry struct {
	col int
	val float64
}

// NewSparse assembles an n×n CSR matrix from COO triples.
//
// Implementation:
//   - Stage 1: validate n and every triple (index range, finiteness).
//   - Stage 2: counting-sort triples by row into rowPtr buckets.
//   - Stage 3: sort each row by column and reject duplicate coordinates.
//
// Behavior highlights:
//   - Duplicate (i,j) pairs are an error, never summed.
//   - The triples slice is only read.
//
// Errors:
//   - ErrBadShape (n <= 0), ErrOutOfRange, ErrNaNInf, ErrDuplicateEntry.
//
// Complexity:
//   - Time O(n + nnz·log(nnz per row)), Space O(n + nnz).
func NewSparse(n int, triples []Triple, opts ...Option) (*Sparse, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewSparse, n, ErrBadShape)
	}

	rowPtr := make([]int, n+1)
	for k, t := range triples {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return nil, fmt.Errorf("%s: triple %d at (%d,%d): %w", ctxNewSparse, k, t.Row, t.Col, ErrOutOfRange)
		}
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, fmt.Errorf("%s: triple %d at (%d,%d): %w", ctxNewSparse, k, t.Row, t.Col, ErrNaNInf)
		}
		rowPtr[t.Row+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	// Scatter into row buckets; next[i] is the write cursor of row i.
	entries := make([]csrEntry, len(triples))
	next := make([]int, n)
	copy(next, rowPtr[:n])
	for _, t := range triples {
		entries[next[t.Row]] = csrEntry{col: t.Col, val: t.Value}
		next[t.Row]++
	}

	colIdx := make([]int, len(entries))
	values := make([]float64, len(entries))
	for i := 0; i < n; i++ {
		row := entries[rowPtr[i]:rowPtr[i+1]]
		slices.SortFunc(row, func(a, b csrEntry) int { return cmp.Compare(a.col, b.col) })
		for k := range row {
			if k > 0 && row[k].col == row[k-1].col {
				return nil, fmt.Errorf("%s: (%d,%d): %w", ctxNewSparse, i, row[k].col, ErrDuplicateEntry)
			}
			colIdx[rowPtr[i]+k] = row[k].col
			values[rowPtr[i]+k] = row[k].val
		}
	}

	return &Sparse{
		n:      n,
		rowPtr: rowPtr,
		colIdx: colIdx,
		values: values,
		opts:   gatherOptions(opts...),
	}, nil
}

// Rows returns the matrix order n.
func (s *Sparse) Rows() int { return s.n }

// Cols returns the matrix order n.
func (s *Sparse) Cols() int { return s.n }

// Dim returns the matrix order n (linear-operator view).
func (s *Sparse) Dim() int { return s.n }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// At returns the stored value at (i, j), or 0 when the entry is not stored.
// Complexity: O(log nnz(row i)).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxSparseAt, i, j, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.values[k], nil
	}

	return 0, nil
}

// Has reports whether (i, j) is a stored entry. Out-of-range indices report false.
func (s *Sparse) Has(i, j int) bool {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return false
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)

	return k < hi && s.colIdx[k] == j
}

// RowView returns the column indices and values of row i as read-only windows
// into the CSR buffers. Panics on an invalid index like a slice expression.
func (s *Sparse) RowView(i int) (cols []int, vals []float64) {
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.colIdx[lo:hi:hi], s.values[lo:hi:hi]
}

// Diagonal returns a copy of the main diagonal (missing entries are 0).
func (s *Sparse) Diagonal() []float64 {
	d := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		v, _ := s.At(i, i)
		d[i] = v
	}

	return d
}

// Triples exports the stored entries in (row, col) order.
func (s *Sparse) Triples() []Triple {
	out := make([]Triple, 0, len(s.values))
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			out = append(out, Triple{Row: i, Col: s.colIdx[k], Value: s.values[k]})
		}
	}

	return out
}

// ToDense materializes the matrix. Intended for small matrices in tests and
// diagnostics; memory is O(n²).
func (s *Sparse) ToDense() *Dense {
	d := &Dense{r: s.n, c: s.n, data: make([]float64, s.n*s.n)}
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			d.data[i*s.n+s.colIdx[k]] = s.values[k]
		}
	}

	return d
}

// IsSymmetric reports whether every stored (i,j) has a stored (j,i) whose
// value differs by at most tol. tol == 0 demands exact equality.
// Complexity: O(nnz·log(max row nnz)).
func (s *Sparse) IsSymmetric(tol float64) bool {
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			j := s.colIdx[k]
			if j == i {
				continue
			}
			if !s.Has(j, i) {
				return false
			}
			if j < i {
				continue // value compared from the upper side
			}
			v, _ := s.At(j, i)
			if math.Abs(v-s.values[k]) > tol {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether no off-diagonal entry is stored.
func (s *Sparse) IsDiagonal() bool {
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if s.colIdx[k] != i {
				return false
			}
		}
	}

	return true
}

// withValues returns a matrix sharing the sparsity pattern of s with a new
// value buffer. Pattern slices are shared: Sparse is immutable.
func (s *Sparse) withValues(values []float64) *Sparse {
	return &Sparse{
		n:      s.n,
		rowPtr: s.rowPtr,
		colIdx: s.colIdx,
		values: values,
		opts:   s.opts,
	}
}
