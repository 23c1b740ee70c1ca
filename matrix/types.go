// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface shared by Dense and Sparse.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view shared by *Dense and *Sparse.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(log nnz(row)) for Sparse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)
}

// Triple is a single (Row, Col, Value) coordinate entry used to assemble a
// Sparse matrix (COO input format).
type Triple struct {
	Row   int     // row index, 0 ≤ Row < n
	Col   int     // column index, 0 ≤ Col < n
	Value float64 // stored value (finite)
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Sparse)(nil)
)
