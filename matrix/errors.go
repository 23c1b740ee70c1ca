// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped across
// logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when context matters; callers
// still match with errors.Is.
//
// ERROR PRIORITY:
// nil -> shape -> index -> NaN/Inf -> dimension mismatch -> structure.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when the requested or supplied shape is invalid:
	// non-positive dimensions, ragged rows, or a data slice of the wrong length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a sparse matrix expected to be symmetric has a
	// structurally or numerically unmatched (i,j)/(j,i) pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrDuplicateEntry is returned when a triple list carries the same (i,j)
	// coordinate twice; sparse assembly never sums duplicates silently.
	ErrDuplicateEntry = errors.New("matrix: duplicate sparse entry")
)
