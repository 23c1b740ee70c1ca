// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with a validator tag so call sites can wrap
//    again uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers stored in the interface.
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Sparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects NaN and ±Inf entries.
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateDenseFinite scans a Dense for NaN/±Inf. Dense constructors already
// enforce the policy; this guards matrices filled through other paths.
func ValidateDenseFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateDenseFinite", ErrNilMatrix)
	}
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateDenseFinite", denseErrorf(ctxAt, k/m.c, k%m.c, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSymmetric checks a Sparse for structural and numeric symmetry
// within tol (tol == 0 demands exact equality).
func ValidateSymmetric(s *Sparse, tol float64) error {
	if s == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if !s.IsSymmetric(tol) {
		return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	return nil
}
