// SPDX-License-Identifier: MIT

package eigen

import (
	"gonum.org/v1/gonum/mat"
)

// Operator is a symmetric linear map on R^Dim(). MulVec writes A·x into dst;
// both slices have length Dim() and never alias. *matrix.Sparse satisfies it.
type Operator interface {
	Dim() int
	MulVec(dst, x []float64)
}

// Result holds the eigenpairs found by Solve.
type Result struct {
	// Values are sorted in descending order.
	Values []float64

	// Vectors[i] is the unit eigenvector of Values[i].
	Vectors [][]float64

	// Iterations counts operator applications.
	Iterations int

	// Restarts counts thick restarts.
	Restarts int
}

// SymOperator adapts a gonum symmetric matrix to Operator.
type SymOperator struct {
	A mat.Symmetric
}

// Dim implements Operator.
func (s SymOperator) Dim() int { return s.A.SymmetricDim() }

// MulVec implements Operator.
func (s SymOperator) MulVec(dst, x []float64) {
	n := s.A.SymmetricDim()
	mat.NewVecDense(n, dst).MulVec(s.A, mat.NewVecDense(n, x))
}
