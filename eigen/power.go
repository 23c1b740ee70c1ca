// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opPower = "eigen.PowerIteration"

	// minPowerSteps is the number of steps before the eigenvector test may
	// succeed; Aitken's Δ² needs three Rayleigh quotients.
	minPowerSteps = 3

	// aitkenCutoff is the smallest |Δ²| denominator that is trusted; below it
	// the plain Rayleigh quotient is returned.
	aitkenCutoff = 1e-16
)

// PowerIteration finds the dominant eigenpair of the symmetric operator op
// with the symmetric power method, starting from x0 (not modified).
//
// The eigenvalue estimate is the Rayleigh quotient μ_k = x_kᵀ·A·x_k,
// accelerated with Aitken's Δ²:
//
//	μ̂ = μ_{k-2} - (μ_{k-1} - μ_{k-2})² / (μ_k - 2μ_{k-1} + μ_{k-2}).
//
// Iteration stops once k >= 3 and ‖x_{k+1} - x_k‖ < tol. If A·x vanishes the
// operator has eigenvalue 0 and (0, x) is returned.
//
// Errors:
//   - ErrNilOperator, ErrInvalidOption (tol <= 0, maxIter < 1),
//     ErrInvalidStart (wrong length, zero, NaN/Inf),
//     ErrNotConverged when maxIter steps do not reach tol.
func PowerIteration(op Operator, x0 []float64, tol float64, maxIter int) (float64, []float64, error) {
	if op == nil {
		return 0, nil, fmt.Errorf("%s: %w", opPower, ErrNilOperator)
	}
	if !(tol > 0) || math.IsInf(tol, 1) || maxIter < 1 {
		return 0, nil, fmt.Errorf("%s: tol=%g maxIter=%d: %w", opPower, tol, maxIter, ErrInvalidOption)
	}
	n := op.Dim()
	if len(x0) != n {
		return 0, nil, fmt.Errorf("%s: len(x0)=%d, dim=%d: %w", opPower, len(x0), n, ErrInvalidStart)
	}
	nrm := floats.Norm(x0, 2)
	if !(nrm > 0) || math.IsInf(nrm, 1) {
		return 0, nil, fmt.Errorf("%s: ‖x0‖=%g: %w", opPower, nrm, ErrInvalidStart)
	}

	x := make([]float64, n)
	floats.ScaleTo(x, 1/nrm, x0)
	y := make([]float64, n)
	var mu0, mu1 float64

	for k := 0; k < maxIter; k++ {
		op.MulVec(y, x)
		mu := floats.Dot(x, y)
		muHat := mu
		if den := mu - 2*mu1 + mu0; math.Abs(den) >= aitkenCutoff {
			muHat = mu0 - (mu1-mu0)*(mu1-mu0)/den
		}

		ny := floats.Norm(y, 2)
		if ny == 0 {
			return 0, x, nil
		}
		floats.Scale(1/ny, y)
		step := floats.Distance(x, y, 2)
		x, y = y, x
		if k >= minPowerSteps && step < tol {
			return muHat, x, nil
		}

		mu0, mu1 = mu1, mu
	}

	return 0, nil, fmt.Errorf("%s: %d iterations: %w", opPower, maxIter, ErrNotConverged)
}
