// SPDX-License-Identifier: MIT

package eigen

import "errors"

var (
	// ErrNilOperator is returned when the operator is nil.
	ErrNilOperator = errors.New("eigen: nil operator")

	// ErrInvalidK indicates a requested eigenpair count outside [1, n-1].
	ErrInvalidK = errors.New("eigen: k out of range")

	// ErrInvalidOption indicates a tolerance, budget or subspace dimension
	// that cannot be honored.
	ErrInvalidOption = errors.New("eigen: invalid option")

	// ErrInvalidStart is returned when a start vector has the wrong length,
	// is zero or holds NaN/Inf.
	ErrInvalidStart = errors.New("eigen: invalid start vector")

	// ErrNotConverged is returned when the iteration or restart budget runs
	// out before the requested eigenpairs meet the tolerance.
	ErrNotConverged = errors.New("eigen: not converged")
)
