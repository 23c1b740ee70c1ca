// SPDX-License-Identifier: MIT

package affinity

import "errors"

var (
	// ErrNilInput is returned when the data set or the evaluator is nil.
	ErrNilInput = errors.New("affinity: nil input")

	// ErrInvalidEpsilon indicates a threshold that is negative, NaN or +Inf.
	ErrInvalidEpsilon = errors.New("affinity: epsilon must be finite and >= 0")

	// ErrDimensionMismatch is returned when the evaluator was bound to a
	// dimension different from the number of data columns.
	ErrDimensionMismatch = errors.New("affinity: evaluator dimension does not match data")
)
