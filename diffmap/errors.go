// SPDX-License-Identifier: MIT

package diffmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/diffmaps/affinity"
	"github.com/katalvlaran/diffmaps/eigen"
	"github.com/katalvlaran/diffmaps/kernel"
	"github.com/katalvlaran/diffmaps/matrix"
	"github.com/katalvlaran/diffmaps/normalize"
)

var (
	// ErrInvalidShape is returned for nil, empty or ragged data.
	ErrInvalidShape = errors.New("diffmap: invalid shape")

	// ErrInvalidArgument covers out-of-range parameters: component count,
	// kernel parameters, diffusion time, threshold, solver budgets and
	// non-finite data.
	ErrInvalidArgument = errors.New("diffmap: invalid argument")

	// ErrDegenerateInput is returned when a point has zero (or non-finite)
	// total affinity, so the diffusion operator is undefined.
	ErrDegenerateInput = errors.New("diffmap: degenerate input")

	// ErrConvergence is returned when the eigensolver exhausts its budget.
	ErrConvergence = errors.New("diffmap: eigensolver did not converge")
)

// translateError maps sentinels of the pipeline packages onto the taxonomy.
// The original error stays in the chain. Context errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNilMatrix):
		return fmt.Errorf("%w: %w", ErrInvalidShape, err)

	case errors.Is(err, normalize.ErrDegenerateDegree):
		return fmt.Errorf("%w: %w", ErrDegenerateInput, err)

	case errors.Is(err, eigen.ErrNotConverged):
		return fmt.Errorf("%w: %w", ErrConvergence, err)

	case errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, kernel.ErrUnknownKernel),
		errors.Is(err, kernel.ErrInvalidGamma),
		errors.Is(err, kernel.ErrInvalidSigma),
		errors.Is(err, kernel.ErrConflictingParams),
		errors.Is(err, kernel.ErrInvalidDimension),
		errors.Is(err, affinity.ErrInvalidEpsilon),
		errors.Is(err, affinity.ErrDimensionMismatch),
		errors.Is(err, affinity.ErrNilInput),
		errors.Is(err, eigen.ErrInvalidK),
		errors.Is(err, eigen.ErrInvalidOption):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}

// invalidArgf builds an ErrInvalidArgument with an operation tag.
func invalidArgf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
