// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set. Every message is prefixed with
// "kernel: ..."; callers match with errors.Is.

package kernel

import "errors"

var (
	// ErrUnknownKernel is returned when a kernel name or Kind is not supported.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrInvalidGamma indicates a gamma that is not finite and strictly positive.
	ErrInvalidGamma = errors.New("kernel: gamma must be finite and > 0")

	// ErrInvalidSigma indicates a sigma that is not finite and strictly positive.
	ErrInvalidSigma = errors.New("kernel: sigma must be finite and > 0")

	// ErrConflictingParams is returned when mutually exclusive parameters are
	// supplied together (gamma and sigma for the Gaussian kernel).
	ErrConflictingParams = errors.New("kernel: conflicting kernel parameters")

	// ErrInvalidDimension is returned when Bind receives a feature dimension < 1.
	ErrInvalidDimension = errors.New("kernel: feature dimension must be >= 1")
)
