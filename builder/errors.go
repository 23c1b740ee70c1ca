// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with builderErrorf (%w kept).
//   • Generators never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that the requested point count is below the
// generator minimum (MinCloudPoints).
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrNeedRandSource indicates that noise was requested without an RNG
// (WithSeed or WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownShape indicates that Generate received an unsupported name.
var ErrUnknownShape = errors.New("builder: unknown shape")

// builderErrorf wraps err with the method context and a formatted detail:
// "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
