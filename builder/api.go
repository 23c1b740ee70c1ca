// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - name-based entry point for the builder package.
//
// Design contract:
//   - Generate(name, n, opts...) dispatches to Helix/Circle/SwissRoll by name;
//     it exists for configuration edges (CLI flags, config files).
//   - Go callers use the typed generators directly.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diffmaps/matrix"
)

// Generator is the common signature of all point-cloud generators.
type Generator func(n int, opts ...BuilderOption) (*matrix.Dense, error)

// generators maps shape names to generators.
var generators = map[string]Generator{
	ShapeHelix:     Helix,
	ShapeCircle:    Circle,
	ShapeSwissRoll: SwissRoll,
}

// Shapes lists the names accepted by Generate, sorted.
func Shapes() []string {
	return []string{ShapeCircle, ShapeHelix, ShapeSwissRoll}
}

// Generate builds the named point cloud. Names are case-insensitive.
//
// Errors:
//   - ErrUnknownShape for unsupported names.
//   - Any error of the selected generator.
func Generate(name string, n int, opts ...BuilderOption) (*matrix.Dense, error) {
	gen, ok := generators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, builderErrorf(MethodGenerate, ErrUnknownShape, "%q (want one of %s)", name, strings.Join(Shapes(), ", "))
	}
	m, err := gen(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return m, nil
}
