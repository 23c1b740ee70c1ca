// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported kernel variants.
type Kind int

const (
	// KindGaussian selects the Gaussian (RBF) kernel exp(-gamma·‖x-y‖²).
	KindGaussian Kind = iota + 1
)

// kindNames maps every Kind to its configuration name.
var kindNames = map[Kind]string{
	KindGaussian: "gaussian",
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a configuration name (case-insensitive, surrounding
// spaces ignored). Unknown names return ErrUnknownKernel.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == want {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKernel)
}

// Spec is a validated kernel description. The set of implementations is
// closed to this package; add a variant by adding a type here.
type Spec interface {
	// Kind reports the variant.
	Kind() Kind

	// Bind resolves dimension-dependent defaults for d-dimensional points.
	Bind(dim int) (Evaluator, error)

	isSpec()
}

// Evaluator computes affinities between points of a fixed dimension.
// Implementations are immutable and safe for concurrent use.
type Evaluator interface {
	// Dim is the feature dimension the evaluator was bound to.
	Dim() int

	// Affinity returns k(x, y). x and y must both have length Dim().
	Affinity(x, y []float64) float64
}
