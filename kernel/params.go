// SPDX-License-Identifier: MIT

package kernel

import "fmt"

// Params carries keyword-style kernel parameters from configuration files and
// command-line flags. Nil fields are "not given".
type Params struct {
	Gamma *float64 `yaml:"gamma,omitempty"`
	Sigma *float64 `yaml:"sigma,omitempty"`
}

// FromParams builds a Spec of the given kind from keyword parameters,
// applying the same validation as the typed builders.
func FromParams(kind Kind, p Params) (Spec, error) {
	switch kind {
	case KindGaussian:
		var opts []GaussianOption
		if p.Gamma != nil {
			opts = append(opts, WithGamma(*p.Gamma))
		}
		if p.Sigma != nil {
			opts = append(opts, WithSigma(*p.Sigma))
		}
		g, err := NewGaussian(opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	return nil, fmt.Errorf("FromParams(%s): %w", kind, ErrUnknownKernel)
}

// Parse resolves a kernel by configuration name and builds it from p.
func Parse(name string, p Params) (Spec, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	return FromParams(kind, p)
}
