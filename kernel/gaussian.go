// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
)

// Gaussian is the RBF kernel exp(-gamma·‖x-y‖²).
// The zero value is valid and derives gamma = 1/d at Bind time.
type Gaussian struct {
	gamma float64 // > 0 when fixed, 0 when derived from the dimension
}

// GaussianOption configures NewGaussian.
type GaussianOption func(*gaussianParams)

type gaussianParams struct {
	gamma, sigma       float64
	hasGamma, hasSigma bool
}

// WithGamma fixes gamma.
func WithGamma(gamma float64) GaussianOption {
	return func(p *gaussianParams) { p.gamma, p.hasGamma = gamma, true }
}

// WithSigma fixes the bandwidth sigma; gamma = 1/(2σ²).
func WithSigma(sigma float64) GaussianOption {
	return func(p *gaussianParams) { p.sigma, p.hasSigma = sigma, true }
}

// NewGaussian builds a validated Gaussian spec.
//
// Errors:
//   - ErrConflictingParams when both gamma and sigma are given.
//   - ErrInvalidGamma / ErrInvalidSigma for non-finite or non-positive values,
//     including a sigma so small that the derived gamma overflows.
func NewGaussian(opts ...GaussianOption) (Gaussian, error) {
	var p gaussianParams
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	switch {
	case p.hasGamma && p.hasSigma:
		return Gaussian{}, fmt.Errorf("NewGaussian: gamma=%g sigma=%g: %w", p.gamma, p.sigma, ErrConflictingParams)
	case p.hasGamma:
		if !positiveFinite(p.gamma) {
			return Gaussian{}, fmt.Errorf("NewGaussian: gamma=%g: %w", p.gamma, ErrInvalidGamma)
		}
		return Gaussian{gamma: p.gamma}, nil
	case p.hasSigma:
		if !positiveFinite(p.sigma) {
			return Gaussian{}, fmt.Errorf("NewGaussian: sigma=%g: %w", p.sigma, ErrInvalidSigma)
		}
		gamma := 1 / (2 * p.sigma * p.sigma)
		if !positiveFinite(gamma) {
			return Gaussian{}, fmt.Errorf("NewGaussian: sigma=%g gives gamma=%g: %w", p.sigma, gamma, ErrInvalidSigma)
		}
		return Gaussian{gamma: gamma}, nil
	}

	return Gaussian{}, nil
}

// GaussianGamma is shorthand for NewGaussian(WithGamma(gamma)).
func GaussianGamma(gamma float64) (Gaussian, error) { return NewGaussian(WithGamma(gamma)) }

// GaussianSigma is shorthand for NewGaussian(WithSigma(sigma)).
func GaussianSigma(sigma float64) (Gaussian, error) { return NewGaussian(WithSigma(sigma)) }

// Kind implements Spec.
func (Gaussian) Kind() Kind { return KindGaussian }

func (Gaussian) isSpec() {}

// Gamma returns the fixed gamma and true, or (0, false) when gamma is derived
// from the dimension at Bind time.
func (g Gaussian) Gamma() (float64, bool) { return g.gamma, g.gamma > 0 }

// Bind implements Spec. An unset gamma resolves to 1/dim.
func (g Gaussian) Bind(dim int) (Evaluator, error) {
	if dim < 1 {
		return nil, fmt.Errorf("Gaussian.Bind(%d): %w", dim, ErrInvalidDimension)
	}
	gamma := g.gamma
	if gamma == 0 {
		gamma = 1 / float64(dim)
	}

	return gaussianEvaluator{gamma: gamma, dim: dim}, nil
}

// String implements fmt.Stringer.
func (g Gaussian) String() string {
	if g.gamma == 0 {
		return "gaussian(gamma=1/d)"
	}

	return fmt.Sprintf("gaussian(gamma=%g)", g.gamma)
}

// gaussianEvaluator is a bound Gaussian kernel.
type gaussianEvaluator struct {
	gamma float64
	dim   int
}

func (e gaussianEvaluator) Dim() int { return e.dim }

// Affinity accumulates the squared distance in index order. (x_k-y_k)² is
// bit-identical to (y_k-x_k)², so swapping the arguments cannot change the
// result, and k(x,x) is exactly exp(0) = 1.
func (e gaussianEvaluator) Affinity(x, y []float64) float64 {
	var d2, diff float64
	for k := 0; k < e.dim; k++ {
		diff = x[k] - y[k]
		d2 += diff * diff
	}

	return math.Exp(-e.gamma * d2)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
