// Package builder provides validation helpers to enforce parameter contracts
// in the generators.
//
// Each function returns a sentinel error wrapped via builderErrorf when its
// precondition is violated.
package builder

// validateMin ensures that the provided point count 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: too few points".
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewPoints, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateNoise ensures an RNG is available whenever noise is requested.
// Complexity: O(1) time and space.
func validateNoise(method string, cfg builderConfig) error {
	if cfg.noise > 0 && cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "noise sigma %g", cfg.noise)
	}

	return nil
}
