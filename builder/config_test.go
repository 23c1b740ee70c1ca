// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaultConfig verifies the documented deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.radius != DefaultRadius || cfg.turns != DefaultTurns || cfg.height != DefaultHeight || cfg.noise != DefaultNoise {
		t.Errorf("defaults: got radius=%g turns=%g height=%g noise=%g", cfg.radius, cfg.turns, cfg.height, cfg.noise)
	}
}

// TestShapeOptionsOverride verifies last-wins semantics and nil tolerance.
func TestShapeOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithRadius(2), WithTurns(3), WithHeight(5), WithNoise(0.1), nil, WithRadius(4))
	if cfg.radius != 4 {
		t.Errorf("WithRadius last-wins: expected 4, got %g", cfg.radius)
	}
	if cfg.turns != 3 || cfg.height != 5 || cfg.noise != 0.1 {
		t.Errorf("options: got turns=%g height=%g noise=%g", cfg.turns, cfg.height, cfg.noise)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng == nil || b.rng == nil {
		t.Fatal("WithSeed: expected non-nil rng")
	}
	if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
		t.Errorf("WithSeed: expected equal draws, got %d and %d", x, y)
	}

	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand: expected the provided rng")
	}
}

// TestOptionPanics verifies fast-fail on meaningless option values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)": func() { WithRand(nil) },
		"WithNoise(-1)": func() { WithNoise(-1) },
		"WithRadius(0)": func() { WithRadius(0) },
		"WithTurns(-2)": func() { WithTurns(-2) },
		"WithHeight(0)": func() { WithHeight(0) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
