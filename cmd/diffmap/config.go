// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diffmaps/diffmap"
	"github.com/katalvlaran/diffmaps/kernel"
)

// Defaults of the embed command that are not part of diffmap.Config.
const (
	defaultKernel     = "gaussian"
	defaultComponents = 2
	defaultTime       = 1.0
)

// fileConfig is the YAML document accepted by --config. Solver and threshold
// keys sit at the top level next to the embedding request:
//
//	kernel: gaussian
//	sigma: 0.1
//	components: 2
//	time: 1
//	kernel_epsilon: 1e-6
//	seed: 42
type fileConfig struct {
	diffmap.Config `yaml:",inline"`
	kernel.Params  `yaml:",inline"`

	Kernel     string  `yaml:"kernel"`
	Components int     `yaml:"components"`
	Time       float64 `yaml:"time"`
}

// defaultFileConfig returns the values used when neither the config file nor
// a flag sets a field.
func defaultFileConfig() fileConfig {
	return fileConfig{
		Config:     diffmap.DefaultConfig(),
		Kernel:     defaultKernel,
		Components: defaultComponents,
		Time:       defaultTime,
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected so typos
// do not silently fall back to defaults. An empty path yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
