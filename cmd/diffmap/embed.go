// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffmaps/diffmap"
	"github.com/katalvlaran/diffmaps/kernel"
)

func newEmbedCmd() *cobra.Command {
	embedCmd := &cobra.Command{
		Use:   "embed",
		Short: "Compute the diffusion-map embedding of a CSV point cloud",
		Long: `Compute the diffusion-map embedding of a CSV point cloud.

Values come from the defaults, then the --config file, then explicit flags.`,
		Args: cobra.NoArgs,
		RunE: runEmbed,
	}
	def := defaultFileConfig()
	f := embedCmd.Flags()
	f.StringP("input", "i", stdio, "Input CSV, one point per row (- for stdin)")
	f.StringP("output", "o", stdio, "Output CSV (- for stdout)")
	f.StringP("config", "c", "", "YAML config file")
	f.IntP("components", "k", def.Components, "Number of diffusion coordinates")
	f.String("kernel", def.Kernel, "Kernel name")
	f.Float64("gamma", 0, "Gaussian gamma (exclusive with --sigma; default 1/d)")
	f.Float64("sigma", 0, "Gaussian bandwidth sigma (exclusive with --gamma)")
	f.Float64P("time", "t", def.Time, "Diffusion time")
	f.Float64("epsilon", def.KernelEpsilon, "Affinity threshold")
	f.Float64("tol", def.EigTolerance, "Eigensolver relative tolerance")
	f.Int("max-iter", def.EigMaxIterations, "Eigensolver matrix-vector budget")
	f.Int("max-restarts", def.EigMaxRestarts, "Eigensolver restart budget")
	f.Int("subspace", def.EigSubspaceDim, "Krylov subspace size (0 = automatic)")
	f.Uint64("seed", 0, "Seed for a reproducible eigensolver start vector")
	f.Int("workers", def.Workers, "Goroutines for parallel stages (0 = GOMAXPROCS)")
	f.Bool("details", false, "Log eigenvalues and solver counters at info level")

	return embedCmd
}

func runEmbed(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyEmbedFlags(cmd, &cfg)

	log, err := newLogger(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	spec, err := diffmap.ParseKernel(cfg.Kernel, cfg.Params)
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	in, err := openInput(cmd, inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	data, err := readPoints(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	emb, det, err := diffmap.EmbedWithDetails(cmd.Context(), data, cfg.Components, spec, cfg.Time,
		diffmap.WithConfig(cfg.Config), diffmap.WithLogger(log))
	if err != nil {
		return err
	}
	if details, _ := cmd.Flags().GetBool("details"); details {
		log.Info("embedding details",
			"eigenvalues", det.Eigenvalues,
			"nnz", det.NNZ,
			"graph_components", det.Components,
			"iterations", det.Iterations,
			"restarts", det.Restarts,
		)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	out, err := createOutput(cmd, outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err = writePoints(out, emb); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// applyEmbedFlags overrides cfg with every flag the user set explicitly.
func applyEmbedFlags(cmd *cobra.Command, cfg *fileConfig) {
	f := cmd.Flags()
	if f.Changed("components") {
		cfg.Components, _ = f.GetInt("components")
	}
	if f.Changed("kernel") {
		cfg.Kernel, _ = f.GetString("kernel")
	}
	if f.Changed("time") {
		cfg.Time, _ = f.GetFloat64("time")
	}
	if f.Changed("epsilon") {
		cfg.KernelEpsilon, _ = f.GetFloat64("epsilon")
	}
	if f.Changed("tol") {
		cfg.EigTolerance, _ = f.GetFloat64("tol")
	}
	if f.Changed("max-iter") {
		cfg.EigMaxIterations, _ = f.GetInt("max-iter")
	}
	if f.Changed("max-restarts") {
		cfg.EigMaxRestarts, _ = f.GetInt("max-restarts")
	}
	if f.Changed("subspace") {
		cfg.EigSubspaceDim, _ = f.GetInt("subspace")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("seed") {
		seed, _ := f.GetUint64("seed")
		cfg.Seed = &seed
	}

	// A kernel parameter on the command line replaces both parameters from
	// the file, so --sigma can override a file that sets gamma.
	if f.Changed("gamma") || f.Changed("sigma") {
		cfg.Params = kernel.Params{}
		if f.Changed("gamma") {
			g, _ := f.GetFloat64("gamma")
			cfg.Params.Gamma = &g
		}
		if f.Changed("sigma") {
			s, _ := f.GetFloat64("sigma")
			cfg.Params.Sigma = &s
		}
	}
}
