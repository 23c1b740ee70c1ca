// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffmaps/builder"
)

const defaultGeneratePoints = 1000

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:       "generate [" + strings.Join(builder.Shapes(), "|") + "]",
		Short:     "Write a synthetic point cloud as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Shapes(),
		RunE:      runGenerate,
	}
	f := generateCmd.Flags()
	f.Int("n", defaultGeneratePoints, "Number of points")
	f.Int64("seed", 1, "Seed for the noise source")
	f.Float64("noise", builder.DefaultNoise, "Gaussian noise sigma added to every coordinate")
	f.StringP("output", "o", stdio, "Output CSV (- for stdout)")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("n")
	seed, _ := cmd.Flags().GetInt64("seed")
	noise, _ := cmd.Flags().GetFloat64("noise")
	outputPath, _ := cmd.Flags().GetString("output")

	if !(noise >= 0) || math.IsInf(noise, 1) {
		return fmt.Errorf("noise %g must be finite and >= 0", noise)
	}

	points, err := builder.Generate(args[0], n, builder.WithSeed(seed), builder.WithNoise(noise))
	if err != nil {
		return err
	}

	out, err := createOutput(cmd, outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err = writePoints(out, points); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
