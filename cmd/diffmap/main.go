// SPDX-License-Identifier: MIT

// Command diffmap embeds point clouds with diffusion maps and generates the
// synthetic manifolds used to exercise them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diffmap",
		Short: "Diffusion-map embeddings of point clouds",
		Long: `diffmap computes diffusion-map embeddings of point clouds read as CSV
(one point per row, no header) and writes the coordinates as CSV.

Pipeline:
  • Gaussian affinity matrix, thresholded and sparse
  • Symmetric normalization D^(-1/2)·K·D^(-1/2)
  • Thick-restart Lanczos for the leading eigenpairs
  • Diffusion coordinates λ^t·v/sqrt(d)`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "diffmap v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(newEmbedCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}
