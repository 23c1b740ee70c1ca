// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdio marks standard input or output in --input and --output.
const stdio = "-"

// openInput opens path for reading, or the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(path)
}

// createOutput creates path for writing, or wraps the command's stdout for "-".
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == stdio {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}

	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
