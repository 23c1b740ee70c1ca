// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffmaps/diffmap"
)

// newLogger builds the pipeline logger from the persistent log flags.
func newLogger(cmd *cobra.Command, w io.Writer) (*diffmap.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", levelName, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "text":
		return diffmap.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return diffmap.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("log format %q: want text or json", format)
}
