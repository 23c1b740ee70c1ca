// SPDX-License-Identifier: MIT

package diffmap

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with diffmap-specific helpers so every stage
// reports with the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all output. It is the default.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPoints adds the data shape to the logger.
func (l *Logger) WithPoints(n, dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n, "dimension", dim),
	}
}

// WithComponents adds the requested embedding dimension to the logger.
func (l *Logger) WithComponents(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("components", k),
	}
}

// LogStage records the completion of one pipeline stage at Debug level, or
// its failure at Error level.
func (l *Logger) LogStage(ctx context.Context, stage string, started time.Time, err error, attrs ...any) {
	if err != nil {
		l.ErrorContext(ctx, "stage failed",
			append([]any{"stage", stage, "elapsed", time.Since(started), "error", err}, attrs...)...,
		)
		return
	}
	l.DebugContext(ctx, "stage completed",
		append([]any{"stage", stage, "elapsed", time.Since(started)}, attrs...)...,
	)
}
