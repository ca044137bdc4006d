package skewgen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with generator-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithField adds an output field name to the logger.
func (l *Logger) WithField(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs the construction of a generator.
func (l *Logger) LogBuild(ctx context.Context, fields int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generator build failed",
			"fields", fields,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "generator ready",
			"fields", fields,
		)
	}
}

// LogLoad logs the construction of one field sampler.
func (l *Logger) LogLoad(ctx context.Context, field string, kind string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "field load failed",
			"field", field,
			"kind", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "field loaded",
			"field", field,
			"kind", kind,
		)
	}
}

// LogRow logs a single emitted row at debug level.
func (l *Logger) LogRow(ctx context.Context, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "row failed",
			"row", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "row emitted",
			"row", n,
		)
	}
}

// LogRun logs the end of a generation run.
func (l *Logger) LogRun(ctx context.Context, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generation stopped",
			"rows", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "generation completed",
			"rows", rows,
		)
	}
}
