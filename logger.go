package genovec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with genovec-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMethod adds a vectorization method field to the logger.
func (l *Logger) WithMethod(method Method) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", string(method)),
	}
}

// WithGroup adds a landmark group field to the logger.
func (l *Logger) WithGroup(group string) *Logger {
	return &Logger{
		Logger: l.Logger.With("group", group),
	}
}

// LogVectorize logs a batch vectorization.
func (l *Logger) LogVectorize(ctx context.Context, method Method, queries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "vectorize failed",
			"method", string(method),
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "vectorize completed",
			"method", string(method),
			"queries", queries,
		)
	}
}

// LogProjection logs a batch projection.
func (l *Logger) LogProjection(ctx context.Context, fromDim, toDim, queries int) {
	l.DebugContext(ctx, "projection completed",
		"from_dim", fromDim,
		"to_dim", toDim,
		"queries", queries,
	)
}

// LogEmptySketch logs the empty-sketch special case: the query produces the
// all-zero vector, which downstream consumers cannot tell apart from
// "maximally dissimilar".
func (l *Logger) LogEmptySketch(ctx context.Context, query string) {
	l.WarnContext(ctx, "empty sketch produces zero vector",
		"query", query,
	)
}
