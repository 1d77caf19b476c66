package facet

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with facet-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithField adds a field id to the logger.
func (l *Logger) WithField(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", id),
	}
}

// LogRefresh logs a catalog refresh. fields is the number of fields that
// were requested, 0 for a full rebuild.
func (l *Logger) LogRefresh(fields int, duration time.Duration, err error) {
	if err != nil {
		l.Error("refresh failed",
			"fields", fields,
			"error", err,
		)
	} else {
		l.Debug("refresh completed",
			"fields", fields,
			"duration", duration,
		)
	}
}

// LogSelection logs a filter change.
func (l *Logger) LogSelection(item string, active bool, activeFields int) {
	l.Debug("filter changed",
		"item", item,
		"active", active,
		"active_fields", activeFields,
	)
}
