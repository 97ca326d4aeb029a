package log

import (
	"context"
	"strings"
)

type contextKey string

const (
	loggerKey contextKey = "feynman.logger"
)

var defaultLevel = LevelWarn

// Logger defines the interface for logging. It is intended to align with
// the slog package but allow for use with other libraries by using
// logging adapters.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, args ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, args ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, args ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, args ...any)

	// With returns a Logger that includes the given attributes in each
	// output operation.
	With(args ...any) Logger
}

// WithLogger returns a new context with the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger from the given context, or a stderr logger at
// the default level when none is set.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return New(defaultLevel, false)
	}
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return New(defaultLevel, false)
	}
	return logger
}

// LevelFromString converts a string to a Level. Unknown values map to the
// default level.
func LevelFromString(value string) Level {
	level, ok := ParseLevel(value)
	if !ok {
		return defaultLevel
	}
	return level
}

// ParseLevel converts a string to a Level and reports whether the string
// named a known level.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return defaultLevel, false
	}
}

// Discard is a Logger that drops every message.
var Discard Logger = NullLogger{}

// NullLogger implements the Logger interface but does nothing.
type NullLogger struct{}

func (NullLogger) Debug(string, ...any) {}
func (NullLogger) Info(string, ...any)  {}
func (NullLogger) Warn(string, ...any)  {}
func (NullLogger) Error(string, ...any) {}
func (l NullLogger) With(...any) Logger { return l }
