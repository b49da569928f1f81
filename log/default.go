package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// DefaultContextProvider returns the context used by context-unaware
// logging functions.
var DefaultContextProvider = context.TODO

var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(DefaultOutput)
	defaultLog.Store(&l)
}

// Default returns the package-level logger.
func Default() Logger { return *defaultLog.Load() }

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) { defaultLog.Store(&l) }

// Config reconfigures the package-level logger with the given options.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)
}

// With returns a new [Logger] derived from the package-level logger that
// includes the given attributes in each log message.
func With(attrs ...slog.Attr) Logger {
	return Default().With(attrs...)
}

// TraceContext logs at Trace level using the package-level logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs at Trace level using the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logContext(DefaultContextProvider(), LevelTrace, msg, attrs...)
}

// DebugContext logs at Debug level using the package-level logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs at Debug level using the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logContext(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs at Info level using the package-level logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs at Info level using the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logContext(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs at Warn level using the package-level logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs at Warn level using the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logContext(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs at Error level using the package-level logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelError, msg, attrs...)
}

// Error logs at Error level using the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logContext(DefaultContextProvider(), LevelError, msg, attrs...)
}
