package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger provides a concurrency-safe simplified logging interface.
// Its configuration is fixed when it is made; derive a differently
// configured Logger with [Logger.Wrap].
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer.
// The default configuration is [DefaultFormat], [DefaultLevel],
// [DefaultTimeLayout], pretty output, and caller info disabled.
//
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], [WithTimeLayout], and [WithCaller].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] configured like l with opts applied on top.
// Attributes added to l with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.config, opts...)
	if cfg.output == nil {
		cfg = makeConfig(nil, opts...)
	}

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		config: l.config,
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
	}
}

// Level returns the current minimum log level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the current log output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelTrace, msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelError, msg, attrs...)
}

// logContext writes a log record attributed to the caller of the exported
// method or function that called it.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return
	}

	if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr
	// 1=runtime.Callers, 2=logContext, 3=exported wrapper
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
