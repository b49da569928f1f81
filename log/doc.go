// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured once, at creation, with functional options and
// write to standard error by default so that program output on standard
// output is never interleaved with diagnostics.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("solved", slog.String("puzzle", "2015/01"), slog.Int("part1", 280))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// The package-level functions ([Info], [Debug], ...) use a default logger
// that is reconfigured in place with [Config].
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// [FormatText] (default) writes key=value lines; with [WithPretty] enabled
// they are styled with lipgloss when the output is a terminal.
// [FormatJSON] writes one JSON object per line.
package log
