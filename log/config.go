package log

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
// Levels between the named ones are rendered as offsets, e.g. "info+2".
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return strings.ToLower(slog.Level(l).String())
	}
}

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelTrace,
			LevelDebug,
			LevelInfo,
			LevelWarn,
			LevelError,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "TRACE", "DEBUG", "INFO", "WARN", and "ERROR",
// optionally followed by a "+" or "-" and an integer offset.
// Unrecognized strings yield [DefaultLevel].
func ParseLevel(s string) Level {
	// slog.Level.UnmarshalText does not know about trace
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Formats returns an iterator over all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{
			FormatText,
			FormatJSON,
		} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a string representation of a log format.
// Valid format strings are "json" and "text".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default setting for including caller information
// in log output.
const DefaultCaller = false

// DefaultPretty is the default setting for pretty printing log output.
const DefaultPretty = true

// DefaultOutput is the writer used when none is given.
// Diagnostics go to stderr so that answers written to stdout stay clean.
var DefaultOutput io.Writer = os.Stderr

// config holds the configuration options for a Logger.
// A config is never mutated after a Logger is built from it.
type config struct {
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	return apply(apply(config{}, WithDefaults(w)), opts...)
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	case FormatText:
		if c.pretty {
			return newPrettyHandler(c.output, opts)
		}

		return slog.NewTextHandler(c.output, opts)

	default:
		return slog.DiscardHandler
	}
}

// replaceAttr formats timestamps with the configured layout and renders
// level names, so that "TRACE" appears instead of "DEBUG-4".
func (c config) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			formatted := c.formatTime(t)
			if formatted == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(formatted)
		}

	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
		}
	}

	return a
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"us":         time.StampMicro,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Normalized only for lookup. Custom layouts are used verbatim.
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if key == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
