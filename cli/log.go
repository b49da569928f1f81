package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aoc/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so that errors reported while kong is still
// parsing are already formatted as requested.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp layout (\"none\" to omit)."`
	Caller     bool      `default:"false"                           help:"Include caller information."               negatable:""`
	Pretty     bool      `default:"true"                            help:"Style text output on a terminal."          negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logging flag, including those that kong sets
// without calling UnmarshalText.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position and before any command
// or parse error is reported.
func (f *logConfig) scan(args []string) {
	boolFlag := func(dst *bool, opt func(bool) log.Option, negate bool) func(string, bool) {
		return func(value string, assigned bool) {
			v := true
			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return
				}

				v = b
			}

			*dst = v != negate
			log.Config(opt(*dst))
		}
	}

	valued := map[string]func(string){
		"--log-level":  func(v string) { _ = f.Level.UnmarshalText([]byte(v)) },
		"--log-format": func(v string) { _ = f.Format.UnmarshalText([]byte(v)) },
		"--log-time-layout": func(v string) {
			f.TimeLayout = v
			log.Config(log.WithTimeLayout(v))
		},
	}

	flags := map[string]func(string, bool){
		"--log-pretty":    boolFlag(&f.Pretty, log.WithPretty, false),
		"--no-log-pretty": boolFlag(&f.Pretty, log.WithPretty, true),
		"--log-caller":    boolFlag(&f.Caller, log.WithCaller, false),
		"--no-log-caller": boolFlag(&f.Caller, log.WithCaller, true),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, value, assigned := strings.Cut(arg, "=")

		if set, ok := valued[name]; ok {
			if !assigned {
				// Consume the next argument as the value.
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					continue
				}

				i++
				value = args[i]
			}

			set(value)

			continue
		}

		if set, ok := flags[name]; ok {
			set(value, assigned)
		}
	}
}
