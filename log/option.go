package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithDefaults returns a functional option that resets every setting to its
// default and writes to w.
// The default configuration is [DefaultTimeLayout], [DefaultLevel],
// [DefaultFormat], pretty output, and caller info disabled.
func WithDefaults(w io.Writer) Option {
	return func(config) config {
		return config{
			output:     writerOrDiscard(w),
			formatTime: makeFormatTimeFunc(DefaultTimeLayout),
			level:      DefaultLevel,
			format:     DefaultFormat,
			caller:     DefaultCaller,
			pretty:     DefaultPretty,
		}
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		c.output = writerOrDiscard(w)

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "Kitchen"). Otherwise, it is passed verbatim
// to [time.Time.Format].
//
// An empty layout, or "none", disables timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithCaller returns a functional option that controls whether caller
// information is included in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty returns a functional option that controls whether text output
// is styled for a terminal.
// Styling is dropped automatically when the output is not a terminal.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
