package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/pkg"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Errors returned by [Init].
var (
	ErrWriteConfig = pkg.NewError("failed to write configuration")
	ErrFileExists  = errors.New("file exists")
)

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file." short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	file := slog.String("file", confPath)

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !i.Force {
		flag |= os.O_EXCL
	}

	f, err := os.OpenFile(confPath, flag, 0o600)
	if errors.Is(err, os.ErrExist) {
		return ErrWriteConfig.With(file).Wrap(ErrFileExists)
	}

	if err != nil {
		return ErrWriteConfig.With(file).Wrap(err)
	}
	defer f.Close()

	data, err := yaml.MarshalContext(ctx, flagValues(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrWriteConfig.With(file).Wrap(err)
	}

	if _, err := f.Write(data); err != nil {
		return ErrWriteConfig.With(file).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file", file)

	return nil
}

// flagValues returns the current values of the root flags, keyed by flag
// name, excluding flags that do not belong in a configuration file.
func flagValues(ktx *kong.Context) map[string]any {
	ignore := []string{"help", "version", "pprof"}

	values := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v := configValue(ktx.FlagValue(flag)); v != nil {
			values[flag.Name] = v
		}
	}

	return values
}

// configValue converts a flag value into a YAML scalar, or nil if the flag
// has no value worth recording.
func configValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case bool, int, int64, uint, uint64, float64:
		return v
	case string:
		if v == "" {
			return nil
		}

		return v
	case fmt.Stringer:
		return v.String()
	default:
		if s := fmt.Sprint(v); s != "" {
			return s
		}

		return nil
	}
}
