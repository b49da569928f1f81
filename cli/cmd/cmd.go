package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/pkg"
	"github.com/ardnew/aoc/puzzle"
)

// Stdout receives command output.
var Stdout io.Writer = os.Stdout

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type inputDirKey struct{}

// WithInputDir returns a new context.Context containing the directory
// searched for puzzle inputs.
func WithInputDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, inputDirKey{}, dir)
}

// inputDirFrom returns the input directory stored in ctx by WithInputDir,
// or the working directory if none was stored.
func inputDirFrom(ctx context.Context) string {
	dir, ok := ctx.Value(inputDirKey{}).(string)
	if !ok || dir == "" {
		return "."
	}

	return dir
}

// Source selects the input of a puzzle: an explicit file, "-" for stdin,
// or the puzzle's file under the input directory.
type Source struct {
	File string `help:"Read input from file ('-' for stdin) instead of the input directory." short:"f"`
}

// load finds the named puzzle and reads its input.
func (s Source) load(ctx context.Context, name string) (*puzzle.Puzzle, string, error) {
	p, err := puzzle.Find(name)
	if err != nil {
		return nil, "", err
	}

	path := s.File
	if path == "" {
		path = puzzle.InputPath(inputDirFrom(ctx), p.ID)
	}

	log.DebugContext(ctx, "reading input",
		slog.String("puzzle", p.ID.String()),
		slog.String("path", path),
	)

	input, err := puzzle.ReadInput(path)
	if err != nil {
		return nil, "", err
	}

	return p, input, nil
}

// write encodes v to [Stdout].
func write(ctx context.Context, f Format, indent int, v any) error {
	if err := f.Encode(ctx, Stdout, indent, v); err != nil {
		return pkg.ErrWriteOutput.Wrap(err).With(slog.String("format", string(f)))
	}

	return nil
}
