package puzzle

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/aoc/pkg"
)

// Sample is an example input with an expectation of its answer.
//
// Want is an expression over part1 and part2 (see [Expect]). When Part
// selects a single part, Want may also be a bare integer, which is
// shorthand for "partN == <integer>".
type Sample struct {
	Puzzle ID     `json:"puzzle,omitzero" yaml:"puzzle,omitempty"`
	Part   Part   `json:"part"            yaml:"part"`
	Input  string `json:"input"           yaml:"input"`
	Want   string `json:"want"            yaml:"want"`
}

// Expectation returns the expression that Want stands for.
func (s Sample) Expectation() (string, error) {
	want := strings.TrimSpace(s.Want)
	if want == "" {
		return "", pkg.ErrExpect.With(slog.String("reason", "empty expectation"))
	}

	if _, err := strconv.Atoi(want); err != nil {
		return want, nil
	}

	if s.Part == PartBoth {
		return "", pkg.ErrExpect.With(
			slog.String("want", want),
			slog.String("reason", "bare integer requires a single part"),
		)
	}

	return s.Part.Var() + " == " + want, nil
}

// LoadSamples decodes a YAML sequence of samples from r:
//
//   - puzzle: 2015/01
//     part: 1
//     input: "(()(()("
//     want: "3"
func LoadSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample

	if err := yaml.NewDecoder(r).Decode(&samples); err != nil && !errors.Is(err, io.EOF) {
		return nil, pkg.ErrLoadSamples.Wrap(err)
	}

	for i, s := range samples {
		if !s.Puzzle.Valid() {
			return nil, pkg.ErrLoadSamples.Wrap(pkg.ErrInvalidPuzzleID).With(
				slog.Int("index", i),
				slog.String("puzzle", s.Puzzle.String()),
			)
		}
	}

	return samples, nil
}
