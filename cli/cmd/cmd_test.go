package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/aoc/log"
	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/pkg"
	"github.com/ardnew/aoc/puzzle"
)

var sumID = puzzle.ID{Year: 2097, Day: 1}

func TestMain(m *testing.M) {
	log.Config(log.WithOutput(io.Discard))

	sum := func(_ context.Context, in []int) (int, error) {
		n := 0
		for _, v := range in {
			n += v
		}

		return n, nil
	}

	largest := func(_ context.Context, in []int) (int, error) {
		n := 0
		for _, v := range in {
			n = max(n, v)
		}

		return n, nil
	}

	puzzle.MustRegister(puzzle.Define(sumID, "Sum", parse.Lines(parse.Natural[int]()), sum, largest,
		puzzle.Sample{Part: puzzle.Part1, Input: "1\n2\n3\n", Want: "6"},
		puzzle.Sample{Input: "4\n9", Want: "part1 == 13 && part2 == 9"},
	))

	os.Exit(m.Run())
}

// capture redirects Stdout for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prev := Stdout
	Stdout = &buf

	t.Cleanup(func() { Stdout = prev })

	return &buf
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestSolveRun(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "in.txt"), "10\n20\n5\n")
	writeFile(t, puzzle.InputPath(dir, sumID), "7\n8\n")

	tests := []struct {
		name    string
		dir     string
		cmd     Solve
		want    string
		wantErr *pkg.Error
	}{
		{
			name: "text_from_file",
			cmd:  Solve{Source: Source{File: file}, Puzzle: "2097/01", Format: FormatText},
			want: "2097/01 part1=35 part2=20\n",
		},
		{
			name: "json_from_input_dir",
			dir:  dir,
			cmd:  Solve{Puzzle: "2097-1", Format: FormatJSON},
			want: `{"puzzle":"2097/01","part1":15,"part2":8}` + "\n",
		},
		{
			name: "single_part",
			cmd:  Solve{Source: Source{File: file}, Puzzle: "2097/01", Part: 2, Format: FormatText},
			want: "2097/01 part2=20\n",
		},
		{
			name: "expect_satisfied",
			cmd:  Solve{Source: Source{File: file}, Puzzle: "2097/01", Expect: "part1 > part2"},
			want: "2097/01 part1=35 part2=20\n",
		},
		{
			name:    "expect_mismatch",
			cmd:     Solve{Source: Source{File: file}, Puzzle: "2097/01", Expect: "part1 == 0"},
			want:    "2097/01 part1=35 part2=20\n",
			wantErr: pkg.ErrAnswerMismatch,
		},
		{
			name:    "unknown_puzzle",
			cmd:     Solve{Puzzle: "2097/02"},
			wantErr: pkg.ErrUnknownPuzzle,
		},
		{
			name:    "missing_input",
			dir:     t.TempDir(),
			cmd:     Solve{Puzzle: "2097/01"},
			wantErr: pkg.ErrReadInput,
		},
		{
			name:    "bad_input",
			cmd:     Solve{Source: Source{File: writeFile(t, filepath.Join(dir, "bad.txt"), "1\nx\n")}, Puzzle: "2097/01"},
			wantErr: pkg.ErrTrailingInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t)

			ctx := WithInputDir(context.Background(), tt.dir)

			err := tt.cmd.Run(ctx)
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDumpRun(t *testing.T) {
	out := capture(t)
	file := writeFile(t, filepath.Join(t.TempDir(), "in.txt"), "1\n2\n3\n")

	tests := []struct {
		format Format
		indent int
		want   string
	}{
		{FormatJSON, 0, "[1,2,3]\n"},
		{FormatYAML, 2, "- 1\n- 2\n- 3\n"},
	}

	for _, tt := range tests {
		out.Reset()

		d := Dump{Source: Source{File: file}, Puzzle: "2097/01", Format: tt.format, Indent: tt.indent}
		if err := d.Run(context.Background()); err != nil {
			t.Fatal(err)
		}

		if got := out.String(); got != tt.want {
			t.Errorf("%s output = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestListRun(t *testing.T) {
	out := capture(t)

	l := List{Format: FormatJSON}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), `[{"puzzle":"2097/01","title":"Sum","parts":[1,2]}]`+"\n"; got != want {
		t.Errorf("json output = %q, want %q", got, want)
	}

	out.Reset()

	l = List{Format: FormatText}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"PUZZLE", "2097/01", "part1 part2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}

	out.Reset()

	l = List{Year: 2015, Format: FormatJSON}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "[]\n" {
		t.Errorf("filtered output = %q, want []", got)
	}
}

func TestCheckRun(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		out := capture(t)

		c := Check{Puzzles: []string{"2097/01"}}
		if err := c.Run(context.Background()); err != nil {
			t.Fatal(err)
		}

		want := "PASS 2097/01 part=1 want=6\n" +
			"PASS 2097/01 part=both want=part1 == 13 && part2 == 9\n"
		if got := out.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("samples_file", func(t *testing.T) {
		out := capture(t)

		file := writeFile(t, filepath.Join(t.TempDir(), "samples.yaml"), `
- puzzle: 2097/01
  part: 2
  input: "4\n10\n"
  want: "10"
- puzzle: 2097/01
  part: 1
  input: "4\n10\n"
  want: "15"
`)

		c := Check{Samples: file}
		if err := c.Run(context.Background()); !errors.Is(err, pkg.ErrCheckFailed) {
			t.Fatalf("Run() error = %v, want ErrCheckFailed", err)
		}

		for _, want := range []string{
			"PASS 2097/01 part=2 want=10\n",
			"FAIL 2097/01 part=1 want=15\n",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unknown_puzzle", func(t *testing.T) {
		capture(t)

		c := Check{Puzzles: []string{"1999/01"}}
		if err := c.Run(context.Background()); !errors.Is(err, pkg.ErrInvalidPuzzleID) {
			t.Errorf("Run() error = %v, want ErrInvalidPuzzleID", err)
		}
	})
}

func TestFormatEncode(t *testing.T) {
	t.Parallel()

	v := map[string]int{"a": 1}

	tests := []struct {
		format Format
		indent int
		want   string
	}{
		{FormatJSON, 0, "{\"a\":1}\n"},
		{FormatJSON, 2, "{\n  \"a\": 1\n}\n"},
		{FormatYAML, 2, "a: 1\n"},
		{FormatText, 0, "map[a:1]\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		if err := tt.format.Encode(context.Background(), &buf, tt.indent, v); err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}

		if got := buf.String(); got != tt.want {
			t.Errorf("%s indent %d = %q, want %q", tt.format, tt.indent, got, tt.want)
		}
	}

	if err := Format("xml").Encode(context.Background(), io.Discard, 0, v); err == nil {
		t.Error("unsupported format should fail")
	}
}
