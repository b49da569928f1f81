package puzzle

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ardnew/aoc/pkg"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// Stdin is read by [ReadInput] for [StdinPath].
var Stdin io.Reader = os.Stdin

// InputPath returns the conventional location of a puzzle's input under
// dir: "<dir>/<year>/<day>.txt" with a two-digit day.
func InputPath(dir string, id ID) string {
	return filepath.Join(dir, strconv.Itoa(id.Year), id.dayFile())
}

func (id ID) dayFile() string {
	if id.Day < 10 {
		return "0" + strconv.Itoa(id.Day) + ".txt"
	}

	return strconv.Itoa(id.Day) + ".txt"
}

// ReadInput returns the entire contents of the file at path, or of
// standard input if path is [StdinPath].
func ReadInput(path string) (string, error) {
	var (
		b   []byte
		err error
	)

	if path == StdinPath {
		b, err = io.ReadAll(Stdin)
	} else {
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	return string(b), nil
}
