package y2015

import (
	"context"
	"crypto/md5" //nolint:gosec
	"strconv"
	"unicode"

	"github.com/ardnew/aoc/parse"
	"github.com/ardnew/aoc/puzzle"
)

// checkEvery is how many hashes are computed between cancellation checks.
const checkEvery = 1 << 14

var day04 = puzzle.Define(
	puzzle.ID{Year: 2015, Day: 4}, "The Ideal Stocking Stuffer",
	puzzle.Line(parse.TakeWhile1("secret key", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})),
	func(ctx context.Context, key string) (int, error) { return mine(ctx, key, 5) },
	func(ctx context.Context, key string) (int, error) { return mine(ctx, key, 6) },
	puzzle.Sample{Part: puzzle.Part1, Input: "abcdef\n", Want: "609043"},
	puzzle.Sample{Part: puzzle.Part1, Input: "pqrstuv\n", Want: "1048970"},
)

// mine returns the lowest positive number that, appended to key, gives an
// MD5 hash whose hex form starts with the given number of zeros.
func mine(ctx context.Context, key string, zeros int) (int, error) {
	buf := make([]byte, 0, len(key)+20)
	buf = append(buf, key...)

	for n := 1; ; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		sum := md5.Sum(strconv.AppendInt(buf, int64(n), 10)) //nolint:gosec
		if leadingZeros(sum[:], zeros) {
			return n, nil
		}
	}
}

// leadingZeros reports whether the first n hex digits of b are zero.
func leadingZeros(b []byte, n int) bool {
	for i := range n {
		nibble := b[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}

		if nibble&0x0f != 0 {
			return false
		}
	}

	return true
}
