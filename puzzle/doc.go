// Package puzzle defines, registers and runs daily puzzle solutions.
//
// A solution is declared with [Define], which pairs a grammar from package
// parse with one [Solver] per part, and is registered from an init
// function of its year package:
//
//	func init() {
//		puzzle.MustRegister(puzzle.Define(
//			puzzle.ID{Year: 2015, Day: 1}, "Not Quite Lisp",
//			floors, walk, basement,
//		))
//	}
//
// Each solution owns its input type and computation; the package only
// supplies lookup by [ID], input loading with [ReadInput], whole-input
// parsing, and answer checks with [Expect] and [Puzzle.Check].
//
// Failures are reported with the sentinel errors of package pkg, which
// wrap the underlying [parse.Error] when the input is malformed.
package puzzle
