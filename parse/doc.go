// Package parse provides composable parser combinators over an immutable
// text [Cursor].
//
// A [Parser] is any function with the signature
//
//	func(in Cursor) (value T, rest Cursor, err error)
//
// Grammars are built by passing parsers to combinator functions and are
// applied once to a complete input with [Complete].
//
// # Primitives
//
//   - Literals: [Tag], [Char], [OneOf], [NoneOf], [Satisfy], [TakeWhile1]
//   - Numbers: [Natural], [Uint], [Int]
//   - Layout: [Space0], [Space1], [Multispace0], [LineEnding], [EOF]
//
// # Combinators
//
//   - Sequencing: [Tuple2] … [Tuple5], [Sequence], [Preceded],
//     [Terminated], [Delimited]
//   - Alternation: [Alt], [Opt]
//   - Repetition: [Many0], [Many1], [SeparatedList0], [SeparatedList1],
//     [Count], [Lines]
//   - Values: [Map], [MapErr], [Value], [Recognize], [Build]
//   - Control: [Lazy], [Cut], [Named]
//
// # Failures
//
// A failing parser returns the cursor it was given and an [*Error] that
// records the position, what was expected and a cause that can be tested
// with [errors.Is] against [ErrNoMatch], [ErrOverflow], [ErrNoProgress],
// [ErrCount] and [ErrTrailing]. Failures are ordinary values; [Alt] and
// the repetition combinators recover from them unless they are fatal (see
// [Cut]).
//
// # Example
//
//	dims := parse.Tuple5(
//		parse.Natural[int](), parse.Tag("x"),
//		parse.Natural[int](), parse.Tag("x"),
//		parse.Natural[int](),
//	)
//	box, err := parse.Complete(parse.Terminated(dims, parse.LineEnding()), "3x4x5\n")
//	// box.V1 == 3, box.V3 == 4, box.V5 == 5
//
// Parsers hold no mutable state and may be shared between goroutines.
package parse
