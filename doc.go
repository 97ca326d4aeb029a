// Package feynman prints the classic Feynman long-division solution: a
// fixed multiplicand and quotient, their product as the dividend, and a
// line restating the division.
//
// The core types are:
//
//   - [Constants] holds the two fixed inputs. [Classic] is the puzzle's pair.
//   - [Solution] is the solved triple, built only by [Constants.Solve].
//
// # Quick Start
//
//	solution, err := feynman.SolveFeynman(ctx, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	a, dividend, quotient := solution.Values()
//
// The executable lives in [github.com/deepnoodle-ai/feynman/cmd/feynman].
package feynman
