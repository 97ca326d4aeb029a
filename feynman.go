package feynman

import (
	"context"
	"fmt"
	"io"

	"github.com/deepnoodle-ai/feynman/log"
)

// Title is the header line of the report.
const Title = "CLASSIC FEYNMAN SOLUTION"

// Constants holds the fixed inputs of the puzzle.
type Constants struct {
	A        int
	Quotient int
}

// Classic is the multiplicand and quotient of the classic solution.
var Classic = Constants{A: 5, Quotient: 111111}

// Solve multiplies the constants.
func (c Constants) Solve() Solution {
	return Solution{
		A:        c.A,
		Dividend: c.A * c.Quotient,
		Quotient: c.Quotient,
	}
}

// Solution is a solved triple. Dividend is always A * Quotient.
type Solution struct {
	A        int
	Dividend int
	Quotient int
}

// Values returns the triple in report order.
func (s Solution) Values() (a, dividend, quotient int) {
	return s.A, s.Dividend, s.Quotient
}

// Lines returns the report lines without line terminators. The
// verification line restates Quotient; nothing is divided.
func (s Solution) Lines() []string {
	return []string{
		Title,
		fmt.Sprintf("A = %d", s.A),
		fmt.Sprintf("Dividend = %d", s.Dividend),
		fmt.Sprintf("Quotient = %d", s.Quotient),
		fmt.Sprintf("Verification: %d / %d = %d", s.Dividend, s.A, s.Quotient),
	}
}

// WriteTo writes the report to w, one line per Lines entry. It stops at
// the first failed write.
func (s Solution) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range s.Lines() {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SolveFeynman solves the classic constants and writes the report to w.
// The context only carries the logger.
func SolveFeynman(ctx context.Context, w io.Writer) (Solution, error) {
	solution := Classic.Solve()
	log.Ctx(ctx).Debug("solved",
		"a", solution.A,
		"dividend", solution.Dividend,
		"quotient", solution.Quotient)

	if _, err := solution.WriteTo(w); err != nil {
		return solution, fmt.Errorf("error writing report: %w", err)
	}
	return solution, nil
}
