// Package neartest provides an accumulating near-equality checker for
// numeric test results.
//
// A Checker compares actual and expected values within an absolute
// tolerance. Mismatches are printed and remembered, but they do not stop the
// caller. Accumulated failures become an error only through Err (or Require
// inside a Go test):
//
//	func TestSolver(t *testing.T) {
//	    c := neartest.New[float64]()
//	    c.Near(solve(1), 0.5, 1e-9, "solve(1)")
//	    c.NearSlice(trajectory(), want, 1e-6, "trajectory")
//	    c.Require(t)
//	}
//
// A Checker is not safe for concurrent use. Give each test worker its own.
package neartest

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Checker can compare.
type Number interface {
	constraints.Integer | constraints.Float
}

// Diagnostic suffixes appended to the failure message.
const (
	suffixSize    = " Size mismatch."
	suffixElement = " Element mismatch."
	suffixShape   = " Shape mismatch."
)

// Checker compares numeric values and records whether any comparison failed
// since construction or the last Reset.
type Checker[T Number] struct {
	out       io.Writer
	locations bool
	prefix    *color.Color
	failed    bool
}

// Option configures a Checker.
type Option func(*settings)

type settings struct {
	out       io.Writer
	locations bool
	color     bool
}

// WithWriter sets the destination for failure diagnostics (default os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

// WithLocations appends the index of the first mismatching element to
// element-mismatch diagnostics.
func WithLocations(enabled bool) Option {
	return func(s *settings) {
		s.locations = enabled
	}
}

// WithColor renders the FAILURE prefix in red.
func WithColor(enabled bool) Option {
	return func(s *settings) {
		s.color = enabled
	}
}

// New creates a Checker with a clear failure flag.
func New[T Number](opts ...Option) *Checker[T] {
	s := settings{out: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}
	if s.out == nil {
		s.out = io.Discard
	}

	prefix := color.New(color.FgRed, color.Bold)
	if s.color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	return &Checker[T]{
		out:       s.out,
		locations: s.locations,
		prefix:    prefix,
	}
}

// Near checks that |actual - expected| <= tolerance.
func (c *Checker[T]) Near(actual, expected, tolerance T, message string) {
	if !within(actual, expected, tolerance) {
		c.fail(message, "")
	}
}

// NearSlice checks two sequences element by element. A length mismatch is
// reported without comparing elements. Only the first mismatching element is
// reported.
//
// Fixed-length arrays are compared by slicing them: c.NearSlice(a[:], e[:], ...).
func (c *Checker[T]) NearSlice(actual, expected []T, tolerance T, message string) {
	if len(actual) != len(expected) {
		c.fail(message, suffixSize)
		return
	}
	for i := range actual {
		if !within(actual[i], expected[i], tolerance) {
			c.fail(message, c.elementSuffix(fmt.Sprintf("[%d]", i)))
			return
		}
	}
}

// NearNested checks two jagged 2-D sequences in row-major order, stopping at
// the first size or element mismatch.
func (c *Checker[T]) NearNested(actual, expected [][]T, tolerance T, message string) {
	if len(actual) != len(expected) {
		c.fail(message, suffixSize)
		return
	}
	for i := range actual {
		if len(actual[i]) != len(expected[i]) {
			c.fail(message, suffixSize)
			return
		}
		for j := range actual[i] {
			if !within(actual[i][j], expected[i][j], tolerance) {
				c.fail(message, c.elementSuffix(fmt.Sprintf("(%d, %d)", i, j)))
				return
			}
		}
	}
}

// NearGrid checks two grids in row-major order, stopping at the first
// mismatching element. Grids of different dimensions are a shape mismatch.
func (c *Checker[T]) NearGrid(actual, expected Grid[T], tolerance T, message string) {
	if actual.rows != expected.rows || actual.cols != expected.cols {
		c.fail(message, suffixShape)
		return
	}
	for i := 0; i < actual.rows; i++ {
		for j := 0; j < actual.cols; j++ {
			if !within(actual.At(i, j), expected.At(i, j), tolerance) {
				c.fail(message, c.elementSuffix(fmt.Sprintf("(%d, %d)", i, j)))
				return
			}
		}
	}
}

// NearValue dispatches to the check matching the kind of expected.
// Values of different kinds are a shape mismatch.
func (c *Checker[T]) NearValue(actual, expected Value[T], tolerance T, message string) {
	if actual.kind != expected.kind {
		c.fail(message, suffixShape)
		return
	}
	switch expected.kind {
	case KindScalar:
		c.Near(actual.scalar, expected.scalar, tolerance, message)
	case KindSequence:
		c.NearSlice(actual.seq, expected.seq, tolerance, message)
	case KindNested:
		c.NearNested(actual.nested, expected.nested, tolerance, message)
	case KindGrid:
		c.NearGrid(actual.grid, expected.grid, tolerance, message)
	default:
		c.fail(message, suffixShape)
	}
}

// Failed reports whether any check failed since the last Reset.
func (c *Checker[T]) Failed() bool {
	return c.failed
}

// Err returns ErrTestFailed if any check failed since the last Reset.
func (c *Checker[T]) Err() error {
	if c.failed {
		return ErrTestFailed
	}
	return nil
}

// Reset clears the failure flag.
func (c *Checker[T]) Reset() {
	c.failed = false
}

func (c *Checker[T]) fail(message, suffix string) {
	c.failed = true
	// Write errors are ignored; the flag is the source of truth.
	_, _ = fmt.Fprintf(c.out, "%s %s%s\n\n", c.prefix.Sprint("FAILURE:"), message, suffix)
}

func (c *Checker[T]) elementSuffix(location string) string {
	if !c.locations {
		return suffixElement
	}
	return " Element mismatch at " + location + "."
}

// within reports whether |actual - expected| <= tolerance. The difference is
// taken as max - min so unsigned types do not wrap. A signed difference that
// overflows wraps negative and exceeds any tolerance T can hold, so it fails.
// NaN differences are never within tolerance.
func within[T Number](actual, expected, tolerance T) bool {
	var diff T
	if actual > expected {
		diff = actual - expected
	} else {
		diff = expected - actual
	}
	return diff >= 0 && diff <= tolerance
}
