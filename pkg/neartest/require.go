package neartest

import "errors"

// ErrTestFailed is returned by Checker.Err when any check failed since the
// last Reset.
var ErrTestFailed = errors.New("Test failed.") //nolint:staticcheck // exact text is part of the output contract

// TB is the subset of testing.TB used by Require.
type TB interface {
	Helper()
	Fatal(args ...any)
}

// Require fails t immediately if any check failed since the last Reset.
func (c *Checker[T]) Require(t TB) {
	t.Helper()
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
}
