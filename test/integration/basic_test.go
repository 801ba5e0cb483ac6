// Package integration contains integration tests for neartest.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/neartest/internal/config"
	"github.com/AndreyAkinshin/neartest/internal/fixture"
	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

const defaultTolerance = 1e-9

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func readActual(t *testing.T) []byte {
	t.Helper()
	doc, err := os.ReadFile(filepath.Join(fixturesDir(), "actual.json"))
	if err != nil {
		t.Fatalf("failed to read actual document: %v", err)
	}
	return doc
}

// checkSuite runs every fixture in dir against the actual document on one
// checker and returns the names of the failed fixtures and the diagnostics.
func checkSuite(t *testing.T, dir string) ([]string, string) {
	t.Helper()
	fixtures, err := fixture.LoadDir(filepath.Join(fixturesDir(), dir), config.DefaultFixturesPattern)
	if err != nil {
		t.Fatalf("failed to load %s fixtures: %v", dir, err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("expected fixtures in %s", dir)
	}

	doc := readActual(t)
	var buf bytes.Buffer
	c := neartest.New[float64](neartest.WithWriter(&buf))

	var failed []string
	for i := range fixtures {
		f := &fixtures[i]
		actual, err := fixture.Extract(doc, f.ActualQuery())
		if err != nil {
			t.Fatalf("fixture %s: %v", f.Name, err)
		}
		c.Reset()
		fixture.Run(c, f, actual, defaultTolerance)
		if c.Err() != nil {
			failed = append(failed, f.Name)
		}
	}
	return failed, buf.String()
}

func TestPassingSuite(t *testing.T) {
	t.Parallel()

	failed, out := checkSuite(t, "passing")
	if len(failed) != 0 {
		t.Errorf("expected no failures, got %v\n%s", failed, out)
	}
	if out != "" {
		t.Errorf("expected no diagnostics, got %q", out)
	}
}

func TestFailingSuite(t *testing.T) {
	t.Parallel()

	failed, out := checkSuite(t, "failing")

	want := "FAILURE: energy is not conserved\n\n" +
		"FAILURE: profile Shape mismatch.\n\n" +
		"FAILURE: residuals Element mismatch.\n\n" +
		"FAILURE: spectrum Size mismatch.\n\n"
	if out != want {
		t.Errorf("diagnostics = %q, want %q", out, want)
	}
	if len(failed) != 4 {
		t.Errorf("expected 4 failed fixtures, got %v", failed)
	}
}

func TestSuiteAccumulatesWithoutReset(t *testing.T) {
	t.Parallel()

	doc := readActual(t)
	fixtures, err := fixture.LoadPaths([]string{
		filepath.Join(fixturesDir(), "failing", "spectrum.json"),
		filepath.Join(fixturesDir(), "passing", "velocity.json"),
	}, "*")
	if err != nil {
		t.Fatalf("failed to load fixtures: %v", err)
	}

	var buf bytes.Buffer
	c := neartest.New[float64](neartest.WithWriter(&buf))
	for i := range fixtures {
		actual, err := fixture.Extract(doc, fixtures[i].ActualQuery())
		if err != nil {
			t.Fatal(err)
		}
		fixture.Run(c, &fixtures[i], actual, defaultTolerance)
	}

	if err := c.Err(); err != neartest.ErrTestFailed {
		t.Errorf("Err() = %v, want ErrTestFailed after a passing check", err)
	}
	if got := buf.String(); got != "FAILURE: spectrum Size mismatch.\n\n" {
		t.Errorf("diagnostics = %q", got)
	}
}
