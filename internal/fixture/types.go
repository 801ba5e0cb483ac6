// Package fixture loads expected numeric values from JSON or YAML files and
// checks actual values against them with a neartest.Checker.
//
// A fixture file looks like:
//
//	{
//	    "description": "velocity profile after 3 steps",
//	    "query": "result.velocity",
//	    "tolerance": 1e-6,
//	    "expected": [0.1, 0.2, 0.3]
//	}
//
// Only "expected" is required. The fixture name is the file name without its
// extension, and it is the default for both the query and the failure message.
package fixture

import "github.com/AndreyAkinshin/neartest/pkg/neartest"

// Fixture is an expected value loaded from a file.
type Fixture struct {
	Name        string   // File name without extension
	Path        string   // Path the fixture was loaded from
	Description string   // Optional documentation
	Message     string   // Failure message; empty means Name
	Query       string   // JSON path of the actual value; empty means Name
	Tolerance   *float64 // Absolute tolerance; nil means the configured default
	Skip        bool     // Skipped fixtures are loaded but not checked
	Expected    neartest.Value[float64]
}

// ActualQuery returns the JSON path used to select the actual value.
func (f *Fixture) ActualQuery() string {
	if f.Query != "" {
		return f.Query
	}
	return f.Name
}

// FailureMessage returns the message printed when the check fails.
func (f *Fixture) FailureMessage() string {
	if f.Message != "" {
		return f.Message
	}
	return f.Name
}

// ToleranceOr returns the fixture tolerance, or def if the fixture has none.
func (f *Fixture) ToleranceOr(def float64) float64 {
	if f.Tolerance != nil {
		return *f.Tolerance
	}
	return def
}

// document is the on-disk fixture layout after schema validation.
type document struct {
	Description string   `json:"description"`
	Message     string   `json:"message"`
	Query       string   `json:"query"`
	Tolerance   *float64 `json:"tolerance"`
	Grid        bool     `json:"grid"`
	Skip        bool     `json:"skip"`
	Expected    any      `json:"expected"`
}
