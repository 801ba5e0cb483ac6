package fixture

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

const actualDoc = `{
	"energy": 12.5001,
	"result": {
		"velocity": [0.1, 0.2, 0.3],
		"profile": [[1, 2], [3.5, 4]],
		"jagged": [[1], [2, 3]],
		"special": ["NaN", "Infinity", "-Infinity"],
		"label": "fast",
		"mixed": [1, "two"],
		"empty": []
	}
}`

func TestExtract_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		kind  neartest.Kind
	}{
		{"energy", neartest.KindScalar},
		{"result.velocity", neartest.KindSequence},
		{"result.profile", neartest.KindNested},
		{"result.jagged", neartest.KindNested},
		{"result.empty", neartest.KindSequence},
		{"result.velocity.1", neartest.KindScalar},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			v, err := Extract([]byte(actualDoc), tt.query)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind = %v, want %v", v.Kind(), tt.kind)
			}
		})
	}
}

func TestExtract_Values(t *testing.T) {
	t.Parallel()

	v, err := Extract([]byte(actualDoc), "result.velocity")
	if err != nil {
		t.Fatal(err)
	}
	seq := v.AsSequence()
	if len(seq) != 3 || seq[2] != 0.3 {
		t.Errorf("sequence = %v, want [0.1 0.2 0.3]", seq)
	}

	v, err = Extract([]byte(actualDoc), "result.special")
	if err != nil {
		t.Fatal(err)
	}
	special := v.AsSequence()
	if !math.IsNaN(special[0]) || !math.IsInf(special[1], 1) || !math.IsInf(special[2], -1) {
		t.Errorf("special = %v, want [NaN +Inf -Inf]", special)
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		query   string
		wantErr string
	}{
		{"invalid JSON", `{"a":`, "a", "not valid JSON"},
		{"missing path", actualDoc, "result.missing", "not found"},
		{"string value", actualDoc, "result.label", `got string "fast"`},
		{"mixed array", actualDoc, "result.mixed", "[1]: expected number"},
		{"object value", actualDoc, "result", "got object"},
		{"bool value", `{"ok": true}`, "ok", "expected number"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Extract([]byte(tt.doc), tt.query)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestConform(t *testing.T) {
	t.Parallel()

	rect := neartest.Nested([][]float64{{1, 2}, {3, 4}})
	if got := Conform(rect, neartest.KindGrid).Kind(); got != neartest.KindGrid {
		t.Errorf("rectangular nested -> %v, want grid", got)
	}

	ragged := neartest.Nested([][]float64{{1}, {2, 3}})
	if got := Conform(ragged, neartest.KindGrid).Kind(); got != neartest.KindNested {
		t.Errorf("ragged nested -> %v, want nested", got)
	}

	empty := neartest.Sequence([]float64{})
	if got := Conform(empty, neartest.KindNested).Kind(); got != neartest.KindNested {
		t.Errorf("empty sequence -> %v, want nested", got)
	}

	scalar := neartest.Scalar(1.0)
	if got := Conform(scalar, neartest.KindSequence).Kind(); got != neartest.KindScalar {
		t.Errorf("scalar -> %v, want unchanged", got)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tol := 0.001
	tests := []struct {
		name    string
		fixture Fixture
		query   string
		output  string
	}{
		{
			name:    "scalar within fixture tolerance",
			fixture: Fixture{Name: "energy", Tolerance: &tol, Expected: neartest.Scalar(12.5)},
			output:  "",
		},
		{
			name:    "scalar outside default tolerance",
			fixture: Fixture{Name: "energy", Expected: neartest.Scalar(12.5)},
			output:  "FAILURE: energy\n\n",
		},
		{
			name:    "custom message",
			fixture: Fixture{Name: "v", Message: "velocity", Query: "result.velocity", Expected: neartest.Sequence([]float64{0.1, 0.2})},
			output:  "FAILURE: velocity Size mismatch.\n\n",
		},
		{
			name:    "grid from nested actual",
			fixture: Fixture{Name: "p", Query: "result.profile", Expected: gridValue(t, [][]float64{{1, 2}, {3.5, 4}})},
			output:  "",
		},
		{
			name:    "grid against ragged actual",
			fixture: Fixture{Name: "p", Query: "result.jagged", Expected: gridValue(t, [][]float64{{1, 2}, {3, 4}})},
			output:  "FAILURE: p Shape mismatch.\n\n",
		},
		{
			name:    "skipped",
			fixture: Fixture{Name: "energy", Skip: true, Expected: neartest.Scalar[float64](0)},
			output:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			c := neartest.New[float64](neartest.WithWriter(&buf))

			actual, err := Extract([]byte(actualDoc), tt.fixture.ActualQuery())
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			Run(c, &tt.fixture, actual, 1e-9)

			if buf.String() != tt.output {
				t.Errorf("output = %q, want %q", buf.String(), tt.output)
			}
			if c.Failed() != (tt.output != "") {
				t.Errorf("Failed() = %v, want %v", c.Failed(), tt.output != "")
			}
		})
	}
}

func gridValue(t *testing.T, rows [][]float64) neartest.Value[float64] {
	t.Helper()
	g, err := neartest.GridFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return neartest.GridValue(g)
}
