package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidFull(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{
		"tolerance": 1e-6,
		"locations": true,
		"color": "never",
		"fixtures": {"directory": "testdata", "pattern": "*.yaml"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tolerance == nil || *cfg.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %v, want 1e-6", cfg.Tolerance)
	}
	if !cfg.Locations {
		t.Error("Locations = false, want true")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.Fixtures.Directory != "testdata" || cfg.Fixtures.Pattern != "*.yaml" {
		t.Errorf("Fixtures = %+v", cfg.Fixtures)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil ||
		!strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("missing file error = %v", err)
	}

	path := writeConfig(t, `{"tolerance": `)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("malformed file error = %v", err)
	}
}

func TestLoadAndValidate_AppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"locations": true}`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if *cfg.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", *cfg.Tolerance, DefaultTolerance)
	}
	if cfg.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", cfg.Color, DefaultColor)
	}
	if cfg.Fixtures.Directory != DefaultFixturesDirectory {
		t.Errorf("Fixtures.Directory = %q, want %q", cfg.Fixtures.Directory, DefaultFixturesDirectory)
	}
	if cfg.Fixtures.Pattern != DefaultFixturesPattern {
		t.Errorf("Fixtures.Pattern = %q, want %q", cfg.Fixtures.Pattern, DefaultFixturesPattern)
	}
}

func TestDefaults_ZeroToleranceIsKept(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"tolerance": 0}`)

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if *cfg.Tolerance != 0 {
		t.Errorf("Tolerance = %v, want explicit 0 to be kept", *cfg.Tolerance)
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{
		"$schema": "./schema/config.schema.json",
		"tolerance": -1,
		"extra": 1,
		"fixtures": {"dir": "x"}
	}`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("cfg = nil")
	}

	want := []string{
		`unknown field "extra" at root level (ignored)`,
		`unknown field "dir" in fixtures (ignored)`,
		"tolerance -1 is negative; every check will fail",
	}
	if strings.Join(warnings, "\n") != strings.Join(want, "\n") {
		t.Errorf("warnings = %q, want %q", warnings, want)
	}
}

func TestLoadAndValidate_SchemaError(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"color": "sometimes"}`)

	_, _, err := LoadAndValidate(path)
	if err == nil || !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %v, want schema validation failure", err)
	}
}

func TestLoadAndValidate_BadPattern(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"fixtures": {"pattern": "["}}`)

	_, _, err := LoadAndValidate(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != "fixtures.pattern" {
		t.Errorf("Field = %q, want fixtures.pattern", verr.Field)
	}
}

func TestLoadOptional(t *testing.T) {
	t.Parallel()

	cfg, warnings, err := LoadOptional(filepath.Join(t.TempDir(), DefaultFileName))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if *cfg.Tolerance != DefaultTolerance || cfg.Fixtures.Directory != DefaultFixturesDirectory {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	path := writeConfig(t, `{"locations": true}`)
	cfg, _, err = LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if !cfg.Locations {
		t.Error("Locations = false, want true from file")
	}
}

func TestValidateColor(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", ColorAuto, ColorAlways, ColorNever} {
		if err := ValidateColor(mode); err != nil {
			t.Errorf("ValidateColor(%q) error = %v", mode, err)
		}
	}
	err := ValidateColor("rainbow")
	if err == nil || !strings.Contains(err.Error(), `color: must be`) {
		t.Errorf("ValidateColor(rainbow) error = %v", err)
	}
}

func TestDetectUnknownFields_InvalidJSON(t *testing.T) {
	t.Parallel()
	warnings := detectUnknownFields([]byte(`[`))
	if len(warnings) != 1 || !strings.HasPrefix(warnings[0], "internal:") {
		t.Errorf("warnings = %v, want internal warning", warnings)
	}
}
