// Package config provides configuration loading and validation for .neartest.json.
package config

// Config represents the complete .neartest.json configuration.
type Config struct {
	// Tolerance is the absolute tolerance for fixtures that do not set their own.
	Tolerance *float64 `json:"tolerance,omitempty"`

	// Locations appends the index of the first mismatching element to
	// element-mismatch diagnostics.
	Locations bool `json:"locations,omitempty"`

	// Color controls coloured output: "auto", "always" or "never".
	Color string `json:"color,omitempty"`

	Fixtures *FixturesConfig `json:"fixtures,omitempty"`
}

// FixturesConfig configures where fixtures are found.
type FixturesConfig struct {
	Directory string `json:"directory,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
