package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings read from NEARTEST_* environment variables.
// Unset variables leave the corresponding field nil or empty.
type EnvOverrides struct {
	Tolerance   *float64 `env:"NEARTEST_TOLERANCE"`
	Locations   *bool    `env:"NEARTEST_LOCATIONS"`
	Color       string   `env:"NEARTEST_COLOR"`
	FixturesDir string   `env:"NEARTEST_FIXTURES_DIR"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (*EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &o, nil
}

// ApplyEnv overrides cfg with any NEARTEST_* environment variables. Environment
// values take precedence over the config file, and command-line flags take
// precedence over both.
func ApplyEnv(cfg *Config) error {
	o, err := ParseEnv()
	if err != nil {
		return err
	}
	if err := ValidateColor(o.Color); err != nil {
		return fmt.Errorf("NEARTEST_COLOR: %w", err)
	}

	if o.Tolerance != nil {
		cfg.Tolerance = o.Tolerance
	}
	if o.Locations != nil {
		cfg.Locations = *o.Locations
	}
	if o.Color != "" {
		cfg.Color = o.Color
	}
	if o.FixturesDir != "" {
		applyFixturesDefaults(cfg)
		cfg.Fixtures.Directory = o.FixturesDir
	}
	return nil
}
