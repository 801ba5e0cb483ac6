package config

import (
	"fmt"
	"path/filepath"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := ValidateColor(cfg.Color); err != nil {
		return nil, err
	}

	if cfg.Fixtures != nil && cfg.Fixtures.Pattern != "" {
		if _, err := filepath.Match(cfg.Fixtures.Pattern, ""); err != nil {
			return nil, &ValidationError{
				Field:   "fixtures.pattern",
				Message: fmt.Sprintf("invalid glob %q: %v", cfg.Fixtures.Pattern, err),
			}
		}
	}

	if cfg.Tolerance != nil && *cfg.Tolerance < 0 {
		warnings = append(warnings, fmt.Sprintf("tolerance %g is negative; every check will fail", *cfg.Tolerance))
	}

	return warnings, nil
}

// ValidateColor checks that mode is a known colour mode. Empty means the default.
func ValidateColor(mode string) error {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return &ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, mode),
		}
	}
}
