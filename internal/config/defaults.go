package config

// Default configuration values.
const (
	DefaultFileName          = ".neartest.json"
	DefaultTolerance         = 1e-9
	DefaultColor             = ColorAuto
	DefaultFixturesDirectory = "fixtures"
	DefaultFixturesPattern   = "*"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Tolerance == nil {
		tol := DefaultTolerance
		cfg.Tolerance = &tol
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	applyFixturesDefaults(cfg)
}

func applyFixturesDefaults(cfg *Config) {
	if cfg.Fixtures == nil {
		cfg.Fixtures = &FixturesConfig{}
	}
	if cfg.Fixtures.Directory == "" {
		cfg.Fixtures.Directory = DefaultFixturesDirectory
	}
	if cfg.Fixtures.Pattern == "" {
		cfg.Fixtures.Pattern = DefaultFixturesPattern
	}
}
