package neartest

// Exit codes returned by the neartest CLI.
// These constants let scripts and wrappers check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates every check passed.
	ExitSuccess = 0

	// ExitFailure indicates at least one check failed (the checker escalated).
	ExitFailure = 1

	// ExitConfigError indicates a configuration or usage error (invalid config, unknown flag, etc.).
	ExitConfigError = 2

	// ExitInputError indicates an input error (unreadable or invalid fixture or actual file).
	ExitInputError = 3
)
