// Package errors provides structured error types and exit codes for the neartest CLI.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Every check passed
	ExitCheckFailed = 1 // At least one check failed, or an unclassified runtime error
	ExitConfigError = 2 // Configuration or usage error (invalid config, unknown flag, etc.)
	ExitInputError  = 3 // Input error (unreadable file, invalid fixture, missing JSON path, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindInput
	KindNotFound
)

// Error is the base error type for the CLI.
type Error struct {
	Kind    ErrorKind
	Message string
	File    string // File path if applicable
	Fixture string // Fixture name if applicable
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	if e.Fixture != "" {
		return fmt.Sprintf("[%s] %s", e.Fixture, msg)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindInput, KindNotFound:
		return ExitInputError
	default:
		return ExitCheckFailed
	}
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates an input error for a file that could not be read or decoded.
func Input(file string, cause error) *Error {
	return &Error{
		Kind:    KindInput,
		Message: "invalid input",
		File:    file,
		Cause:   cause,
	}
}

// FixtureError creates an input error for a specific fixture.
func FixtureError(fixture, message string, cause error) *Error {
	return &Error{
		Kind:    KindInput,
		Fixture: fixture,
		Message: message,
		Cause:   cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if stderrors.Is(err, neartest.ErrTestFailed) {
		return ExitCheckFailed
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitCheckFailed
}
