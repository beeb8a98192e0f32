// Package errors provides a hierarchical error system for echo invocations.
// It implements typed errors that can be inspected and handled differently
// based on their category, so the command layer can pick an exit code and
// a message format without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors an invocation can produce.
// Usage errors come from the command line itself, config errors from the
// environment, output errors from writing the result.
const (
	ErrTypeUsage  ErrorType = "usage"
	ErrTypeConfig ErrorType = "config"
	ErrTypeOutput ErrorType = "output"
)

// Exit codes returned to the shell for each error category.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// EchoError is the base error type that provides structured error information.
// Arg names the offending argument or variable when one is known.
type EchoError struct {
	Type    ErrorType
	Arg     string
	Message string
	Cause   error
}

func (e *EchoError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Arg, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *EchoError) Unwrap() error {
	return e.Cause
}

// Is implements error identity checking so that errors.Is matches any
// EchoError of the same category.
func (e *EchoError) Is(target error) bool {
	t, ok := target.(*EchoError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// UsageError represents a malformed command line: a missing or extra
// positional argument, or a flag the parser does not recognise.
// Its message is what gets shown to the user after "error:".
type UsageError struct {
	*EchoError
}

// NewUsageError creates a command-line usage error.
func NewUsageError(message string, cause error) *UsageError {
	return &UsageError{
		EchoError: &EchoError{
			Type:    ErrTypeUsage,
			Message: message,
			Cause:   cause,
		},
	}
}

// ConfigError represents invalid runtime settings, such as an unknown
// log level supplied through the environment.
type ConfigError struct {
	*EchoError
}

// NewConfigErrorWithArg creates a configuration error tied to a named
// setting, so the message tells the user which variable to fix.
func NewConfigErrorWithArg(arg, message string, cause error) *ConfigError {
	return &ConfigError{
		EchoError: &EchoError{
			Type:    ErrTypeConfig,
			Arg:     arg,
			Message: message,
			Cause:   cause,
		},
	}
}

// OutputError represents a failure to write the transformed text.
type OutputError struct {
	*EchoError
}

// NewOutputError creates an output error wrapping the writer's failure.
func NewOutputError(message string, cause error) *OutputError {
	return &OutputError{
		EchoError: &EchoError{
			Type:    ErrTypeOutput,
			Message: message,
			Cause:   cause,
		},
	}
}

// IsUsage reports whether err, or anything it wraps, is a usage error.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ExitCode maps an error to the process exit code. A nil error is success,
// usage errors follow the conventional parser code 2, everything else is 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsage(err):
		return ExitUsage
	default:
		return ExitError
	}
}
