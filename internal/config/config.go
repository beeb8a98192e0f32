// Package config provides configuration management and validation for echo.
// It gathers the parsed command line and the environment into one value that
// the transform pipeline and the logger read, and validates it before any
// output is produced.
package config

import (
	"echo/internal/env"
	"echo/internal/errors"
	"echo/internal/log"
)

// Step names one case transformation.
type Step string

// Supported transformation steps. The order of this list is the order in
// which enabled steps are applied, whatever order the flags were given in.
const (
	StepUpper Step = "upper"
	StepLower Step = "lower"
	StepTitle Step = "title"
)

// AllSteps returns every step in application order.
func AllSteps() []Step { return []Step{StepUpper, StepLower, StepTitle} }

// Config holds the options of a single invocation. It is filled once by the
// argument parser and never mutated afterwards.
type Config struct {
	Text     string
	Upper    bool
	Lower    bool
	Title    bool
	LogLevel string
}

// LoadEnv copies settings supplied through the environment into the config.
func (c *Config) LoadEnv() {
	if v, ok := env.LogLevel.Lookup(); ok {
		c.LogLevel = v
	}
}

// Validate checks settings that the argument parser cannot check itself.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.NewConfigErrorWithArg(env.LogLevel.String(), err.Error(), err)
	}

	return nil
}

// Level returns the parsed log level, falling back to the default when the
// configured value is invalid. Call Validate first to surface that case.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}

	return lvl
}

// Enabled reports whether the given step was requested.
func (c *Config) Enabled(s Step) bool {
	switch s {
	case StepUpper:
		return c.Upper
	case StepLower:
		return c.Lower
	case StepTitle:
		return c.Title
	}

	return false
}

// Steps returns the requested steps in application order.
func (c *Config) Steps() []Step {
	var steps []Step
	for _, s := range AllSteps() {
		if c.Enabled(s) {
			steps = append(steps, s)
		}
	}
	return steps
}

// IsDebug determines if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.Level() == log.DebugLevel
}
