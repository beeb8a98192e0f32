// Package cmd implements the command-line interface for echo.
// It parses the invocation into a config.Config, runs the transform pipeline
// and prints the result, mapping failures to exit codes.
package cmd

import (
	"io"
	"os"

	"echo/internal/config"
	"echo/internal/log"
	"echo/internal/transform"
)

func executeEcho(out, diag io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(cfg.Level(), log.WithOutput(diag), log.WithColors(colorsFor(diag)))

	if cfg.IsDebug() {
		logger.Debug("requested steps", cfg.Steps())
	}

	result := transform.NewEngine(cfg).Process(cfg.Text)

	if cfg.IsDebug() {
		for _, step := range result.Applied {
			logger.Debug("applied step", step)
		}
	}

	if len(result.Applied) == 0 {
		logger.Info("no transformation requested, echoing text unchanged")
	}

	return transform.Write(out, result)
}

func colorsFor(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return log.ColorsEnabled(f)
	}
	return false
}
