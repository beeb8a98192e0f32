// Package transform provides the case-transformation pipeline for echo.
// It runs the input text through a fixed chain of middleware, one per case
// step, where every enabled step overwrites the result of the previous one.
package transform

import (
	"io"

	"echo/internal/config"
	"echo/internal/errors"
)

// Result is the outcome of running one text through the pipeline.
type Result struct {
	Input   string
	Output  string
	Applied []config.Step
}

// Middleware defines a processing step in the transform pipeline.
type Middleware func(ProcessContext) ProcessContext

// ProcessContext carries state through the transform pipeline.
type ProcessContext struct {
	Config *config.Config
	Text   string
	Result *Result
}

// Engine orchestrates case transformations using a middleware pipeline.
type Engine struct {
	config     *config.Config
	middleware []Middleware
}

// NewEngine creates an engine with the standard pipeline: upper, then lower,
// then title. Each middleware is a no-op unless its step is enabled in cfg.
func NewEngine(cfg *config.Config) *Engine {
	engine := &Engine{
		config:     cfg,
		middleware: []Middleware{},
	}

	engine.Use(stepMiddleware(config.StepUpper, Upper))
	engine.Use(stepMiddleware(config.StepLower, Lower))
	engine.Use(stepMiddleware(config.StepTitle, Title))

	return engine
}

// Use appends a middleware to the end of the pipeline.
func (e *Engine) Use(middleware Middleware) {
	e.middleware = append(e.middleware, middleware)
}

// Process runs text through every middleware in order and returns the result.
// It never fails: case mapping is total over all strings.
func (e *Engine) Process(text string) *Result {
	ctx := ProcessContext{
		Config: e.config,
		Text:   text,
		Result: &Result{Input: text},
	}

	for _, mw := range e.middleware {
		ctx = mw(ctx)
	}

	ctx.Result.Output = ctx.Text

	return ctx.Result
}

func stepMiddleware(step config.Step, fn func(string) string) Middleware {
	return func(ctx ProcessContext) ProcessContext {
		if !ctx.Config.Enabled(step) {
			return ctx
		}

		ctx.Text = fn(ctx.Text)
		ctx.Result.Applied = append(ctx.Result.Applied, step)

		return ctx
	}
}

// Write prints the transformed text followed by a single newline.
func Write(w io.Writer, result *Result) error {
	if _, err := io.WriteString(w, result.Output+"\n"); err != nil {
		return errors.NewOutputError("failed to write result", err)
	}
	return nil
}
