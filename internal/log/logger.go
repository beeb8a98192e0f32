// Package log provides levelled diagnostic logging for echo invocations.
// Every message goes to a single diagnostic writer (normally standard error)
// so that standard output carries nothing but the transformed text.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"echo/internal/env"
)

// Logger is the logging surface the rest of the application depends on.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, v ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, v ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, v ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, v ...any)
}

// Option modifies a Log during construction.
type Option func(*Log)

// WithOutput sets the diagnostic writer.
func WithOutput(w io.Writer) Option { return func(l *Log) { l.out = w } }

// WithColors forces colored output on or off.
func WithColors(enabled bool) Option { return func(l *Log) { l.colors = enabled } }

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option { return func(l *Log) { l.now = now } }

// Log writes messages at or above its level to a single writer.
type Log struct {
	mu     sync.Mutex
	out    io.Writer
	lvl    Level
	colors bool
	now    func() time.Time
}

var _ Logger = (*Log)(nil)

// New creates a Log with the specified level writing to os.Stderr. Colors are
// enabled when stderr is a terminal, unless the environment says otherwise.
func New(lvl Level, opts ...Option) *Log {
	var l = &Log{
		out:    os.Stderr,
		lvl:    lvl,
		colors: ColorsEnabled(os.Stderr),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// ColorsEnabled decides whether output written to f should carry ANSI colors.
// FORCE_COLOR wins over NO_COLOR, which wins over terminal detection.
func ColorsEnabled(f *os.File) bool {
	if _, ok := env.ForceColors.Lookup(); ok {
		return true
	}

	if _, ok := env.NoColors.Lookup(); ok {
		return false
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}

const (
	debugPrefix = "debug"
	infoPrefix  = " info"
	warnPrefix  = " warn"
	errorPrefix = "error"
)

func (l *Log) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)

	if l.colors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}

func (l *Log) write(prefix string, attrs []color.Attribute, msg string, extra ...any) {
	var buf bytes.Buffer

	buf.WriteString(l.paint(prefix, attrs...))
	buf.WriteRune(' ')
	buf.WriteString(l.paint(l.now().Format("15:04:05.000"), color.FgWhite))
	buf.WriteRune(' ')
	buf.WriteString(msg)

	if len(extra) > 0 {
		var extraBuf bytes.Buffer

		extraBuf.WriteRune('(')

		for i, v := range extra {
			extraBuf.WriteString(fmt.Sprint(v))

			if i < len(extra)-1 {
				extraBuf.WriteRune(' ')
			}
		}

		extraBuf.WriteRune(')')

		buf.WriteRune(' ')
		buf.WriteString(l.paint(extraBuf.String(), color.Faint))
	}

	buf.WriteRune('\n')

	l.mu.Lock()
	_, _ = buf.WriteTo(l.out)
	l.mu.Unlock()
}

// Debug logs a message at DebugLevel.
func (l *Log) Debug(msg string, v ...any) {
	if DebugLevel >= l.lvl {
		l.write(debugPrefix, []color.Attribute{color.FgMagenta}, msg, v...)
	}
}

// Info logs a message at InfoLevel.
func (l *Log) Info(msg string, v ...any) {
	if InfoLevel >= l.lvl {
		l.write(infoPrefix, []color.Attribute{color.FgBlue}, msg, v...)
	}
}

// Warn logs a message at WarnLevel.
func (l *Log) Warn(msg string, v ...any) {
	if WarnLevel >= l.lvl {
		l.write(warnPrefix, []color.Attribute{color.FgHiYellow, color.Bold}, msg, v...)
	}
}

// Error logs a message at ErrorLevel.
func (l *Log) Error(msg string, v ...any) {
	if ErrorLevel >= l.lvl {
		l.write(errorPrefix, []color.Attribute{color.FgHiRed, color.Bold}, msg, v...)
	}
}
