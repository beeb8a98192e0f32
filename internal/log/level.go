package log

import (
	"fmt"
	"strings"
)

// A Level is a logging level.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel // default level
	ErrorLevel
)

// String returns a lower-case ASCII representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	}

	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel parses a level (case is ignored) based on the ASCII representation of the log level.
// An empty string yields WarnLevel, which keeps a normal run silent on stderr.
func ParseLevel(text string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "debug", "verbose", "trace":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning", "":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}

	return Level(0), fmt.Errorf("unrecognized logging level: %q", text)
}
