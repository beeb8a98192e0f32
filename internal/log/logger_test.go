package log

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantLines []string
		skipWords []string
	}{
		{
			name:      "debug shows everything",
			level:     DebugLevel,
			wantLines: []string{"debug 03:04:05.006 d", " info 03:04:05.006 i", " warn 03:04:05.006 w", "error 03:04:05.006 e"},
		},
		{
			name:      "warn hides debug and info",
			level:     WarnLevel,
			wantLines: []string{" warn 03:04:05.006 w", "error 03:04:05.006 e"},
			skipWords: []string{"debug", "info"},
		},
		{
			name:      "error only",
			level:     ErrorLevel,
			wantLines: []string{"error 03:04:05.006 e"},
			skipWords: []string{"debug", "info", "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := New(tt.level, WithOutput(&buf), WithColors(false), WithClock(fixedClock))

			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			for _, line := range tt.wantLines {
				assert.Contains(t, buf.String(), line+"\n")
			}

			for _, word := range tt.skipWords {
				assert.NotContains(t, buf.String(), word)
			}
		})
	}
}

func TestLogExtraValues(t *testing.T) {
	var buf bytes.Buffer

	l := New(DebugLevel, WithOutput(&buf), WithColors(false), WithClock(fixedClock))
	l.Debug("applied step", "upper", 3)

	assert.Equal(t, "debug 03:04:05.006 applied step (upper 3)\n", buf.String())
}

func TestLogColors(t *testing.T) {
	var buf bytes.Buffer

	l := New(ErrorLevel, WithOutput(&buf), WithColors(true), WithClock(fixedClock))
	l.Error("boom")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "boom")
}

func TestColorsEnabled(t *testing.T) {
	t.Run("force color wins", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "1")
		t.Setenv("NO_COLOR", "1")

		assert.True(t, ColorsEnabled(nil))
	})

	t.Run("no color", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "")
		require.NoError(t, os.Unsetenv("FORCE_COLOR"))
		t.Setenv("NO_COLOR", "1")

		assert.False(t, ColorsEnabled(os.Stderr))
	})

	t.Run("not a terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		require.NoError(t, os.Unsetenv("NO_COLOR"))
		t.Setenv("FORCE_COLOR", "")
		require.NoError(t, os.Unsetenv("FORCE_COLOR"))

		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer f.Close()

		assert.False(t, ColorsEnabled(f))
	})
}
