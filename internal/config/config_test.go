package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echo/internal/errors"
	"echo/internal/log"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "defaults",
			config:      Config{Text: "hello"},
			expectError: false,
		},
		{
			name:        "empty text is fine",
			config:      Config{Text: "", Upper: true},
			expectError: false,
		},
		{
			name:        "debug level",
			config:      Config{Text: "x", LogLevel: "debug"},
			expectError: false,
		},
		{
			name:        "unknown level",
			config:      Config{Text: "x", LogLevel: "loud"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				require.Error(t, err)

				var ce *errors.ConfigError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, "ECHO_LOG_LEVEL", ce.Arg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   []Step
	}{
		{name: "none", config: Config{}, want: nil},
		{name: "upper", config: Config{Upper: true}, want: []Step{StepUpper}},
		{name: "title and upper", config: Config{Title: true, Upper: true}, want: []Step{StepUpper, StepTitle}},
		{
			name:   "all three",
			config: Config{Lower: true, Title: true, Upper: true},
			want:   []Step{StepUpper, StepLower, StepTitle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.Steps())
		})
	}
}

func TestEnabled(t *testing.T) {
	c := Config{Lower: true}

	assert.False(t, c.Enabled(StepUpper))
	assert.True(t, c.Enabled(StepLower))
	assert.False(t, c.Enabled(StepTitle))
	assert.False(t, c.Enabled(Step("reverse")))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ECHO_LOG_LEVEL", "debug")

	c := Config{Text: "x"}
	c.LoadEnv()

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, log.DebugLevel, c.Level())
	assert.True(t, c.IsDebug())
}

func TestLevelFallback(t *testing.T) {
	c := Config{LogLevel: "nope"}

	assert.Equal(t, log.WarnLevel, c.Level())
	assert.False(t, c.IsDebug())
}
