package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoerrors "echo/internal/errors"
)

func TestExpandAbbreviations(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolP("upper", "u", false, "")
	flags.BoolP("update", "", false, "")
	flags.BoolP("title", "t", false, "")

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{name: "unique prefix", args: []string{"--ti", "x"}, want: []string{"--title", "x"}},
		{name: "exact name", args: []string{"--upper", "x"}, want: []string{"--upper", "x"}},
		{name: "prefix with value", args: []string{"--tit=false", "x"}, want: []string{"--title=false", "x"}},
		{name: "short flags untouched", args: []string{"-tu", "x"}, want: []string{"-tu", "x"}},
		{name: "unknown left to parser", args: []string{"--shout", "x"}, want: []string{"--shout", "x"}},
		{name: "after terminator", args: []string{"--", "--ti"}, want: []string{"--", "--ti"}},
		{name: "ambiguous", args: []string{"--up", "x"}, wantErr: "ambiguous option: --up could match --upper, --update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandAbbreviations(flags, tt.args)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, echoerrors.IsUsage(err))

				var ue *echoerrors.UsageError
				require.ErrorAs(t, err, &ue)
				assert.Equal(t, tt.wantErr, ue.Message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
