package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	echoerrors "echo/internal/errors"
)

// expandAbbreviations rewrites long options given as a unique prefix
// ("--up") to their full name ("--upper"). Exact names, unknown prefixes and
// everything after a "--" terminator are left for the flag parser.
func expandAbbreviations(flags *pflag.FlagSet, args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...), nil
		}

		if !strings.HasPrefix(arg, "--") {
			expanded = append(expanded, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if name == "" || flags.Lookup(name) != nil {
			expanded = append(expanded, arg)
			continue
		}

		var matches []string

		flags.VisitAll(func(f *pflag.Flag) {
			if strings.HasPrefix(f.Name, name) {
				matches = append(matches, "--"+f.Name)
			}
		})

		switch len(matches) {
		case 0:
			expanded = append(expanded, arg)
		case 1:
			if hasValue {
				expanded = append(expanded, matches[0]+"="+value)
			} else {
				expanded = append(expanded, matches[0])
			}
		default:
			return nil, echoerrors.NewUsageError(
				fmt.Sprintf("ambiguous option: %s could match %s", "--"+name, strings.Join(matches, ", ")), nil)
		}
	}

	return expanded, nil
}
