package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type helpRow struct {
	invocation string
	help       string
}

func usageLine(cmd *cobra.Command) string {
	var b strings.Builder

	b.WriteString("usage: ")
	b.WriteString(cmd.Name())

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			b.WriteString(" [-" + f.Shorthand + "]")
		} else {
			b.WriteString(" [--" + f.Name + "]")
		}
	})

	b.WriteString(" " + textArg)

	return b.String()
}

func writeUsage(w io.Writer, cmd *cobra.Command) error {
	_, err := fmt.Fprintln(w, usageLine(cmd))
	return err
}

// writeHelp renders the full help screen. Its text is pinned by
// testdata/USAGE, so any change here must update that file too.
func writeHelp(w io.Writer, cmd *cobra.Command) error {
	positional := []helpRow{{invocation: textArg, help: textHelp}}

	var options []helpRow

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		invocation := "--" + f.Name
		if f.Shorthand != "" {
			invocation = "-" + f.Shorthand + ", " + invocation
		}
		options = append(options, helpRow{invocation: invocation, help: f.Usage})
	})

	width := 0
	for _, row := range append(append([]helpRow{}, positional...), options...) {
		if len(row.invocation) > width {
			width = len(row.invocation)
		}
	}
	width += 2

	var buf bytes.Buffer

	buf.WriteString(usageLine(cmd) + "\n\n")
	buf.WriteString(cmd.Short + "\n\n")

	buf.WriteString("positional arguments:\n")
	writeRows(&buf, positional, width)

	buf.WriteString("\noptions:\n")
	writeRows(&buf, options, width)

	_, err := buf.WriteTo(w)
	return err
}

func writeRows(buf *bytes.Buffer, rows []helpRow, width int) {
	for _, row := range rows {
		fmt.Fprintf(buf, "  %-*s%s\n", width, row.invocation, row.help)
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
