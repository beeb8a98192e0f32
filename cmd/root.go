package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"echo/internal/config"
	echoerrors "echo/internal/errors"
)

const (
	programName = "echo"
	description = "Perform transformation on input text."

	textArg  = "text"
	textHelp = "text to be manipulated"
)

// newRootCmd builds the command surface for a single invocation and binds
// every switch to cfg. A fresh command is built per run so flag values never
// leak from one invocation to the next.
func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                   programName,
		Short:                 description,
		Args:                  exactlyOneText,
		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Text = args[0]
			return executeEcho(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false

	// registered before the others so that help lists it first
	flags.BoolP("help", "h", false, "show this help message and exit")
	flags.BoolVarP(&cfg.Upper, "upper", "u", false, "convert text to uppercase")
	flags.BoolVarP(&cfg.Lower, "lower", "l", false, "convert text to lowercase")
	flags.BoolVarP(&cfg.Title, "title", "t", false, "convert text to titlecase")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return echoerrors.NewUsageError(err.Error(), err)
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_ = writeHelp(cmd.OutOrStdout(), cmd)
	})
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		return writeUsage(cmd.ErrOrStderr(), cmd)
	})

	return rootCmd
}

func exactlyOneText(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return echoerrors.NewUsageError("the following arguments are required: "+textArg, nil)
	case len(args) > 1:
		return echoerrors.NewUsageError(fmt.Sprintf("unrecognized arguments: %s", joinArgs(args[1:])), nil)
	}
	return nil
}

// Run executes one invocation with the given arguments (without the program
// name) and returns the process exit code. The transformed text goes to
// stdout; usage errors and diagnostics go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg := &config.Config{}
	cfg.LoadEnv()

	rootCmd := newRootCmd(cfg)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := dispatch(rootCmd, args)
	if err == nil {
		return echoerrors.ExitOK
	}

	var ue *echoerrors.UsageError
	if errors.As(err, &ue) {
		_ = writeUsage(stderr, rootCmd)
		fmt.Fprintf(stderr, "%s: error: %s\n", rootCmd.Name(), ue.Message)
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
	}

	return echoerrors.ExitCode(err)
}

// dispatch parses args and runs the command without cobra's Execute, which
// would route a text of "__complete" to its hidden shell completion command.
func dispatch(cmd *cobra.Command, args []string) error {
	args, err := expandAbbreviations(cmd.Flags(), args)
	if err != nil {
		return err
	}

	if err := cmd.ParseFlags(args); err != nil {
		return cmd.FlagErrorFunc()(cmd, err)
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		cmd.HelpFunc()(cmd, args)
		return nil
	}

	positional := cmd.Flags().Args()
	if err := cmd.ValidateArgs(positional); err != nil {
		return err
	}

	return cmd.RunE(cmd, positional)
}

// Execute runs the root command against the process arguments and exits
// with the resulting code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
