// Command tokmatch is a small demo CLI over the tokmatch engine: it
// tokenizes its input and runs the bundled jsonish grammar against it,
// printing the resulting value tree or reporting no match.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tokmatch/example/jsonish"
	"tokmatch/match"
	"tokmatch/token"
)

func main() {
	var (
		debug   bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:           "tokmatch [input]",
		Short:         "Tokenize and match input against the bundled jsonish grammar",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), input, debug, noColor)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "emit structured try_again trace logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored match/no-match output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tokmatch: %v\n", err)
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

func run(out io.Writer, input string, debug, noColor bool) error {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var opts []match.Option
	if debug {
		opts = append(opts, match.WithLogger(logger))
	}

	tokens, err := token.Tokenize(input, token.DefaultOptions())
	if err != nil {
		return fmt.Errorf("tokenizing input: %w", err)
	}

	result, ok := match.Parse(jsonish.Value, tokens, nil, opts...)
	useColor := !noColor && isatty.IsTerminal(os.Stdout.Fd())

	if !ok {
		fmt.Fprintln(out, colorize(useColor, "31", "no match"))
		return nil
	}
	fmt.Fprintln(out, colorize(useColor, "32", result.String()))
	return nil
}

func colorize(enabled bool, code, text string) string {
	if !enabled {
		return text
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, text)
}
