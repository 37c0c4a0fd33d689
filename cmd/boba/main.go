// Command boba provides tooling around the BobaScript front end: it can
// parse code and print the AST, check files for syntax errors, dump the
// token stream, and run an interactive parsing REPL.
package main

import (
	"fmt"
	"io"
	"os"

	berrors "github.com/bobascript/boba/errors"
	"github.com/bobascript/boba/parser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "boba",
	Short:         "Tools for working with BobaScript source code",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: noColor,
		}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
	rootCmd.AddCommand(astCmd, checkCmd, tokensCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readSource resolves the input for commands accepting [file], a --code
// flag value, or piped stdin. It returns the source text and the name to
// attribute it to in diagnostics.
func readSource(args []string, code string) (string, string, error) {
	if code != "" {
		return code, "", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "", nil
}

// renderErrors formats parser errors as terminal diagnostics.
func renderErrors(errs []parser.ParserError) string {
	f := berrors.NewFormatter(!noColor)
	formatted := make([]*berrors.FormattedError, 0, len(errs))
	for _, e := range errs {
		fe := &berrors.FormattedError{
			Kind:     e.Type(),
			Message:  e.Message(),
			Filename: e.File(),
			Line:     e.StartPosition().LineNumber(),
			Column:   e.StartPosition().ColumnNumber(),
		}
		if e.EndPosition().Line == e.StartPosition().Line {
			fe.EndColumn = e.EndPosition().ColumnNumber()
		}
		if src := e.SourceCode(); src != "" {
			fe.SourceLines = []berrors.SourceLineEntry{
				{Number: fe.Line, Text: src, IsMain: true},
			}
		}
		formatted = append(formatted, fe)
	}
	return f.FormatMultiple(formatted)
}
