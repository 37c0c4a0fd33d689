package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/parser"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Check BobaScript files for syntax errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result *multierror.Error
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				result = multierror.Append(result, err)
				continue
			}

			start := time.Now()
			program, perr := parser.Parse(cmd.Context(), string(data),
				parser.WithFilename(path))

			nodes := 0
			for range ast.Preorder(program) {
				nodes++
			}
			logger.Debug().
				Str("file", path).
				Dur("elapsed", time.Since(start)).
				Int("nodes", nodes).
				Msg("checked file")

			if perr == nil {
				fmt.Printf("%s: ok\n", path)
				continue
			}
			var parserErrs *parser.Errors
			if !errors.As(perr, &parserErrs) {
				return perr
			}
			fmt.Fprint(os.Stderr, renderErrors(parserErrs.Errors()))
			result = multierror.Append(result, parserErrs.Group())
		}
		return result.ErrorOrNil()
	},
}
