package main

import (
	"fmt"
	"os"

	"github.com/bobascript/boba/lexer"
	"github.com/bobascript/boba/token"
	"github.com/spf13/cobra"
)

var tokensCode string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for BobaScript code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, filename, err := readSource(args, tokensCode)
		if err != nil {
			return err
		}
		l := lexer.New(source, lexer.WithFilename(filename))
		faults := 0
		for {
			tok, err := l.Next()
			if err != nil {
				faults++
				fmt.Fprintf(os.Stderr, "%d:%d: %v\n",
					tok.StartPosition.LineNumber(),
					tok.StartPosition.ColumnNumber(), err)
				continue
			}
			if tok.Type == token.EOF {
				break
			}
			fmt.Printf("%d:%d\t%-10s %q\n",
				tok.StartPosition.LineNumber(),
				tok.StartPosition.ColumnNumber(),
				string(tok.Type), tok.Literal)
		}
		if faults > 0 {
			return fmt.Errorf("found %d lexical errors", faults)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensCode, "code", "c", "",
		"tokenize the given code instead of a file")
}
