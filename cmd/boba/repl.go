package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobascript/boba/parser"
	"github.com/bobascript/boba/token"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse BobaScript code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boba_history")
}

func runRepl(cmd *cobra.Command) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	keywords := token.Keywords()
	line.SetCompleter(func(input string) []string {
		fields := strings.Fields(input)
		if len(fields) == 0 {
			return nil
		}
		last := fields[len(fields)-1]
		prefix := input[:len(input)-len(last)]
		var completions []string
		for _, word := range keywords {
			if strings.HasPrefix(word, last) {
				completions = append(completions, prefix+word)
			}
		}
		return completions
	})

	history := historyPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("BobaScript parser REPL. Type exit or press ctrl-d to quit.")
	for {
		input, err := line.Prompt(">> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			break
		}
		line.AppendHistory(input)

		program, perr := parser.Parse(cmd.Context(), input)
		if perr != nil {
			var parserErrs *parser.Errors
			if errors.As(perr, &parserErrs) {
				fmt.Print(renderErrors(parserErrs.Errors()))
			} else {
				fmt.Println(perr)
			}
			continue
		}
		writeTree(os.Stdout, program)
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}
