package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/parser"
	"github.com/spf13/cobra"
)

var (
	astCode   string
	astOutput string
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse BobaScript code and print the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, filename, err := readSource(args, astCode)
		if err != nil {
			return err
		}

		start := time.Now()
		program, perr := parser.Parse(cmd.Context(), source,
			parser.WithFilename(filename))
		logger.Debug().
			Dur("elapsed", time.Since(start)).
			Int("statements", len(program.Stmts)).
			Bool("has_tail", program.Tail != nil).
			Msg("parse completed")

		var parserErrs *parser.Errors
		if perr != nil {
			if !errors.As(perr, &parserErrs) {
				return perr
			}
			fmt.Fprint(os.Stderr, renderErrors(parserErrs.Errors()))
		}

		switch astOutput {
		case "json":
			data, err := json.MarshalIndent(nodeToJSON(program), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case "text":
			writeTree(os.Stdout, program)
		default:
			return fmt.Errorf("unknown output format: %q", astOutput)
		}

		if parserErrs != nil {
			return fmt.Errorf("found %d parse errors", parserErrs.Count())
		}
		return nil
	},
}

func init() {
	astCmd.Flags().StringVarP(&astCode, "code", "c", "",
		"parse the given code instead of a file")
	astCmd.Flags().StringVarP(&astOutput, "output", "o", "text",
		"output format (text or json)")
}

// jsonNode is the JSON shape of one AST node.
type jsonNode struct {
	Type     string      `json:"type"`
	Value    string      `json:"value,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// nodeToJSON converts a tree of AST nodes to jsonNodes.
func nodeToJSON(root ast.Node) *jsonNode {
	var result *jsonNode
	var stack []*jsonNode
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				result = top
			}
			return true
		}
		jn := &jsonNode{Type: nodeTypeName(n), Value: nodeValue(n)}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, jn)
		}
		stack = append(stack, jn)
		return true
	})
	return result
}

// writeTree prints the AST as an indented tree, one node per line.
func writeTree(w io.Writer, root ast.Node) {
	depth := 0
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			depth--
			return true
		}
		label := nodeTypeName(n)
		if value := nodeValue(n); value != "" {
			label += " " + value
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label)
		depth++
		return true
	})
}

func nodeTypeName(n ast.Node) string {
	return reflect.TypeOf(n).Elem().Name()
}

// nodeValue returns a short summary of the node's own data, excluding
// anything represented by its children.
func nodeValue(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Ident:
		return v.String()
	case *ast.Number:
		return v.Literal
	case *ast.String:
		return fmt.Sprintf("%q", v.Value)
	case *ast.Bool:
		return v.Literal
	case *ast.Infix:
		return string(v.Op)
	case *ast.Prefix:
		return string(v.Op)
	case *ast.Assign:
		return string(v.Op)
	case *ast.Record:
		names := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			names = append(names, f.Name)
		}
		return strings.Join(names, ",")
	}
	return ""
}
