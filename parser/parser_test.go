package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/lexer"
	"github.com/stretchr/testify/require"
)

// parse parses the input and fails the test on any error.
func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := Parse(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

// parseWithErrors parses input that is expected to be faulty and returns
// the program alongside the collected errors.
func parseWithErrors(t *testing.T, input string) (*ast.Program, *Errors) {
	t.Helper()
	program, err := Parse(context.Background(), input)
	require.Error(t, err)
	require.NotNil(t, program)
	var parserErrs *Errors
	require.True(t, errors.As(err, &parserErrs))
	return program, parserErrs
}

func TestEmptyProgram(t *testing.T) {
	program := parse(t, "")
	require.Empty(t, program.Stmts)
	require.Nil(t, program.Tail)

	program = parse(t, " \t\n // just a comment\n")
	require.Empty(t, program.Stmts)
	require.Nil(t, program.Tail)
}

func TestProgramTail(t *testing.T) {
	program := parse(t, "let x = 5;\nx + 1")
	require.Len(t, program.Stmts, 1)
	require.NotNil(t, program.Tail)
	require.Equal(t, "(x + 1)", program.Tail.String())
}

func TestProgramWithoutTail(t *testing.T) {
	program := parse(t, "let x = 5;\nx + 1;")
	require.Len(t, program.Stmts, 2)
	require.Nil(t, program.Tail)
}

func TestArithmeticPrecedence(t *testing.T) {
	// ^ binds tighter than * which binds tighter than +.
	program := parse(t, "1 + 2 * 3 ^ 2")
	add, ok := program.Tail.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.OpAdd, add.Op)
	require.Equal(t, "1", add.X.String())

	mul, ok := add.Y.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.OpMultiply, mul.Op)
	require.Equal(t, "2", mul.X.String())

	exp, ok := mul.Y.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.OpExponent, exp.Op)
	require.Equal(t, "(3 ^ 2)", exp.String())
}

func TestPrecedenceStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3 ^ 2", "(1 + (2 * (3 ^ 2)))"},
		{"2 ^ 3 ^ 2", "((2 ^ 3) ^ 2)"}, // exponent associates left
		{"a + b - c", "((a + b) - c)"},
		{"a * b / c", "((a * b) / c)"},
		{"-a * b", "((-a) * b)"},
		{"!a == !b", "((!a) == (!b))"},
		{"a + b == c + d", "((a + b) == (c + d))"},
		{"a == b || c != d && e < f", "((a == b) || ((c != d) && (e < f)))"},
		{"a or b and c", "(a || (b && c))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"--a", "(-(-a))"},
		{"-a ^ 2", "((-a) ^ 2)"}, // prefix binds tighter than exponent
		{"a >= b <= c", "((a >= b) <= c)"},
	}
	for _, tt := range tests {
		program := parse(t, tt.input)
		require.NotNil(t, program.Tail, tt.input)
		require.Equal(t, tt.expected, program.Tail.String(), tt.input)
	}
}

func TestAssignmentAssociatesRight(t *testing.T) {
	program := parse(t, "a = b = c")
	outer, ok := program.Tail.(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "a", outer.Target.String())
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "b", inner.Target.String())
	require.Equal(t, "c", inner.Value.String())
	require.Equal(t, "(a = (b = c))", program.Tail.String())
}

func TestAssignmentOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.AssignOp
	}{
		{"a = 1", ast.OpAssign},
		{"a += 1", ast.OpAddAssign},
		{"a -= 1", ast.OpSubtractAssign},
		{"a *= 1", ast.OpMultiplyAssign},
		{"a /= 1", ast.OpDivideAssign},
		{"a ^= 1", ast.OpExponentAssign},
		{"a ||= 1", ast.OpOrAssign},
		{"a &&= 1", ast.OpAndAssign},
	}
	for _, tt := range tests {
		program := parse(t, tt.input)
		assign, ok := program.Tail.(*ast.Assign)
		require.True(t, ok, tt.input)
		require.Equal(t, tt.expected, assign.Op, tt.input)
	}
}

func TestAssignmentTargets(t *testing.T) {
	parse(t, "x = 1;")
	parse(t, "x.y = 1;")
	parse(t, "x[0] = 1;")
	parse(t, "a::b = 1;")

	_, errs := parseWithErrors(t, "1 + 2 = 3;")
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "invalid assignment target")
}

func TestSuffixChainAssociatesLeft(t *testing.T) {
	program := parse(t, "a.b[0](1, 2).c")
	prop, ok := program.Tail.(*ast.Property)
	require.True(t, ok)
	require.Equal(t, "c", prop.Attr.Name())

	call, ok := prop.X.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	index, ok := call.Fun.(*ast.Index)
	require.True(t, ok)
	require.Equal(t, "0", index.Index.String())

	inner, ok := index.X.(*ast.Property)
	require.True(t, ok)
	require.Equal(t, "a", inner.X.String())
	require.Equal(t, "b", inner.Attr.Name())
}

func TestOneBadStatementDoesNotPoisonTheRest(t *testing.T) {
	program, errs := parseWithErrors(t, "let x = ;\nlet y = 2;\ny + 1")
	require.Equal(t, 1, errs.Count())

	require.Len(t, program.Stmts, 2)
	bad, ok := program.Stmts[0].(*ast.Let)
	require.True(t, ok)
	require.IsType(t, &ast.BadExpr{}, bad.Value)

	good, ok := program.Stmts[1].(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "y", good.Name.Name())
	require.Equal(t, "2", good.Value.String())

	require.NotNil(t, program.Tail)
	require.Equal(t, "(y + 1)", program.Tail.String())
}

func TestRecoveryProducesBadStmt(t *testing.T) {
	program, errs := parseWithErrors(t, ") ) )\nlet y = 2;")
	require.True(t, errs.Count() >= 1)
	require.NotEmpty(t, program.Stmts)
	require.IsType(t, &ast.BadStmt{}, program.Stmts[0])

	last := program.Stmts[len(program.Stmts)-1]
	let, ok := last.(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "y", let.Name.Name())
}

func TestMissingTerminatorAfterBlockStatement(t *testing.T) {
	// Statements require ";" even when they end with "}".
	program, errs := parseWithErrors(t, "if a { 1; }\nlet x = 2;")
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "expected \";\"")
	require.Len(t, program.Stmts, 2)
	require.IsType(t, &ast.Let{}, program.Stmts[1])
}

func TestMaxErrorsStopsParsing(t *testing.T) {
	input := strings.Repeat("let x = ;\n", 30)
	_, errs := parseWithErrors(t, input)
	require.Equal(t, MaxErrors, errs.Count())
}

func TestMaxDepth(t *testing.T) {
	input := strings.Repeat("(", 60) + "1" + strings.Repeat(")", 60)
	_, err := Parse(context.Background(), input, WithMaxDepth(50))
	require.Error(t, err)
	var parserErrs *Errors
	require.True(t, errors.As(err, &parserErrs))
	require.Equal(t, 1, parserErrs.Count())
	require.Contains(t, parserErrs.First().Error(), "maximum expression depth")

	// The same input parses fine without the tight limit.
	parse(t, input)
}

func TestLexerErrorsAreCollected(t *testing.T) {
	program, errs := parseWithErrors(t, "let a = 1 ~;\nlet b = \"ok\";")
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "unexpected character")
	require.Len(t, program.Stmts, 2)
	b, ok := program.Stmts[1].(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "b", b.Name.Name())
}

func TestUnterminatedStringError(t *testing.T) {
	_, errs := parseWithErrors(t, "let a = \"oops")
	require.True(t, errs.Count() >= 1)
	require.Contains(t, errs.First().Error(), "unterminated string literal")
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	program, err := Parse(ctx, "let x = 1;\nlet y = 2;")
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, program)
}

func TestErrorPositionsAndSource(t *testing.T) {
	l := lexer.New("let a = 1;\nlet b = ;", lexer.WithFilename("main.boba"))
	p := New(l)
	_, err := p.Parse(context.Background())
	require.Error(t, err)

	errs := p.Errors()
	require.Len(t, errs, 1)
	e := errs[0]
	require.Equal(t, "syntax error", e.Type())
	require.Equal(t, "main.boba", e.File())
	require.Equal(t, 2, e.StartPosition().LineNumber())
	require.Equal(t, 9, e.StartPosition().ColumnNumber())
	require.Equal(t, "let b = ;", e.SourceCode())
}

func TestErrorsWrapper(t *testing.T) {
	_, errs := parseWithErrors(t, "let a = ;\nlet b = ;")
	require.Equal(t, 2, errs.Count())
	require.Contains(t, errs.Error(), "and 1 more errors")
	require.Len(t, errs.Unwrap(), 2)
	require.NotNil(t, errs.First())

	group := errs.Group()
	require.Error(t, group)
	require.Contains(t, group.Error(), "2 errors occurred")
}

func TestParserNeverReturnsNilProgram(t *testing.T) {
	inputs := []string{
		"", ";", "}", ")", "let", "fn", "#[", "#{", "if", "while {",
		"let x = ", "fn f(", "\"", "/*",
	}
	for _, input := range inputs {
		program, _ := Parse(context.Background(), input)
		require.NotNil(t, program, "input %q", input)
	}
}
