package parser

import (
	"testing"

	"github.com/bobascript/boba/ast"
	"github.com/stretchr/testify/require"
)

func TestIfExpression(t *testing.T) {
	program := parse(t, "if x < 10 { 1 } else { 2 }")
	cond, ok := program.Tail.(*ast.If)
	require.True(t, ok)
	require.Equal(t, "(x < 10)", cond.Cond.String())
	require.Equal(t, "1", cond.Consequence.Tail.String())
	alt, ok := cond.Alternative.(*ast.Block)
	require.True(t, ok)
	require.Equal(t, "2", alt.Tail.String())
}

func TestIfWithoutElse(t *testing.T) {
	program := parse(t, "if ready { go_time(); }")
	cond := program.Tail.(*ast.If)
	require.Nil(t, cond.Alternative)
	require.Len(t, cond.Consequence.Stmts, 1)
	require.Nil(t, cond.Consequence.Tail)
}

func TestElseIfChainNestsInElseSlot(t *testing.T) {
	program := parse(t, "if a { 1 } else if b { 2 } else if c { 3 } else { 4 }")
	first := program.Tail.(*ast.If)
	require.Equal(t, "a", first.Cond.String())

	second, ok := first.Alternative.(*ast.If)
	require.True(t, ok)
	require.Equal(t, "b", second.Cond.String())

	third, ok := second.Alternative.(*ast.If)
	require.True(t, ok)
	require.Equal(t, "c", third.Cond.String())

	last, ok := third.Alternative.(*ast.Block)
	require.True(t, ok)
	require.Equal(t, "4", last.Tail.String())
}

func TestIfAsOperand(t *testing.T) {
	program := parse(t, "let x = 1 + if a { 2 } else { 3 };")
	let := program.Stmts[0].(*ast.Let)
	sum, ok := let.Value.(*ast.Infix)
	require.True(t, ok)
	require.IsType(t, &ast.If{}, sum.Y)
}

func TestWhileExpression(t *testing.T) {
	program := parse(t, "while i < 3 { i = i + 1; }")
	loop, ok := program.Tail.(*ast.While)
	require.True(t, ok)
	require.Equal(t, "(i < 3)", loop.Cond.String())
	require.Len(t, loop.Body, 1)
	require.IsType(t, &ast.ExprStmt{}, loop.Body[0])
}

func TestWhileBodyRejectsTailExpression(t *testing.T) {
	_, errs := parseWithErrors(t, "while a { 1 + 2 }")
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "loop body does not produce a value")
}

func TestWhileValueComesFromBreak(t *testing.T) {
	program := parse(t, "let r = while true { break 7; };")
	let := program.Stmts[0].(*ast.Let)
	loop, ok := let.Value.(*ast.While)
	require.True(t, ok)
	br := loop.Body[0].(*ast.Break)
	require.Equal(t, "7", br.Value.String())
}

func TestLogExpression(t *testing.T) {
	program := parse(t, `log("hello");`)
	stmt := program.Stmts[0].(*ast.ExprStmt)
	lg, ok := stmt.X.(*ast.Log)
	require.True(t, ok)
	require.Equal(t, `"hello"`, lg.X.String())
}

func TestLogNestsInExpressions(t *testing.T) {
	program := parse(t, "1 + log(2)")
	sum := program.Tail.(*ast.Infix)
	require.IsType(t, &ast.Log{}, sum.Y)
	require.Equal(t, "(1 + log(2))", sum.String())
}

func TestLogRequiresParens(t *testing.T) {
	_, errs := parseWithErrors(t, "log 1;")
	require.True(t, errs.Count() >= 1)
	require.Contains(t, errs.First().Error(), "log expression")
}

func TestCallArguments(t *testing.T) {
	tests := []struct {
		input string
		args  []string
	}{
		{"f()", []string{}},
		{"f(1)", []string{"1"}},
		{"f(1, a + 2, #[3])", []string{"1", "(a + 2)", "#[3]"}},
		{"f(1, 2,)", []string{"1", "2"}},
	}
	for _, tt := range tests {
		program := parse(t, tt.input)
		call, ok := program.Tail.(*ast.Call)
		require.True(t, ok, tt.input)
		require.Len(t, call.Args, len(tt.args), tt.input)
		for i, s := range tt.args {
			require.Equal(t, s, call.Args[i].String(), tt.input)
		}
	}
}

func TestCallOnPathAndProperty(t *testing.T) {
	program := parse(t, "std::io::print(msg)")
	call := program.Tail.(*ast.Call)
	ident, ok := call.Fun.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "std::io::print", ident.String())

	program = parse(t, "obj.method(1)[2]")
	index := program.Tail.(*ast.Index)
	call, ok = index.X.(*ast.Call)
	require.True(t, ok)
	require.IsType(t, &ast.Property{}, call.Fun)
}

func TestPrefixExpressions(t *testing.T) {
	program := parse(t, "!ok")
	not := program.Tail.(*ast.Prefix)
	require.Equal(t, ast.OpNot, not.Op)

	program = parse(t, "-5")
	neg := program.Tail.(*ast.Prefix)
	require.Equal(t, ast.OpNegate, neg.Op)
	require.Equal(t, "5", neg.X.String())
}

func TestKeywordAndSymbolLogicalOperators(t *testing.T) {
	a := parse(t, "a || b && c")
	b := parse(t, "a or b and c")
	require.Equal(t, a.Tail.String(), b.Tail.String())

	infix := b.Tail.(*ast.Infix)
	require.Equal(t, ast.OpOr, infix.Op)
}

func TestBlockExpressionStatement(t *testing.T) {
	program := parse(t, "{ log(1); };")
	require.Len(t, program.Stmts, 1)
	stmt := program.Stmts[0].(*ast.ExprStmt)
	require.IsType(t, &ast.Block{}, stmt.X)
}

func TestComparisonOperators(t *testing.T) {
	tests := []struct {
		input string
		op    ast.BinaryOp
	}{
		{"a == b", ast.OpEqual},
		{"a != b", ast.OpNotEqual},
		{"a >= b", ast.OpGreaterEqual},
		{"a <= b", ast.OpLessEqual},
		{"a > b", ast.OpGreaterThan},
		{"a < b", ast.OpLessThan},
	}
	for _, tt := range tests {
		program := parse(t, tt.input)
		infix, ok := program.Tail.(*ast.Infix)
		require.True(t, ok, tt.input)
		require.Equal(t, tt.op, infix.Op, tt.input)
	}
}

func TestNodePositions(t *testing.T) {
	program := parse(t, "let x = add(1, 2);")
	let := program.Stmts[0].(*ast.Let)
	require.Equal(t, 0, let.Pos().Char)

	call := let.Value.(*ast.Call)
	require.Equal(t, 8, call.Pos().Char)
	require.Equal(t, 17, call.End().Char)
	require.Equal(t, 11, call.Lparen.Char)
	require.Equal(t, 16, call.Rparen.Char)
}
