package ast

import (
	"bytes"
	"strings"

	"github.com/bobascript/boba/token"
)

// Func is a statement node that declares a named function.
type Func struct {
	Fn     token.Position // position of the "fn" keyword
	Name   *Ident         // function name
	Lparen token.Position // position of "("
	Params []*Ident       // parameter names
	Rparen token.Position // position of ")"
	Body   *Block         // function body
}

func (x *Func) stmtNode() {}

func (x *Func) Pos() token.Position { return x.Fn }

func (x *Func) End() token.Position {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.Rparen.Advance(1)
}

func (x *Func) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.String())
	}
	out.WriteString("fn ")
	out.WriteString(x.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

// Const is a statement node that binds a name to a value immutably.
type Const struct {
	Const token.Position // position of the "const" keyword
	Name  *Ident         // name being bound
	Value Expr           // value the name is bound to
}

func (x *Const) stmtNode() {}

func (x *Const) Pos() token.Position { return x.Const }

func (x *Const) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Name.End()
}

func (x *Const) String() string {
	var out bytes.Buffer
	out.WriteString("const ")
	out.WriteString(x.Name.String())
	out.WriteString(" = ")
	if x.Value != nil {
		out.WriteString(x.Value.String())
	}
	return out.String()
}

// Let is a statement node that declares a mutable variable, with an
// optional initial value.
type Let struct {
	Let   token.Position // position of the "let" keyword
	Name  *Ident         // name being declared
	Value Expr           // initial value; nil if the declaration is bare
}

func (x *Let) stmtNode() {}

func (x *Let) Pos() token.Position { return x.Let }

func (x *Let) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Name.End()
}

func (x *Let) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(x.Name.String())
	if x.Value != nil {
		out.WriteString(" = ")
		out.WriteString(x.Value.String())
	}
	return out.String()
}

// Return is a statement node that returns from the enclosing function,
// with an optional value.
type Return struct {
	Return token.Position // position of the "return" keyword
	Value  Expr           // returned value; nil if absent
}

func (x *Return) stmtNode() {}

func (x *Return) Pos() token.Position { return x.Return }

func (x *Return) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Return.Advance(len("return"))
}

func (x *Return) String() string {
	if x.Value == nil {
		return "return"
	}
	return "return " + x.Value.String()
}

// Break is a statement node that exits the enclosing loop, optionally
// supplying the loop's value.
type Break struct {
	Break token.Position // position of the "break" keyword
	Value Expr           // value the loop produces; nil if absent
}

func (x *Break) stmtNode() {}

func (x *Break) Pos() token.Position { return x.Break }

func (x *Break) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Break.Advance(len("break"))
}

func (x *Break) String() string {
	if x.Value == nil {
		return "break"
	}
	return "break " + x.Value.String()
}

// ExprStmt is a statement node holding an expression evaluated for its
// effects, such as an assignment or a call terminated with ";".
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) stmtNode() {}

func (x *ExprStmt) Pos() token.Position { return x.X.Pos() }
func (x *ExprStmt) End() token.Position { return x.X.End() }

func (x *ExprStmt) String() string { return x.X.String() }
