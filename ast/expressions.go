package ast

import (
	"bytes"
	"strings"

	"github.com/bobascript/boba/token"
)

// Assign is an expression node that assigns a value to a target. The
// target is an identifier, a property access, or an index expression.
// Assignment associates to the right: a = b = c assigns b first.
type Assign struct {
	Target Expr           // assignment target
	OpPos  token.Position // position of the operator
	Op     AssignOp       // "=", "+=", "||=", ...
	Value  Expr           // value being assigned
}

func (x *Assign) exprNode() {}

func (x *Assign) Pos() token.Position { return x.Target.Pos() }
func (x *Assign) End() token.Position { return x.Value.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Target.String())
	out.WriteString(" " + string(x.Op) + " ")
	out.WriteString(x.Value.String())
	out.WriteString(")")
	return out.String()
}

// Infix is an expression node combining two operands with a binary
// operator.
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of the operator
	Op    BinaryOp       // the operator
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + string(x.Op) + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Prefix is an expression node applying a unary operator to an operand.
type Prefix struct {
	OpPos token.Position // position of the operator
	Op    UnaryOp        // "-" or "!"
	X     Expr           // the operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.OpPos }
func (x *Prefix) End() token.Position { return x.X.End() }

func (x *Prefix) String() string {
	return "(" + string(x.Op) + x.X.String() + ")"
}

// Property is an expression node accessing a named field of a value.
type Property struct {
	X      Expr           // the value whose field is accessed
	Period token.Position // position of "."
	Attr   *Ident         // the field name
}

func (x *Property) exprNode() {}

func (x *Property) Pos() token.Position { return x.X.Pos() }
func (x *Property) End() token.Position { return x.Attr.End() }

func (x *Property) String() string {
	return x.X.String() + "." + x.Attr.String()
}

// Index is an expression node accessing an element of a value by index.
type Index struct {
	X      Expr           // the value being indexed
	Lbrack token.Position // position of "["
	Index  Expr           // the index expression
	Rbrack token.Position // position of "]"
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position { return x.X.Pos() }
func (x *Index) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Index) String() string {
	return "(" + x.X.String() + "[" + x.Index.String() + "])"
}

// Call is an expression node invoking a value with arguments.
type Call struct {
	Fun    Expr           // the value being called
	Lparen token.Position // position of "("
	Args   []Expr         // call arguments
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Block is an expression node holding a brace-delimited statement list.
// A trailing expression without a terminator becomes the block's value.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Stmt         // statements in the block
	Tail   Expr           // trailing expression; nil if the block has no value
	Rbrace token.Position // position of "}"
}

func (x *Block) exprNode() {}

func (x *Block) Pos() token.Position { return x.Lbrace }
func (x *Block) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range x.Stmts {
		out.WriteString(stmt.String())
		out.WriteString("; ")
	}
	if x.Tail != nil {
		out.WriteString(x.Tail.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// If is an expression node choosing between branches. Alternative is nil,
// a *Block for a plain else, or a nested *If for an else-if chain.
type If struct {
	If          token.Position // position of the "if" keyword
	Cond        Expr           // the condition
	Consequence *Block         // branch taken when the condition holds
	Alternative Expr           // else branch; nil, *Block, or *If
}

func (x *If) exprNode() {}

func (x *If) Pos() token.Position { return x.If }

func (x *If) End() token.Position {
	if x.Alternative != nil {
		return x.Alternative.End()
	}
	if x.Consequence != nil {
		return x.Consequence.End()
	}
	return x.Cond.End()
}

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(x.Cond.String())
	if x.Consequence != nil {
		out.WriteString(" ")
		out.WriteString(x.Consequence.String())
	}
	if x.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(x.Alternative.String())
	}
	return out.String()
}

// While is an expression node repeating its body while the condition
// holds. The body is a bare statement list; unlike Block it has no
// trailing expression slot, so the loop's value comes from break.
type While struct {
	While  token.Position // position of the "while" keyword
	Cond   Expr           // the condition
	Lbrace token.Position // position of "{"
	Body   []Stmt         // loop body statements
	Rbrace token.Position // position of "}"
}

func (x *While) exprNode() {}

func (x *While) Pos() token.Position { return x.While }
func (x *While) End() token.Position { return x.Rbrace.Advance(1) }

func (x *While) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(x.Cond.String())
	out.WriteString(" { ")
	for _, stmt := range x.Body {
		out.WriteString(stmt.String())
		out.WriteString("; ")
	}
	out.WriteString("}")
	return out.String()
}

// Log is an expression node that prints its operand's value.
type Log struct {
	Log    token.Position // position of the "log" keyword
	Lparen token.Position // position of "("
	X      Expr           // the value to print
	Rparen token.Position // position of ")"
}

func (x *Log) exprNode() {}

func (x *Log) Pos() token.Position { return x.Log }
func (x *Log) End() token.Position { return x.Rparen.Advance(1) }

func (x *Log) String() string {
	return "log(" + x.X.String() + ")"
}
