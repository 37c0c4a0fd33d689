// Package ast defines the abstract syntax tree of the BobaScript language.
//
// Node is the interface implemented by all tree nodes, with Stmt and Expr
// marking the statement and expression subsets. The parser produces a
// *Program even for faulty input; regions it could not parse are held by
// BadStmt and BadExpr placeholder nodes.
package ast

import (
	"strings"

	"github.com/bobascript/boba/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first rune belonging to the node.
	Pos() token.Position

	// End returns the position of the first rune immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the node.
	String() string
}

// Stmt is the interface implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node of an AST: a sequence of statements optionally
// followed by a trailing expression that supplies the program's value.
type Program struct {
	Stmts []Stmt
	Tail  Expr // trailing expression; nil if the program ends with a statement
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	if p.Tail != nil {
		return p.Tail.Pos()
	}
	return token.Position{}
}

func (p *Program) End() token.Position {
	if p.Tail != nil {
		return p.Tail.End()
	}
	if n := len(p.Stmts); n > 0 {
		return p.Stmts[n-1].End()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var out strings.Builder
	for i, stmt := range p.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	if p.Tail != nil {
		if len(p.Stmts) > 0 {
			out.WriteString("\n")
		}
		out.WriteString(p.Tail.String())
	}
	return out.String()
}

// BadStmt is a placeholder for a statement containing syntax errors.
type BadStmt struct {
	From token.Position
	To   token.Position
}

func (x *BadStmt) stmtNode() {}

func (x *BadStmt) Pos() token.Position { return x.From }
func (x *BadStmt) End() token.Position { return x.To }

func (x *BadStmt) String() string { return "<bad statement>" }

// BadExpr is a placeholder for an expression containing syntax errors.
type BadExpr struct {
	From token.Position
	To   token.Position
}

func (x *BadExpr) exprNode() {}

func (x *BadExpr) Pos() token.Position { return x.From }
func (x *BadExpr) End() token.Position { return x.To }

func (x *BadExpr) String() string { return "<bad expression>" }
