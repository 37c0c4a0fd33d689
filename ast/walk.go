package ast

import "iter"

// Visitor is the interface for AST traversal callbacks. Walk calls
// v.Visit(node) for each node; if the result is non-nil, Walk descends
// into the node's children with the returned visitor.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor w
// for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}
		if n.Tail != nil {
			Walk(v, n.Tail)
		}

	case *Func:
		Walk(v, n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *Const:
		Walk(v, n.Name)
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *Let:
		Walk(v, n.Name)
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *Return:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *Break:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *ExprStmt:
		Walk(v, n.X)

	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *Infix:
		Walk(v, n.X)
		Walk(v, n.Y)

	case *Prefix:
		Walk(v, n.X)

	case *Property:
		Walk(v, n.X)
		Walk(v, n.Attr)

	case *Index:
		Walk(v, n.X)
		Walk(v, n.Index)

	case *Call:
		Walk(v, n.Fun)
		for _, arg := range n.Args {
			Walk(v, arg)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}
		if n.Tail != nil {
			Walk(v, n.Tail)
		}

	case *If:
		Walk(v, n.Cond)
		if n.Consequence != nil {
			Walk(v, n.Consequence)
		}
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}

	case *While:
		Walk(v, n.Cond)
		for _, stmt := range n.Body {
			Walk(v, stmt)
		}

	case *Log:
		Walk(v, n.X)

	case *Tuple:
		for _, item := range n.Items {
			Walk(v, item)
		}

	case *Record:
		for _, f := range n.Fields {
			Walk(v, f.Value)
		}

	case *Bool, *Ident, *Number, *String, *BadExpr, *BadStmt:
		// leaf nodes
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: it starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns an iterator over all the nodes of the tree rooted at
// node, in depth-first preorder.
func Preorder(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(node, func(n Node) bool {
			if n != nil {
				ok = ok && yield(n)
			}
			return ok
		})
	}
}
