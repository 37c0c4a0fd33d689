package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tree builds a small program covering every traversable node kind:
//
//	fn add(x, y) { x + y };
//	let t = #[1, #{a: "s"}];
//	while !done { t[0] = add(t[0], 1); break t; };
//	if t[0] > 10 { log(t) } else { t.a }
func tree() *Program {
	return &Program{
		Stmts: []Stmt{
			&Func{
				Name:   &Ident{Parts: []string{"add"}},
				Params: []*Ident{{Parts: []string{"x"}}, {Parts: []string{"y"}}},
				Body: &Block{
					Tail: &Infix{
						X:  &Ident{Parts: []string{"x"}},
						Op: OpAdd,
						Y:  &Ident{Parts: []string{"y"}},
					},
				},
			},
			&Let{
				Name: &Ident{Parts: []string{"t"}},
				Value: &Tuple{Items: []Expr{
					&Number{Literal: "1", Value: 1},
					&Record{Fields: []RecordField{
						{Name: "a", Value: &String{Value: "s"}},
					}},
				}},
			},
			&ExprStmt{X: &While{
				Cond: &Prefix{Op: OpNot, X: &Ident{Parts: []string{"done"}}},
				Body: []Stmt{
					&ExprStmt{X: &Assign{
						Target: &Index{
							X:     &Ident{Parts: []string{"t"}},
							Index: &Number{Literal: "0"},
						},
						Op: OpAssign,
						Value: &Call{
							Fun: &Ident{Parts: []string{"add"}},
							Args: []Expr{
								&Index{
									X:     &Ident{Parts: []string{"t"}},
									Index: &Number{Literal: "0"},
								},
								&Number{Literal: "1"},
							},
						},
					}},
					&Break{Value: &Ident{Parts: []string{"t"}}},
				},
			}},
		},
		Tail: &If{
			Cond: &Infix{
				X: &Index{
					X:     &Ident{Parts: []string{"t"}},
					Index: &Number{Literal: "0"},
				},
				Op: OpGreaterThan,
				Y:  &Number{Literal: "10"},
			},
			Consequence: &Block{Tail: &Log{X: &Ident{Parts: []string{"t"}}}},
			Alternative: &Block{Tail: &Property{
				X:    &Ident{Parts: []string{"t"}},
				Attr: &Ident{Parts: []string{"a"}},
			}},
		},
	}
}

func TestInspectVisitsEveryNode(t *testing.T) {
	counts := map[string]int{}
	Inspect(tree(), func(n Node) bool {
		if n != nil {
			counts[typeName(n)]++
		}
		return true
	})
	expected := map[string]int{
		"Program": 1, "Func": 1, "Let": 1, "ExprStmt": 2, "Break": 1,
		"While": 1, "If": 1, "Block": 3, "Assign": 1, "Infix": 2,
		"Prefix": 1, "Property": 1, "Index": 3, "Call": 1, "Log": 1,
		"Tuple": 1, "Record": 1, "Ident": 15, "Number": 6, "String": 1,
	}
	require.Equal(t, expected, counts)
}

func TestInspectPrune(t *testing.T) {
	// Refusing to descend into the While skips its whole subtree.
	var whiles, assigns int
	Inspect(tree(), func(n Node) bool {
		switch n.(type) {
		case *While:
			whiles++
			return false
		case *Assign:
			assigns++
		}
		return true
	})
	require.Equal(t, 1, whiles)
	require.Equal(t, 0, assigns)
}

func TestPreorder(t *testing.T) {
	var total int
	for range Preorder(tree()) {
		total++
	}
	require.Equal(t, 45, total)

	// Early termination stops the traversal.
	var seen int
	for range Preorder(tree()) {
		seen++
		if seen == 5 {
			break
		}
	}
	require.Equal(t, 5, seen)
}

func typeName(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *Func:
		return "Func"
	case *Const:
		return "Const"
	case *Let:
		return "Let"
	case *Return:
		return "Return"
	case *Break:
		return "Break"
	case *ExprStmt:
		return "ExprStmt"
	case *BadStmt:
		return "BadStmt"
	case *Assign:
		return "Assign"
	case *Infix:
		return "Infix"
	case *Prefix:
		return "Prefix"
	case *Property:
		return "Property"
	case *Index:
		return "Index"
	case *Call:
		return "Call"
	case *Block:
		return "Block"
	case *If:
		return "If"
	case *While:
		return "While"
	case *Log:
		return "Log"
	case *Bool:
		return "Bool"
	case *Ident:
		return "Ident"
	case *Number:
		return "Number"
	case *String:
		return "String"
	case *Tuple:
		return "Tuple"
	case *Record:
		return "Record"
	case *BadExpr:
		return "BadExpr"
	}
	return "unknown"
}
