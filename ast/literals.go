package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bobascript/boba/token"
)

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	ValuePos token.Position // position of "true" or "false"
	Literal  string         // "true" or "false"
	Value    bool           // the boolean value
}

func (x *Bool) exprNode() {}

func (x *Bool) Pos() token.Position { return x.ValuePos }
func (x *Bool) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Bool) String() string { return x.Literal }

// Ident is an expression node that names a binding, possibly through a
// "::"-separated namespace path such as std::io::print.
type Ident struct {
	NamePos token.Position // position of the first segment
	Parts   []string       // path segments; always at least one
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.String())) }

// Name returns the final path segment, the name being referenced.
func (x *Ident) Name() string { return x.Parts[len(x.Parts)-1] }

func (x *Ident) String() string { return strings.Join(x.Parts, "::") }

// Number is an expression node that holds a numeric literal.
type Number struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text
	Value    float64        // the parsed value
}

func (x *Number) exprNode() {}

func (x *Number) Pos() token.Position { return x.ValuePos }
func (x *Number) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Number) String() string { return x.Literal }

// String is an expression node that holds a string literal. Value is the
// text between the quotes with escape sequences preserved verbatim;
// resolving escapes belongs to later pipeline stages.
type String struct {
	ValuePos token.Position // position of the opening quote
	Value    string         // literal text, quotes stripped, escapes raw
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }
func (x *String) End() token.Position { return x.ValuePos.Advance(len(x.Value) + 2) }

func (x *String) String() string { return fmt.Sprintf("%q", x.Value) }

// Tuple is an expression node that builds a fixed-size sequence, written
// #[a, b, c]. #[] is the empty tuple and #[x] a one-element tuple; the
// #[ sigil keeps both distinct from parenthesized expressions.
type Tuple struct {
	HashPos token.Position // position of "#["
	Items   []Expr         // tuple elements
	Rbrack  token.Position // position of "]"
}

func (x *Tuple) exprNode() {}

func (x *Tuple) Pos() token.Position { return x.HashPos }
func (x *Tuple) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Tuple) String() string {
	var out bytes.Buffer
	items := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		items = append(items, item.String())
	}
	out.WriteString("#[")
	out.WriteString(strings.Join(items, ", "))
	out.WriteString("]")
	return out.String()
}

// RecordField is a single field of a record literal.
type RecordField struct {
	Name    string         // field name
	NamePos token.Position // position of the field name
	Value   Expr           // field value
}

// Record is an expression node that builds a keyed value, written
// #{name: expr, ...}. Fields are kept in first-appearance order; when a
// name repeats, the value written last wins.
type Record struct {
	HashPos token.Position // position of "#{"
	Fields  []RecordField  // deduplicated fields in first-appearance order
	Rbrace  token.Position // position of "}"
}

func (x *Record) exprNode() {}

func (x *Record) Pos() token.Position { return x.HashPos }
func (x *Record) End() token.Position { return x.Rbrace.Advance(1) }

// Set adds a field, replacing the value of an existing field with the
// same name.
func (x *Record) Set(name string, namePos token.Position, value Expr) {
	for i := range x.Fields {
		if x.Fields[i].Name == name {
			x.Fields[i].Value = value
			return
		}
	}
	x.Fields = append(x.Fields, RecordField{Name: name, NamePos: namePos, Value: value})
}

// Get returns the value of the named field.
func (x *Record) Get(name string) (Expr, bool) {
	for i := range x.Fields {
		if x.Fields[i].Name == name {
			return x.Fields[i].Value, true
		}
	}
	return nil, false
}

func (x *Record) String() string {
	var out bytes.Buffer
	fields := make([]string, 0, len(x.Fields))
	for _, f := range x.Fields {
		fields = append(fields, f.Name+": "+f.Value.String())
	}
	out.WriteString("#{")
	out.WriteString(strings.Join(fields, ", "))
	out.WriteString("}")
	return out.String()
}
