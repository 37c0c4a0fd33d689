// Package token defines the lexical tokens of the BobaScript language.
package token

import "sort"

// Type distinguishes the different kinds of tokens.
type Type string

// Position describes the location of a rune of source code.
type Position struct {
	Value     rune   // the rune at this position
	Char      int    // rune offset from the start of the input
	LineStart int    // rune offset of the start of the containing line
	Line      int    // line number, starting at 0
	Column    int    // column number, starting at 0 (rune count from LineStart)
	File      string // name of the file containing the source code
}

// LineNumber returns the 1-indexed line number for this position.
func (p Position) LineNumber() int { return p.Line + 1 }

// ColumnNumber returns the 1-indexed column number for this position.
func (p Position) ColumnNumber() int { return p.Column + 1 }

// Advance returns the position n runes further into the same line.
func (p Position) Advance(n int) Position {
	p.Char += n
	p.Column += n
	return p
}

// Token is a lexical token read from BobaScript source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position // position of the first rune of the token
	EndPosition   Position // position of the last rune of the token
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	IDENT  = "IDENT"
	NUMBER = "NUMBER"
	STRING = "STRING"

	FUNCTION = "FN"
	CONST    = "CONST"
	LET      = "LET"
	RETURN   = "RETURN"
	BREAK    = "BREAK"
	IF       = "IF"
	ELSE     = "ELSE"
	WHILE    = "WHILE"
	LOG      = "LOG"
	TRUE     = "TRUE"
	FALSE    = "FALSE"

	ASSIGN          = "="
	PLUS_EQUALS     = "+="
	MINUS_EQUALS    = "-="
	ASTERISK_EQUALS = "*="
	SLASH_EQUALS    = "/="
	CARET_EQUALS    = "^="
	OR_EQUALS       = "||="
	AND_EQUALS      = "&&="

	OR        = "||"
	AND       = "&&"
	EQ        = "=="
	NOT_EQ    = "!="
	GT_EQUALS = ">="
	LT_EQUALS = "<="
	GT        = ">"
	LT        = "<"

	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	CARET    = "^"
	BANG     = "!"

	LPAREN        = "("
	RPAREN        = ")"
	LBRACE        = "{"
	RBRACE        = "}"
	LBRACKET      = "["
	RBRACKET      = "]"
	HASH_LBRACKET = "#["
	HASH_LBRACE   = "#{"
	COMMA         = ","
	SEMICOLON     = ";"
	COLON         = ":"
	COLON_COLON   = "::"
	PERIOD        = "."
)

// The "or" and "and" keywords are aliases for "||" and "&&". They map to
// the same token types so the parser treats both spellings identically.
var keywords = map[string]Type{
	"fn":     FUNCTION,
	"const":  CONST,
	"let":    LET,
	"return": RETURN,
	"break":  BREAK,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"log":    LOG,
	"true":   TRUE,
	"false":  FALSE,
	"or":     OR,
	"and":    AND,
}

// LookupIdentifier returns the token type for the given word, which is
// IDENT unless the word is a reserved keyword.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the given word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the sorted list of reserved words.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
