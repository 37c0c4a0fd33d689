// Package lexer provides a lazy tokenizer for BobaScript source code.
//
// Tokens are produced one at a time via Next. Lexical faults are returned
// as errors alongside an ILLEGAL token; the lexer skips past the offending
// input so the caller can collect the error and keep reading tokens.
package lexer

import (
	"fmt"

	"github.com/bobascript/boba/token"
)

// Lexer scans BobaScript source code and produces tokens.
type Lexer struct {
	input     []rune
	filename  string
	position  int // rune offset of the next unread rune
	line      int // current line, starting at 0
	lineStart int // rune offset of the start of the current line
}

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFilename sets the file name associated with the input.
func WithFilename(filename string) Option {
	return func(l *Lexer) {
		l.filename = filename
	}
}

// New returns a Lexer for the given source code.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: []rune(input)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Filename returns the file name associated with the input.
func (l *Lexer) Filename() string { return l.filename }

// SetFilename sets the file name associated with the input.
func (l *Lexer) SetFilename(filename string) { l.filename = filename }

// Position returns the position of the next unread rune.
func (l *Lexer) Position() token.Position {
	return l.positionAt(l.position)
}

// GetLineText returns the text of the line containing the given token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	end := start
	for end < len(l.input) && l.input[end] != '\n' && l.input[end] != '\r' {
		end++
	}
	return string(l.input[start:end])
}

// Next returns the next token in the input. At the end of the input an EOF
// token is returned, indefinitely. If a lexical fault is found, an ILLEGAL
// token is returned along with an error describing the fault, and the lexer
// remains usable.
func (l *Lexer) Next() (token.Token, error) {
	if pos, err := l.skipWhitespace(); err != nil {
		return l.illegalTokenAt(pos, err)
	}
	start := l.positionAt(l.position)
	ch, ok := l.peek(0)
	if !ok {
		return token.Token{
			Type:          token.EOF,
			StartPosition: start,
			EndPosition:   start,
		}, nil
	}
	switch {
	case isLetter(ch):
		literal := l.readIdentifier()
		return l.newToken(token.LookupIdentifier(literal), literal, start), nil
	case isDigit(ch):
		return l.newToken(token.NUMBER, l.readNumber(), start), nil
	case ch == '"':
		literal, err := l.readString()
		if err != nil {
			return l.illegalTokenAt(start, err)
		}
		return l.newToken(token.STRING, literal, start), nil
	}
	return l.readOperator(start)
}

// readOperator scans punctuation and operator tokens, preferring the
// longest match (e.g. "||=" over "||" over nothing).
func (l *Lexer) readOperator(start token.Position) (token.Token, error) {
	ch, _ := l.peek(0)
	next, _ := l.peek(1)
	switch ch {
	case '|':
		if next == '|' {
			if third, _ := l.peek(2); third == '=' {
				return l.opToken(token.OR_EQUALS, 3, start), nil
			}
			return l.opToken(token.OR, 2, start), nil
		}
	case '&':
		if next == '&' {
			if third, _ := l.peek(2); third == '=' {
				return l.opToken(token.AND_EQUALS, 3, start), nil
			}
			return l.opToken(token.AND, 2, start), nil
		}
	case '=':
		if next == '=' {
			return l.opToken(token.EQ, 2, start), nil
		}
		return l.opToken(token.ASSIGN, 1, start), nil
	case '!':
		if next == '=' {
			return l.opToken(token.NOT_EQ, 2, start), nil
		}
		return l.opToken(token.BANG, 1, start), nil
	case '>':
		if next == '=' {
			return l.opToken(token.GT_EQUALS, 2, start), nil
		}
		return l.opToken(token.GT, 1, start), nil
	case '<':
		if next == '=' {
			return l.opToken(token.LT_EQUALS, 2, start), nil
		}
		return l.opToken(token.LT, 1, start), nil
	case '+':
		if next == '=' {
			return l.opToken(token.PLUS_EQUALS, 2, start), nil
		}
		return l.opToken(token.PLUS, 1, start), nil
	case '-':
		if next == '=' {
			return l.opToken(token.MINUS_EQUALS, 2, start), nil
		}
		return l.opToken(token.MINUS, 1, start), nil
	case '*':
		if next == '=' {
			return l.opToken(token.ASTERISK_EQUALS, 2, start), nil
		}
		return l.opToken(token.ASTERISK, 1, start), nil
	case '/':
		if next == '=' {
			return l.opToken(token.SLASH_EQUALS, 2, start), nil
		}
		return l.opToken(token.SLASH, 1, start), nil
	case '^':
		if next == '=' {
			return l.opToken(token.CARET_EQUALS, 2, start), nil
		}
		return l.opToken(token.CARET, 1, start), nil
	case '#':
		if next == '[' {
			return l.opToken(token.HASH_LBRACKET, 2, start), nil
		}
		if next == '{' {
			return l.opToken(token.HASH_LBRACE, 2, start), nil
		}
	case ':':
		if next == ':' {
			return l.opToken(token.COLON_COLON, 2, start), nil
		}
		return l.opToken(token.COLON, 1, start), nil
	case '(':
		return l.opToken(token.LPAREN, 1, start), nil
	case ')':
		return l.opToken(token.RPAREN, 1, start), nil
	case '{':
		return l.opToken(token.LBRACE, 1, start), nil
	case '}':
		return l.opToken(token.RBRACE, 1, start), nil
	case '[':
		return l.opToken(token.LBRACKET, 1, start), nil
	case ']':
		return l.opToken(token.RBRACKET, 1, start), nil
	case ',':
		return l.opToken(token.COMMA, 1, start), nil
	case ';':
		return l.opToken(token.SEMICOLON, 1, start), nil
	case '.':
		return l.opToken(token.PERIOD, 1, start), nil
	}
	l.position++
	return l.illegalTokenAt(start, fmt.Errorf("unexpected character: %q", ch))
}

// skipWhitespace discards whitespace and comments. It returns an error if
// the input ends inside a block comment, positioned at the comment's
// opening "/*".
func (l *Lexer) skipWhitespace() (token.Position, error) {
	for {
		ch, ok := l.peek(0)
		if !ok {
			return token.Position{}, nil
		}
		switch ch {
		case ' ', '\t', '\r':
			l.position++
		case '\n':
			l.advanceLine()
		case '/':
			next, _ := l.peek(1)
			if next == '/' {
				l.skipLineComment()
			} else if next == '*' {
				opener := l.positionAt(l.position)
				if err := l.skipBlockComment(); err != nil {
					return opener, err
				}
			} else {
				return token.Position{}, nil
			}
		default:
			return token.Position{}, nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		ch, ok := l.peek(0)
		if !ok || ch == '\n' {
			return
		}
		l.position++
	}
}

// skipBlockComment consumes a "/* ... */" comment. Nesting is not
// supported; the first "*/" closes the comment.
func (l *Lexer) skipBlockComment() error {
	l.position += 2 // consume "/*"
	for {
		ch, ok := l.peek(0)
		if !ok {
			return fmt.Errorf("unterminated block comment")
		}
		if ch == '*' {
			if next, _ := l.peek(1); next == '/' {
				l.position += 2
				return nil
			}
		}
		if ch == '\n' {
			l.advanceLine()
		} else {
			l.position++
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for {
		ch, ok := l.peek(0)
		if !ok || (!isLetter(ch) && !isDigit(ch)) {
			break
		}
		l.position++
	}
	return string(l.input[start:l.position])
}

// readNumber scans a number of the shape [0-9]+(\.[0-9]+)* and returns its
// literal text. A dot is consumed only when a digit follows, so "42.foo"
// yields the number "42" with the dot left for the next token. More than
// one dotted group may appear; the parser decides whether the literal
// denotes a valid number.
func (l *Lexer) readNumber() string {
	start := l.position
	l.readDigits()
	for {
		dot, ok := l.peek(0)
		if !ok || dot != '.' {
			break
		}
		next, ok := l.peek(1)
		if !ok || !isDigit(next) {
			break
		}
		l.position++ // consume '.'
		l.readDigits()
	}
	return string(l.input[start:l.position])
}

func (l *Lexer) readDigits() {
	for {
		ch, ok := l.peek(0)
		if !ok || !isDigit(ch) {
			return
		}
		l.position++
	}
}

// readString scans a double-quoted string literal and returns its contents
// with the surrounding quotes stripped. Escape sequences are preserved
// verbatim: a backslash and the rune that follows it are copied through
// without interpretation, so `\"` keeps a quote from closing the literal
// but stays two runes in the result.
func (l *Lexer) readString() (string, error) {
	l.position++ // consume the opening quote
	start := l.position
	for {
		ch, ok := l.peek(0)
		if !ok {
			return "", fmt.Errorf("unterminated string literal")
		}
		switch ch {
		case '"':
			literal := string(l.input[start:l.position])
			l.position++ // consume the closing quote
			return literal, nil
		case '\\':
			l.position++
			if esc, ok := l.peek(0); ok {
				if esc == '\n' {
					l.advanceLine()
				} else {
					l.position++
				}
			}
		case '\n':
			l.advanceLine()
		default:
			l.position++
		}
	}
}

func (l *Lexer) advanceLine() {
	l.position++
	l.line++
	l.lineStart = l.position
}

func (l *Lexer) peek(offset int) (rune, bool) {
	idx := l.position + offset
	if idx >= len(l.input) {
		return 0, false
	}
	return l.input[idx], true
}

// positionAt builds a Position for a rune offset on the current line.
func (l *Lexer) positionAt(idx int) token.Position {
	var value rune
	if idx >= 0 && idx < len(l.input) {
		value = l.input[idx]
	}
	return token.Position{
		Value:     value,
		Char:      idx,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    idx - l.lineStart,
		File:      l.filename,
	}
}

// newToken builds a token whose runes have already been consumed. The end
// position is the last consumed rune, which may be on a later line than
// the start for multi-line string literals.
func (l *Lexer) newToken(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.positionAt(l.position - 1),
	}
}

func (l *Lexer) opToken(typ token.Type, width int, start token.Position) token.Token {
	literal := string(l.input[l.position : l.position+width])
	l.position += width
	return l.newToken(typ, literal, start)
}

func (l *Lexer) illegalTokenAt(start token.Position, err error) (token.Token, error) {
	return token.Token{
		Type:          token.ILLEGAL,
		Literal:       string(start.Value),
		StartPosition: start,
		EndPosition:   l.positionAt(l.position - 1),
	}, err
}

func isLetter(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
