// Package parser turns BobaScript source code into an abstract syntax
// tree.
//
// Parsing never stops at the first fault: errors are collected while the
// parser resynchronizes at statement boundaries, and the regions it could
// not understand are represented by ast.BadStmt and ast.BadExpr nodes.
// Both the (possibly partial) tree and the collected errors are returned.
//
// Example usage:
//
//	program, err := parser.Parse(ctx, "let x = 5; x + 1")
//	if err != nil {
//	    var parserErrs *parser.Errors
//	    if errors.As(err, &parserErrs) {
//	        for _, e := range parserErrs.Errors() {
//	            fmt.Println(e.Error())
//	        }
//	    }
//	}
package parser

import (
	"context"
	"fmt"

	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/lexer"
	"github.com/bobascript/boba/token"
)

const (
	// MaxErrors is the default number of errors after which parsing stops.
	MaxErrors = 10

	// DefaultMaxDepth is the default expression nesting limit.
	DefaultMaxDepth = 500
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser converts the token stream produced by a lexer into an AST.
type Parser struct {
	ctx context.Context

	l *lexer.Lexer

	prevToken token.Token
	curToken  token.Token
	peekToken token.Token

	errors []ParserError

	// error count at the start of the statement being parsed, used to
	// detect faults introduced by the current statement
	stmtErrorCount int

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	filename  string
	depth     int
	maxDepth  int
	maxErrors int
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error messages.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the expression nesting limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithMaxErrors sets the number of errors after which parsing stops.
func WithMaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// Parse the given source code and return the resulting AST. A program is
// returned even when the error is non-nil; the tree then contains
// placeholder nodes for the regions that failed to parse.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	l := lexer.New(input)
	p := New(l, options...)
	if p.filename != "" {
		l.SetFilename(p.filename)
	}
	return p.Parse(ctx)
}

// New returns a Parser that reads tokens from the given lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:         l,
		maxDepth:  DefaultMaxDepth,
		maxErrors: MaxErrors,
	}
	for _, opt := range options {
		opt(p)
	}
	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:         p.parseIdent,
		token.NUMBER:        p.parseNumber,
		token.STRING:        p.parseString,
		token.TRUE:          p.parseBool,
		token.FALSE:         p.parseBool,
		token.BANG:          p.parsePrefixExpr,
		token.MINUS:         p.parsePrefixExpr,
		token.LPAREN:        p.parseGroupedExpr,
		token.LBRACE:        p.parseBlockExpr,
		token.HASH_LBRACKET: p.parseTuple,
		token.HASH_LBRACE:   p.parseRecord,
		token.IF:            p.parseIf,
		token.WHILE:         p.parseWhile,
		token.LOG:           p.parseLog,
	}
	p.infixParseFns = map[token.Type]infixParseFn{
		token.ASSIGN:          p.parseAssign,
		token.PLUS_EQUALS:     p.parseAssign,
		token.MINUS_EQUALS:    p.parseAssign,
		token.ASTERISK_EQUALS: p.parseAssign,
		token.SLASH_EQUALS:    p.parseAssign,
		token.CARET_EQUALS:    p.parseAssign,
		token.OR_EQUALS:       p.parseAssign,
		token.AND_EQUALS:      p.parseAssign,
		token.OR:              p.parseInfixExpr,
		token.AND:             p.parseInfixExpr,
		token.EQ:              p.parseInfixExpr,
		token.NOT_EQ:          p.parseInfixExpr,
		token.GT_EQUALS:       p.parseInfixExpr,
		token.LT_EQUALS:       p.parseInfixExpr,
		token.GT:              p.parseInfixExpr,
		token.LT:              p.parseInfixExpr,
		token.PLUS:            p.parseInfixExpr,
		token.MINUS:           p.parseInfixExpr,
		token.ASTERISK:        p.parseInfixExpr,
		token.SLASH:           p.parseInfixExpr,
		token.CARET:           p.parseInfixExpr,
		token.PERIOD:          p.parseProperty,
		token.LBRACKET:        p.parseIndex,
		token.LPAREN:          p.parseCall,
	}
	// Prime the token window with the first two tokens.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse the token stream and return the resulting AST. See the package
// level Parse for the error contract.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	stmts, tail := p.parseStmts(token.EOF, true)
	program := &ast.Program{Stmts: stmts, Tail: tail}
	if err := ctx.Err(); err != nil {
		return program, err
	}
	if len(p.errors) > 0 {
		return program, NewErrors(p.errors)
	}
	return program, nil
}

// Errors returns the parser errors collected so far, in source order.
func (p *Parser) Errors() []ParserError {
	return p.errors
}

// parseStmts parses statements until the given end token (EOF at the top
// level, RBRACE inside braces), leaving the end token as the current
// token. When allowTail is true, a final expression without a ";"
// terminator is returned as the tail value; otherwise it is reported as
// an error and kept as an expression statement.
func (p *Parser) parseStmts(end token.Type, allowTail bool) ([]ast.Stmt, ast.Expr) {
	var stmts []ast.Stmt
	for !p.curTokenIs(end) && !p.curTokenIs(token.EOF) {
		if p.cancelled() || p.tooManyErrors() {
			return stmts, nil
		}
		p.stmtErrorCount = len(p.errors)
		start := p.curToken.StartPosition
		stmt, tail := p.parseStatement(end)
		if p.hadNewError() {
			if stmt == nil && tail != nil {
				stmt = &ast.ExprStmt{X: tail}
			}
			p.synchronize()
			if stmt == nil {
				stmt = &ast.BadStmt{From: start, To: p.curToken.StartPosition}
			}
			stmts = append(stmts, stmt)
			switch p.curToken.Type {
			case token.SEMICOLON:
				p.nextToken()
			case token.RBRACE:
				if end != token.RBRACE {
					p.nextToken() // a stray "}" cannot start a statement
				}
			default:
				// Guarantee progress when synchronize stopped on the
				// token that caused the failure.
				if p.curToken.StartPosition.Char == start.Char && !p.curTokenIs(token.EOF) {
					p.nextToken()
				}
			}
			continue
		}
		if tail != nil {
			if allowTail {
				p.nextToken() // step onto the end token
				return stmts, tail
			}
			p.tokenError(p.curToken, "loop body does not produce a value (missing %q?)", ";")
			stmts = append(stmts, &ast.ExprStmt{X: tail})
			p.nextToken()
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}
	return stmts, nil
}

// parseStatement parses one statement, leaving the current token on the
// statement's terminator. A trailing expression followed by the end token
// instead of a terminator is returned as the second value, with the
// current token still on the expression's last token.
func (p *Parser) parseStatement(end token.Type) (ast.Stmt, ast.Expr) {
	var stmt ast.Stmt
	switch p.curToken.Type {
	case token.FUNCTION:
		if s := p.parseFunc(); s != nil {
			stmt = s
		}
	case token.CONST:
		if s := p.parseConst(); s != nil {
			stmt = s
		}
	case token.LET:
		if s := p.parseLet(); s != nil {
			stmt = s
		}
	case token.RETURN:
		if s := p.parseReturn(); s != nil {
			stmt = s
		}
	case token.BREAK:
		if s := p.parseBreak(); s != nil {
			stmt = s
		}
	default:
		expr := p.parseExpression(LOWEST)
		if p.hadNewError() {
			if _, ok := expr.(*ast.BadExpr); ok {
				// Nothing recognizable was parsed; let the caller
				// synthesize a BadStmt for the region.
				return nil, nil
			}
			return &ast.ExprStmt{X: expr}, nil
		}
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
			return &ast.ExprStmt{X: expr}, nil
		}
		if p.peekTokenIs(end) {
			return nil, expr
		}
		p.peekError("statement", token.SEMICOLON)
		return &ast.ExprStmt{X: expr}, nil
	}
	if stmt == nil || p.hadNewError() {
		return stmt, nil
	}
	// Declarations and jumps always require the terminator, including
	// after a closing "}".
	p.expectPeek("statement", token.SEMICOLON)
	return stmt, nil
}

// parseExpression parses an expression at the given precedence level,
// leaving the current token on the expression's last token. The result is
// never nil: when no expression can be parsed an error is recorded and an
// ast.BadExpr is returned.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.tokenError(p.curToken, "exceeded maximum expression depth")
		return p.badExpr()
	}
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.tokenError(p.curToken, "invalid syntax (unexpected %s)",
			tokenDescription(p.curToken))
		return p.badExpr()
	}
	left := prefix()
	if p.hadNewError() {
		return left
	}
	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if p.hadNewError() {
			return left
		}
	}
	return left
}

// synchronize advances to the next point where parsing can reasonably
// resume: a statement terminator, a closing brace, a keyword that starts
// a statement, or the end of the input. The boundary token is left as the
// current token.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.SEMICOLON, token.RBRACE,
			token.FUNCTION, token.CONST, token.LET,
			token.RETURN, token.BREAK, token.IF, token.WHILE:
			return
		}
		before := p.curToken.StartPosition.Char
		p.nextToken()
		if p.curToken.StartPosition.Char == before {
			return
		}
	}
}

// nextToken advances the token window by one token. Lexical faults are
// recorded as syntax errors and their tokens discarded, so ILLEGAL tokens
// never enter the window.
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	tok, err := p.l.Next()
	for err != nil {
		p.addError(NewSyntaxError(ErrorOpts{
			Cause:         err,
			File:          p.l.Filename(),
			StartPosition: tok.StartPosition,
			EndPosition:   tok.EndPosition,
			SourceCode:    p.l.GetLineText(tok),
		}))
		if p.tooManyErrors() {
			tok = token.Token{
				Type:          token.EOF,
				StartPosition: tok.EndPosition,
				EndPosition:   tok.EndPosition,
			}
			break
		}
		tok, err = p.l.Next()
	}
	p.peekToken = tok
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek advances to the peek token if it has the expected type.
// Otherwise an error is recorded and the window does not move.
func (p *Parser) expectPeek(context string, t token.Type) bool {
	if !p.peekTokenIs(t) {
		p.peekError(context, t)
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) peekPrecedence() int {
	if precedence, ok := precedences[p.peekToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if precedence, ok := precedences[p.curToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

func (p *Parser) addError(err ParserError) {
	p.errors = append(p.errors, err)
}

// hadNewError returns true if an error was recorded while parsing the
// current statement.
func (p *Parser) hadNewError() bool {
	return len(p.errors) > p.stmtErrorCount
}

func (p *Parser) tooManyErrors() bool {
	return len(p.errors) >= p.maxErrors
}

func (p *Parser) cancelled() bool {
	select {
	case <-p.ctx.Done():
		return true
	default:
		return false
	}
}

// tokenError records a syntax error located at the given token.
func (p *Parser) tokenError(tok token.Token, format string, args ...any) {
	p.addError(NewSyntaxError(ErrorOpts{
		Message:       fmt.Sprintf(format, args...),
		File:          p.l.Filename(),
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.l.GetLineText(tok),
	}))
}

// peekError records an error describing an unexpected peek token.
func (p *Parser) peekError(context string, expected token.Type) {
	p.tokenError(p.peekToken, "unexpected %s while parsing %s (expected %s)",
		tokenDescription(p.peekToken), context, tokenTypeDescription(expected))
}

// badExpr returns a placeholder expression spanning the current token.
func (p *Parser) badExpr() *ast.BadExpr {
	return &ast.BadExpr{
		From: p.curToken.StartPosition,
		To:   p.curToken.EndPosition,
	}
}
