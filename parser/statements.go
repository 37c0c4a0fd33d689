package parser

import (
	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/token"
)

// parseFunc parses a named function declaration:
//
//	fn add(x, y) { x + y }
func (p *Parser) parseFunc() *ast.Func {
	fn := &ast.Func{Fn: p.curToken.StartPosition}
	if !p.expectPeek("function declaration", token.IDENT) {
		return nil
	}
	fn.Name = p.simpleIdent()
	if !p.expectPeek("function declaration", token.LPAREN) {
		return nil
	}
	fn.Lparen = p.curToken.StartPosition
	params, ok := p.parseFuncParams()
	if !ok {
		return nil
	}
	fn.Params = params
	fn.Rparen = p.curToken.StartPosition
	if !p.expectPeek("function declaration", token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlock()
	return fn
}

// parseFuncParams parses a comma separated parameter list, with an
// optional trailing comma, leaving the current token on ")".
func (p *Parser) parseFuncParams() ([]*ast.Ident, bool) {
	params := []*ast.Ident{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}
	for {
		if !p.expectPeek("function parameters", token.IDENT) {
			return nil, false
		}
		params = append(params, p.simpleIdent())
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RPAREN) {
				p.nextToken()
				return params, true
			}
			continue
		}
		if !p.expectPeek("function parameters", token.RPAREN) {
			return nil, false
		}
		return params, true
	}
}

// parseConst parses an immutable binding: const NAME = EXPR
func (p *Parser) parseConst() *ast.Const {
	stmt := &ast.Const{Const: p.curToken.StartPosition}
	if !p.expectPeek("const statement", token.IDENT) {
		return nil
	}
	stmt.Name = p.simpleIdent()
	if !p.expectPeek("const statement", token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseLet parses a variable declaration with an optional initial value:
// let NAME or let NAME = EXPR
func (p *Parser) parseLet() *ast.Let {
	stmt := &ast.Let{Let: p.curToken.StartPosition}
	if !p.expectPeek("let statement", token.IDENT) {
		return nil
	}
	stmt.Name = p.simpleIdent()
	if !p.peekTokenIs(token.ASSIGN) {
		return stmt
	}
	p.nextToken() // the "="
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseReturn parses a return statement with an optional value.
func (p *Parser) parseReturn() *ast.Return {
	stmt := &ast.Return{Return: p.curToken.StartPosition}
	if p.peekTokenIs(token.SEMICOLON) {
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseBreak parses a break statement, optionally carrying the value the
// enclosing loop produces.
func (p *Parser) parseBreak() *ast.Break {
	stmt := &ast.Break{Break: p.curToken.StartPosition}
	if p.peekTokenIs(token.SEMICOLON) {
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// simpleIdent builds a single-segment identifier from the current token.
func (p *Parser) simpleIdent() *ast.Ident {
	return &ast.Ident{
		NamePos: p.curToken.StartPosition,
		Parts:   []string{p.curToken.Literal},
	}
}
