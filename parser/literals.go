package parser

import (
	"strconv"

	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/token"
)

// parseIdent parses an identifier, following "::" separators into a
// namespace path: std::io::print
func (p *Parser) parseIdent() ast.Expr {
	ident := &ast.Ident{
		NamePos: p.curToken.StartPosition,
		Parts:   []string{p.curToken.Literal},
	}
	for p.peekTokenIs(token.COLON_COLON) {
		p.nextToken() // the "::"
		if !p.expectPeek("identifier path", token.IDENT) {
			return &ast.BadExpr{From: ident.NamePos, To: p.peekToken.EndPosition}
		}
		ident.Parts = append(ident.Parts, p.curToken.Literal)
	}
	return ident
}

// parseNumber parses a numeric literal. The lexer admits multi-dot
// shapes like "1.2.3"; those are rejected here since they denote no
// number.
func (p *Parser) parseNumber() ast.Expr {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.tokenError(tok, "invalid number literal: %q", tok.Literal)
		return p.badExpr()
	}
	return &ast.Number{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    value,
	}
}

// parseString parses a string literal. The value keeps escape sequences
// unresolved; only the surrounding quotes are stripped.
func (p *Parser) parseString() ast.Expr {
	return &ast.String{
		ValuePos: p.curToken.StartPosition,
		Value:    p.curToken.Literal,
	}
}

func (p *Parser) parseBool() ast.Expr {
	return &ast.Bool{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    p.curTokenIs(token.TRUE),
	}
}

// parseTuple parses a tuple literal: #[a, b, c]. The #[ sigil makes the
// form unambiguous, so #[] and single-element #[x] are both fine.
func (p *Parser) parseTuple() ast.Expr {
	tuple := &ast.Tuple{HashPos: p.curToken.StartPosition}
	tuple.Items = p.parseExprList(token.RBRACKET, "tuple literal")
	tuple.Rbrack = p.curToken.StartPosition
	return tuple
}

// parseRecord parses a record literal: #{name: expr, ...}. A field name
// is an identifier or a string literal; both name forms share one key
// space. Fields keep first-appearance order; a repeated name keeps the
// value written last.
func (p *Parser) parseRecord() ast.Expr {
	rec := &ast.Record{HashPos: p.curToken.StartPosition}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		rec.Rbrace = p.curToken.StartPosition
		return rec
	}
	for {
		if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.STRING) {
			p.tokenError(p.peekToken,
				"unexpected %s while parsing record literal (expected a field name)",
				tokenDescription(p.peekToken))
			return rec
		}
		p.nextToken()
		name := p.curToken.Literal
		namePos := p.curToken.StartPosition
		if !p.expectPeek("record literal", token.COLON) {
			return rec
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		rec.Set(name, namePos, value)
		if p.hadNewError() {
			return rec
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			continue
		}
		break
	}
	if !p.expectPeek("record literal", token.RBRACE) {
		return rec
	}
	rec.Rbrace = p.curToken.StartPosition
	return rec
}

// parseExprList parses a comma separated expression list terminated by
// the given token, with an optional trailing comma. The current token is
// left on the terminator.
func (p *Parser) parseExprList(end token.Type, context string) []ast.Expr {
	list := []ast.Expr{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	if p.hadNewError() {
		return list
	}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // the ","
		if p.peekTokenIs(end) {
			break
		}
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
		if p.hadNewError() {
			return list
		}
	}
	p.expectPeek(context, end)
	return list
}
