package parser

import (
	"github.com/bobascript/boba/ast"
	"github.com/bobascript/boba/token"
)

var assignOps = map[token.Type]ast.AssignOp{
	token.ASSIGN:          ast.OpAssign,
	token.PLUS_EQUALS:     ast.OpAddAssign,
	token.MINUS_EQUALS:    ast.OpSubtractAssign,
	token.ASTERISK_EQUALS: ast.OpMultiplyAssign,
	token.SLASH_EQUALS:    ast.OpDivideAssign,
	token.CARET_EQUALS:    ast.OpExponentAssign,
	token.OR_EQUALS:       ast.OpOrAssign,
	token.AND_EQUALS:      ast.OpAndAssign,
}

var binaryOps = map[token.Type]ast.BinaryOp{
	token.OR:        ast.OpOr,
	token.AND:       ast.OpAnd,
	token.EQ:        ast.OpEqual,
	token.NOT_EQ:    ast.OpNotEqual,
	token.GT_EQUALS: ast.OpGreaterEqual,
	token.LT_EQUALS: ast.OpLessEqual,
	token.GT:        ast.OpGreaterThan,
	token.LT:        ast.OpLessThan,
	token.PLUS:      ast.OpAdd,
	token.MINUS:     ast.OpSubtract,
	token.ASTERISK:  ast.OpMultiply,
	token.SLASH:     ast.OpDivide,
	token.CARET:     ast.OpExponent,
}

var unaryOps = map[token.Type]ast.UnaryOp{
	token.MINUS: ast.OpNegate,
	token.BANG:  ast.OpNot,
}

// parseAssign parses an assignment. The target must be an identifier, a
// property access, or an index expression. Assignment associates to the
// right, so the value is parsed one precedence level looser.
func (p *Parser) parseAssign(left ast.Expr) ast.Expr {
	switch left.(type) {
	case *ast.Ident, *ast.Property, *ast.Index, *ast.BadExpr:
	default:
		p.tokenError(p.curToken, "invalid assignment target")
		return &ast.BadExpr{From: left.Pos(), To: p.curToken.EndPosition}
	}
	expr := &ast.Assign{
		Target: left,
		OpPos:  p.curToken.StartPosition,
		Op:     assignOps[p.curToken.Type],
	}
	p.nextToken()
	expr.Value = p.parseExpression(ASSIGN - 1)
	return expr
}

// parseInfixExpr parses a binary operator expression. All binary levels
// associate to the left, including "^".
func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	expr := &ast.Infix{
		X:     left,
		OpPos: p.curToken.StartPosition,
		Op:    binaryOps[p.curToken.Type],
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Y = p.parseExpression(precedence)
	return expr
}

// parsePrefixExpr parses a unary operator expression. Prefix operators
// associate to the right: !!x negates twice.
func (p *Parser) parsePrefixExpr() ast.Expr {
	expr := &ast.Prefix{
		OpPos: p.curToken.StartPosition,
		Op:    unaryOps[p.curToken.Type],
	}
	p.nextToken()
	expr.X = p.parseExpression(PREFIX)
	return expr
}

// parseProperty parses a field access: x.name
func (p *Parser) parseProperty(left ast.Expr) ast.Expr {
	period := p.curToken.StartPosition
	if !p.expectPeek("property access", token.IDENT) {
		return &ast.BadExpr{From: left.Pos(), To: p.peekToken.EndPosition}
	}
	return &ast.Property{X: left, Period: period, Attr: p.simpleIdent()}
}

// parseIndex parses an element access: x[i]
func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	expr := &ast.Index{X: left, Lbrack: p.curToken.StartPosition}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if p.hadNewError() {
		return expr
	}
	if !p.expectPeek("index expression", token.RBRACKET) {
		return expr
	}
	expr.Rbrack = p.curToken.StartPosition
	return expr
}

// parseCall parses a call expression: f(a, b)
func (p *Parser) parseCall(left ast.Expr) ast.Expr {
	expr := &ast.Call{Fun: left, Lparen: p.curToken.StartPosition}
	expr.Args = p.parseExprList(token.RPAREN, "call arguments")
	expr.Rparen = p.curToken.StartPosition
	return expr
}

// parseGroupedExpr parses a parenthesized expression. Parentheses group
// only; (1) is the number 1, not a tuple.
func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if p.hadNewError() {
		return expr
	}
	p.expectPeek("grouped expression", token.RPAREN)
	return expr
}

// parseBlockExpr parses a braced block in expression position.
func (p *Parser) parseBlockExpr() ast.Expr {
	return p.parseBlock()
}

// parseBlock parses a braced statement list with an optional trailing
// expression, leaving the current token on "}".
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Lbrace: p.curToken.StartPosition}
	p.nextToken()
	block.Stmts, block.Tail = p.parseStmts(token.RBRACE, true)
	if p.curTokenIs(token.EOF) {
		p.tokenError(p.curToken, "unterminated block (expected %q)", "}")
	}
	block.Rbrace = p.curToken.StartPosition
	return block
}

// parseIf parses a conditional expression. The condition is bare (no
// parentheses) and an "else if" chain nests directly in the else slot.
func (p *Parser) parseIf() ast.Expr {
	expr := &ast.If{If: p.curToken.StartPosition}
	p.nextToken()
	expr.Cond = p.parseExpression(LOWEST)
	if p.hadNewError() {
		return expr
	}
	if !p.expectPeek("if expression", token.LBRACE) {
		return expr
	}
	expr.Consequence = p.parseBlock()
	if p.hadNewError() {
		return expr
	}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			expr.Alternative = p.parseIf()
		} else {
			if !p.expectPeek("else block", token.LBRACE) {
				return expr
			}
			expr.Alternative = p.parseBlock()
		}
	}
	return expr
}

// parseWhile parses a loop expression. The body is a bare statement list;
// a trailing expression is rejected since the loop's value comes from
// break.
func (p *Parser) parseWhile() ast.Expr {
	expr := &ast.While{While: p.curToken.StartPosition}
	p.nextToken()
	expr.Cond = p.parseExpression(LOWEST)
	if p.hadNewError() {
		return expr
	}
	if !p.expectPeek("while expression", token.LBRACE) {
		return expr
	}
	expr.Lbrace = p.curToken.StartPosition
	p.nextToken()
	expr.Body, _ = p.parseStmts(token.RBRACE, false)
	if p.curTokenIs(token.EOF) {
		p.tokenError(p.curToken, "unterminated block (expected %q)", "}")
	}
	expr.Rbrace = p.curToken.StartPosition
	return expr
}

// parseLog parses a log expression: log(EXPR)
func (p *Parser) parseLog() ast.Expr {
	expr := &ast.Log{Log: p.curToken.StartPosition}
	if !p.expectPeek("log expression", token.LPAREN) {
		expr.X = p.badExpr()
		return expr
	}
	expr.Lparen = p.curToken.StartPosition
	p.nextToken()
	expr.X = p.parseExpression(LOWEST)
	if p.hadNewError() {
		return expr
	}
	if !p.expectPeek("log expression", token.RPAREN) {
		return expr
	}
	expr.Rparen = p.curToken.StartPosition
	return expr
}
