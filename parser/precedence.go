package parser

import "github.com/bobascript/boba/token"

// Operator precedence levels, from loosest to tightest binding.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += -= *= /= ^= ||= &&=
	OR          // || or
	AND         // && and
	EQUALS      // == !=
	LESSGREATER // >= <= > <
	SUM         // + -
	PRODUCT     // * /
	EXPONENT    // ^
	PREFIX      // -x !x
	SUFFIX      // x.y x[i] x(args)
)

var precedences = map[token.Type]int{
	token.ASSIGN:          ASSIGN,
	token.PLUS_EQUALS:     ASSIGN,
	token.MINUS_EQUALS:    ASSIGN,
	token.ASTERISK_EQUALS: ASSIGN,
	token.SLASH_EQUALS:    ASSIGN,
	token.CARET_EQUALS:    ASSIGN,
	token.OR_EQUALS:       ASSIGN,
	token.AND_EQUALS:      ASSIGN,
	token.OR:              OR,
	token.AND:             AND,
	token.EQ:              EQUALS,
	token.NOT_EQ:          EQUALS,
	token.GT_EQUALS:       LESSGREATER,
	token.LT_EQUALS:       LESSGREATER,
	token.GT:              LESSGREATER,
	token.LT:              LESSGREATER,
	token.PLUS:            SUM,
	token.MINUS:           SUM,
	token.ASTERISK:        PRODUCT,
	token.SLASH:           PRODUCT,
	token.CARET:           EXPONENT,
	token.PERIOD:          SUFFIX,
	token.LBRACKET:        SUFFIX,
	token.LPAREN:          SUFFIX,
}
