package ast

// AssignOp is an assignment operator.
type AssignOp string

const (
	OpAssign         AssignOp = "="
	OpAddAssign      AssignOp = "+="
	OpSubtractAssign AssignOp = "-="
	OpMultiplyAssign AssignOp = "*="
	OpDivideAssign   AssignOp = "/="
	OpExponentAssign AssignOp = "^="
	OpOrAssign       AssignOp = "||="
	OpAndAssign      AssignOp = "&&="
)

// BinaryOp is a binary operator. The keyword spellings "or" and "and"
// carry the same operators as "||" and "&&".
type BinaryOp string

const (
	OpOr           BinaryOp = "||"
	OpAnd          BinaryOp = "&&"
	OpEqual        BinaryOp = "=="
	OpNotEqual     BinaryOp = "!="
	OpGreaterEqual BinaryOp = ">="
	OpLessEqual    BinaryOp = "<="
	OpGreaterThan  BinaryOp = ">"
	OpLessThan     BinaryOp = "<"
	OpAdd          BinaryOp = "+"
	OpSubtract     BinaryOp = "-"
	OpMultiply     BinaryOp = "*"
	OpDivide       BinaryOp = "/"
	OpExponent     BinaryOp = "^"
)

// UnaryOp is a prefix operator.
type UnaryOp string

const (
	OpNegate UnaryOp = "-"
	OpNot    UnaryOp = "!"
)
