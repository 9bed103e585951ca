package contracts

import "errors"

type TokenType int

const (
	OperatorTokenType TokenType = iota
	ValueTokenType
	RefTokenType
)

const (
	OpAdd      = byte('+')
	OpSubtract = byte('-')
	OpMultiply = byte('*')
	OpDivide   = byte('/')
)

// Token is a tagged variant: exactly one of Op, Value, Ref is meaningful,
// selected by Type.
type Token struct {
	Type  TokenType
	Op    byte
	Value float64
	Ref   string
}

// Expression is an ordered token sequence in infix notation, without
// parentheses or precedence grouping at the lexical level.
type Expression []Token

func NewOperatorToken(op byte) Token {
	return Token{Type: OperatorTokenType, Op: op}
}

func NewValueToken(value float64) Token {
	return Token{Type: ValueTokenType, Value: value}
}

func NewRefToken(ref string) Token {
	return Token{Type: RefTokenType, Ref: ref}
}

var MalformedExpressionError = errors.New("malformed expression")

var InvalidNumberLiteralError = errors.New("invalid number literal")

var ArithmeticError = errors.New("arithmetic error")
