package contracts

import "errors"

type ContentType int

const (
	ValueContentType ContentType = iota
	IdentifierContentType
	ExpressionContentType
)

// CellContent is a tagged variant over Type; Source always keeps the raw
// cell text as it appeared in the grid.
type CellContent struct {
	Type       ContentType
	Number     float64
	Name       string
	Expression Expression
	Source     string
}

// Cell is one grid entry. Identifier is unique within a sheet: header cells
// carry their bare alphabetic name, data cells carry `<headerName><rowIndex>`
// with rowIndex starting at 1. The alpha-prefix/digit-suffix decomposition of
// an identifier is unique, so the two forms can never collide.
type Cell struct {
	Identifier string
	Content    CellContent
}

type CellList []*Cell

func NewValueContent(number float64, source string) CellContent {
	return CellContent{Type: ValueContentType, Number: number, Source: source}
}

func NewIdentifierContent(name string) CellContent {
	return CellContent{Type: IdentifierContentType, Name: name, Source: name}
}

func NewExpressionContent(expression Expression, source string) CellContent {
	return CellContent{Type: ExpressionContentType, Expression: expression, Source: source}
}

var InvalidCellValueError = errors.New("invalid cell value")
