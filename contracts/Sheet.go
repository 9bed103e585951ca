package contracts

import "errors"

// Sheet is the immutable result of parsing one grid. Cells holds the data
// cells row-major; ById indexes both header and data cells.
type Sheet struct {
	Header CellList
	Cells  CellList
	ById   map[string]*Cell
}

func NewSheet() *Sheet {
	return &Sheet{
		Header: CellList{},
		Cells:  CellList{},
		ById:   map[string]*Cell{},
	}
}

// Columns reports the header length; data rows carry exactly this many cells.
func (s *Sheet) Columns() int {
	return len(s.Header)
}

func (s *Sheet) Rows() int {
	if len(s.Header) == 0 {
		return 0
	}

	return len(s.Cells) / len(s.Header)
}

var RaggedGridError = errors.New("rows have inconsistent field counts")

var HeaderMustBeIdentifiersError = errors.New("header cells must be identifiers")

var DuplicateIdentifierError = errors.New("duplicate identifier in header")

var IdentifierOutsideHeaderError = errors.New("identifier outside of header row")
