package contracts

// CellReport is the evaluated form of one data cell.
type CellReport struct {
	Identifier string  `json:"identifier"`
	Source     string  `json:"source"`
	Result     float64 `json:"result"`
}

// SheetReport is the evaluated form of a whole sheet; Cells is row-major,
// Columns rows of len(Header) each.
type SheetReport struct {
	Header  []string      `json:"header"`
	Cells   []*CellReport `json:"cells"`
	Columns int           `json:"columns"`
}
