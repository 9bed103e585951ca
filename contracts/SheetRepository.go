package contracts

import "errors"

type SheetRepository interface {
	SetSheet(sheetId string, source string) (*SheetReport, error)
	GetSheet(sheetId string) (*SheetReport, error)
	GetCell(sheetId string, cellId string) (*CellReport, error)
}

var SheetNotFoundError = errors.New("sheet not found")

var CellNotFoundError = errors.New("cell not found")
