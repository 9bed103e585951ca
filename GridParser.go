package main

import (
	"csvcel/contracts"
	"fmt"
	"strconv"
	"strings"
)

const FieldSeparator = ","

// ParseGrid builds the full immutable cell set from raw grid text. Row 0 is
// the header; data cells get synthesized identifiers `<headerName><rowIndex>`
// with rows counted from 1. Shape is validated before any field is
// classified, so a ragged grid fails ahead of every other diagnostic.
func ParseGrid(source string) (*contracts.Sheet, error) {
	rows := splitRows(source)

	sheet := contracts.NewSheet()
	if len(rows) == 0 {
		return sheet, nil
	}

	columns := len(rows[0])
	for _, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("expected %d fields, got %d: %w", columns, len(row), contracts.RaggedGridError)
		}
	}

	for _, field := range rows[0] {
		content, err := Classify(field)
		if err != nil {
			return nil, err
		}

		if content.Type != contracts.IdentifierContentType {
			return nil, fmt.Errorf("`%s`: %w", field, contracts.HeaderMustBeIdentifiersError)
		}

		if _, exists := sheet.ById[content.Name]; exists {
			return nil, fmt.Errorf("`%s`: %w", content.Name, contracts.DuplicateIdentifierError)
		}

		cell := &contracts.Cell{Identifier: content.Name, Content: content}
		sheet.Header = append(sheet.Header, cell)
		sheet.ById[cell.Identifier] = cell
	}

	for rowIndex, row := range rows[1:] {
		for columnIndex, field := range row {
			content, err := Classify(field)
			if err != nil {
				return nil, err
			}

			if content.Type == contracts.IdentifierContentType {
				return nil, fmt.Errorf("`%s`: %w", field, contracts.IdentifierOutsideHeaderError)
			}

			cell := &contracts.Cell{
				Identifier: sheet.Header[columnIndex].Identifier + strconv.Itoa(rowIndex+1),
				Content:    content,
			}
			sheet.Cells = append(sheet.Cells, cell)
			sheet.ById[cell.Identifier] = cell
		}
	}

	return sheet, nil
}

// splitRows drops empty lines and empty fields entirely, trimming the rest.
func splitRows(source string) [][]string {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields := make([]string, 0)
		for _, field := range strings.Split(line, FieldSeparator) {
			field = strings.TrimSpace(field)
			if field != "" {
				fields = append(fields, field)
			}
		}

		if len(fields) != 0 {
			rows = append(rows, fields)
		}
	}

	return rows
}
