package main

import (
	"csvcel/contracts"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const DefaultColumnWidth = 18

// TableRenderer prints a sheet and its evaluated report as fixed-width
// tables, one token color per lexical class. Padding is computed on the
// uncolored text, so escape sequences never skew the columns.
type TableRenderer struct {
	width           int
	identifierColor *color.Color
	valueColor      *color.Color
	operatorColor   *color.Color
	refColor        *color.Color
}

func NewTableRenderer(width int) *TableRenderer {
	if width <= 0 {
		width = DefaultColumnWidth
	}

	return &TableRenderer{
		width:           width,
		identifierColor: color.New(color.FgMagenta, color.Bold),
		valueColor:      color.New(color.FgCyan),
		operatorColor:   color.New(color.FgYellow),
		refColor:        color.New(color.FgGreen),
	}
}

func (r *TableRenderer) RenderGrid(out io.Writer, sheet *contracts.Sheet) error {
	if err := r.renderHeader(out, sheet.Header); err != nil {
		return err
	}

	columns := sheet.Columns()
	for rowStart := 0; rowStart < len(sheet.Cells); rowStart += columns {
		row := make([]string, 0, columns)
		for _, cell := range sheet.Cells[rowStart : rowStart+columns] {
			row = append(row, r.pad(r.formatContent(cell.Content), r.plainContent(cell.Content)))
		}

		if _, err := fmt.Fprintln(out, strings.Join(row, "")); err != nil {
			return err
		}
	}

	return nil
}

func (r *TableRenderer) RenderReport(out io.Writer, report *contracts.SheetReport) error {
	header := make([]string, 0, len(report.Header))
	for _, name := range report.Header {
		header = append(header, r.pad(r.identifierColor.Sprint(name), name))
	}

	if _, err := fmt.Fprintln(out, strings.Join(header, "")); err != nil {
		return err
	}

	for rowStart := 0; rowStart < len(report.Cells); rowStart += report.Columns {
		row := make([]string, 0, report.Columns)
		for _, cell := range report.Cells[rowStart : rowStart+report.Columns] {
			result := strconv.FormatFloat(cell.Result, 'f', -1, 64)
			row = append(row, r.pad(r.valueColor.Sprint(result), result))
		}

		if _, err := fmt.Fprintln(out, strings.Join(row, "")); err != nil {
			return err
		}
	}

	return nil
}

func (r *TableRenderer) renderHeader(out io.Writer, header contracts.CellList) error {
	if len(header) == 0 {
		return nil
	}

	line := make([]string, 0, len(header))
	for _, cell := range header {
		line = append(line, r.pad(r.identifierColor.Sprint(cell.Identifier), cell.Identifier))
	}

	_, err := fmt.Fprintln(out, strings.Join(line, ""))
	return err
}

func (r *TableRenderer) formatContent(content contracts.CellContent) string {
	switch content.Type {
	case contracts.ValueContentType:
		return r.valueColor.Sprint(content.Source)

	case contracts.ExpressionContentType:
		parts := make([]string, 0, len(content.Expression)+1)
		parts = append(parts, r.operatorColor.Sprint(FormulaPrefix))
		for _, token := range content.Expression {
			parts = append(parts, r.formatToken(token))
		}
		return strings.Join(parts, "")

	default:
		return r.identifierColor.Sprint(content.Name)
	}
}

func (r *TableRenderer) formatToken(token contracts.Token) string {
	switch token.Type {
	case contracts.OperatorTokenType:
		return r.operatorColor.Sprint(string(token.Op))
	case contracts.ValueTokenType:
		return r.valueColor.Sprint(strconv.FormatFloat(token.Value, 'f', -1, 64))
	default:
		return r.refColor.Sprint(token.Ref)
	}
}

// plainContent mirrors formatContent without color, for width bookkeeping.
func (r *TableRenderer) plainContent(content contracts.CellContent) string {
	switch content.Type {
	case contracts.ValueContentType:
		return content.Source

	case contracts.ExpressionContentType:
		var plain strings.Builder
		plain.WriteString(FormulaPrefix)
		for _, token := range content.Expression {
			switch token.Type {
			case contracts.OperatorTokenType:
				plain.WriteByte(token.Op)
			case contracts.ValueTokenType:
				plain.WriteString(strconv.FormatFloat(token.Value, 'f', -1, 64))
			default:
				plain.WriteString(token.Ref)
			}
		}
		return plain.String()

	default:
		return content.Name
	}
}

func (r *TableRenderer) pad(colored string, plain string) string {
	if len(plain) >= r.width {
		return colored + " "
	}

	return colored + strings.Repeat(" ", r.width-len(plain))
}
