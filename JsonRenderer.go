package main

import (
	"csvcel/contracts"
	"io"

	json "github.com/bytedance/sonic"
)

type GridDocumentCell struct {
	Identifier string `json:"identifier"`
	Source     string `json:"source"`
	Kind       string `json:"kind"`
}

type GridDocument struct {
	Header []string            `json:"header"`
	Cells  []*GridDocumentCell `json:"cells"`
}

// JsonRenderer is the `-format json` counterpart of the table renderer.
type JsonRenderer struct{}

func NewJsonRenderer() *JsonRenderer {
	return &JsonRenderer{}
}

func (r *JsonRenderer) RenderGrid(out io.Writer, sheet *contracts.Sheet) error {
	document := &GridDocument{
		Header: make([]string, 0, len(sheet.Header)),
		Cells:  make([]*GridDocumentCell, 0, len(sheet.Cells)),
	}

	for _, cell := range sheet.Header {
		document.Header = append(document.Header, cell.Identifier)
	}

	for _, cell := range sheet.Cells {
		document.Cells = append(document.Cells, &GridDocumentCell{
			Identifier: cell.Identifier,
			Source:     cell.Content.Source,
			Kind:       contentKind(cell.Content.Type),
		})
	}

	return r.write(out, document)
}

func (r *JsonRenderer) RenderReport(out io.Writer, report *contracts.SheetReport) error {
	return r.write(out, report)
}

func (r *JsonRenderer) write(out io.Writer, document any) error {
	payload, err := json.Marshal(document)
	if err != nil {
		return err
	}

	_, err = out.Write(append(payload, '\n'))
	return err
}

func contentKind(contentType contracts.ContentType) string {
	switch contentType {
	case contracts.ValueContentType:
		return "value"
	case contracts.ExpressionContentType:
		return "expression"
	default:
		return "identifier"
	}
}
