package contracts

import "io"

type Renderer interface {
	RenderGrid(out io.Writer, sheet *Sheet) error
	RenderReport(out io.Writer, report *SheetReport) error
}
