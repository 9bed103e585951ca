package contracts

import "errors"

type SheetEvaluator interface {
	Evaluate(cell *Cell, sheet *Sheet) (float64, error)
	EvaluateSheet(sheet *Sheet) (*SheetReport, error)
}

var CannotEvaluateIdentifierError = errors.New("cannot evaluate identifier cell")

var UnresolvedReferenceError = errors.New("unresolved reference")

var CyclicReferenceError = errors.New("cyclic reference")
