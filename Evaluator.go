package main

import (
	"csvcel/contracts"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const CycleChainSeparator = " -> "

type SheetEvaluator struct{}

func NewSheetEvaluator() *SheetEvaluator {
	return &SheetEvaluator{}
}

// Evaluate resolves one cell to a number. The cycle trace lives for exactly
// one top-level call: it is seeded with the requested cell and threaded
// through the recursion, so repeated or concurrent evaluations never share
// state and sibling references inside one expression cannot reset each other.
func (e *SheetEvaluator) Evaluate(cell *contracts.Cell, sheet *contracts.Sheet) (float64, error) {
	return e.doEvaluate(cell, sheet, []string{cell.Identifier})
}

// EvaluateSheet maps every data cell to its report entry, row-major. The
// first failure aborts the whole report; there are no partial results.
func (e *SheetEvaluator) EvaluateSheet(sheet *contracts.Sheet) (*contracts.SheetReport, error) {
	report := &contracts.SheetReport{
		Header:  make([]string, 0, len(sheet.Header)),
		Cells:   make([]*contracts.CellReport, 0, len(sheet.Cells)),
		Columns: sheet.Columns(),
	}

	for _, cell := range sheet.Header {
		report.Header = append(report.Header, cell.Identifier)
	}

	for _, cell := range sheet.Cells {
		result, err := e.Evaluate(cell, sheet)
		if err != nil {
			return nil, err
		}

		report.Cells = append(report.Cells, &contracts.CellReport{
			Identifier: cell.Identifier,
			Source:     cell.Content.Source,
			Result:     result,
		})
	}

	return report, nil
}

func (e *SheetEvaluator) doEvaluate(cell *contracts.Cell, sheet *contracts.Sheet, trace []string) (float64, error) {
	switch cell.Content.Type {
	case contracts.IdentifierContentType:
		return 0, fmt.Errorf("`%s`: %w", cell.Identifier, contracts.CannotEvaluateIdentifierError)

	case contracts.ValueContentType:
		return cell.Content.Number, nil
	}

	resolved := make(contracts.Expression, len(cell.Content.Expression))
	for index, token := range cell.Content.Expression {
		if token.Type != contracts.RefTokenType {
			resolved[index] = token
			continue
		}

		target, exists := sheet.ById[token.Ref]
		if !exists {
			return 0, e.unresolvedReference(token.Ref, sheet)
		}

		if position := e.traceIndex(trace, target.Identifier); position >= 0 {
			return 0, fmt.Errorf("%s: %w", e.formatChain(trace[position:], target.Identifier), contracts.CyclicReferenceError)
		}

		value, err := e.doEvaluate(target, sheet, append(trace, target.Identifier))
		if err != nil {
			return 0, err
		}
		resolved[index] = contracts.NewValueToken(value)
	}

	return Reduce(resolved)
}

func (e *SheetEvaluator) traceIndex(trace []string, identifier string) int {
	for index, visited := range trace {
		if visited == identifier {
			return index
		}
	}

	return -1
}

// formatChain renders the ordered identifier chain from the first occurrence
// of the cycle target back to the target again, e.g. `A1 -> B1 -> A1`.
func (e *SheetEvaluator) formatChain(lap []string, target string) string {
	chain := make([]string, 0, len(lap)+1)
	chain = append(chain, lap...)
	chain = append(chain, target)
	return strings.Join(chain, CycleChainSeparator)
}

func (e *SheetEvaluator) unresolvedReference(ref string, sheet *contracts.Sheet) error {
	err := fmt.Errorf("`%s`: %w", ref, contracts.UnresolvedReferenceError)

	candidates := make([]string, 0, len(sheet.ById))
	for identifier := range sheet.ById {
		candidates = append(candidates, identifier)
	}

	ranks := fuzzy.RankFindFold(ref, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		err = fmt.Errorf("%w (did you mean `%s`?)", err, ranks[0].Target)
	}

	return err
}
