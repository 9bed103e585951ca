package main

import (
	"csvcel/contracts"
	"fmt"
	"strings"
	"sync"
)

type sheetEntry struct {
	report *contracts.SheetReport
	cells  map[string]*contracts.CellReport
}

// SheetRepository keeps evaluated reports in memory, keyed by lowercased
// sheet id. A report is immutable once computed; SetSheet replaces a sheet
// wholesale with a fresh parse and evaluation, and a failed upload leaves
// whatever was stored before untouched.
type SheetRepository struct {
	mutex     sync.RWMutex
	sheets    map[string]*sheetEntry
	evaluator contracts.SheetEvaluator
}

func NewSheetRepository(evaluator contracts.SheetEvaluator) *SheetRepository {
	return &SheetRepository{
		sheets:    map[string]*sheetEntry{},
		evaluator: evaluator,
	}
}

func (s *SheetRepository) SetSheet(sheetId string, source string) (*contracts.SheetReport, error) {
	sheet, err := ParseGrid(source)
	if err != nil {
		return nil, err
	}

	report, err := s.evaluator.EvaluateSheet(sheet)
	if err != nil {
		return nil, err
	}

	entry := &sheetEntry{
		report: report,
		cells:  make(map[string]*contracts.CellReport, len(report.Cells)),
	}
	for _, cell := range report.Cells {
		entry.cells[cell.Identifier] = cell
	}

	s.mutex.Lock()
	s.sheets[strings.ToLower(sheetId)] = entry
	s.mutex.Unlock()

	return report, nil
}

func (s *SheetRepository) GetSheet(sheetId string) (*contracts.SheetReport, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.sheets[strings.ToLower(sheetId)]
	if !exists {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	return entry.report, nil
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.CellReport, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.sheets[strings.ToLower(sheetId)]
	if !exists {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	cell, exists := entry.cells[cellId]
	if !exists {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return cell, nil
}
