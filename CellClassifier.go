package main

import (
	"csvcel/contracts"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// https://regex101.com/r/0bNKyC/1
var identifierPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Classify decides what one raw cell string is. A bare alphabetic string is
// always an Identifier, even in a data row; rejecting that case is the grid
// parser's job, with its own diagnostic.
func Classify(raw string) (contracts.CellContent, error) {
	if identifierPattern.MatchString(raw) {
		return contracts.NewIdentifierContent(raw), nil
	}

	if strings.HasPrefix(raw, FormulaPrefix) {
		expression, err := Tokenize(raw)
		if err != nil {
			return contracts.CellContent{}, err
		}
		return contracts.NewExpressionContent(expression, raw), nil
	}

	if number, err := strconv.ParseFloat(raw, 64); err == nil {
		return contracts.NewValueContent(number, raw), nil
	}

	return contracts.CellContent{}, fmt.Errorf("`%s`: %w", raw, contracts.InvalidCellValueError)
}
