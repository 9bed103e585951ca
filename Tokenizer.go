package main

import (
	"csvcel/contracts"
	"fmt"
	"strconv"
)

const FormulaPrefix = "="

// Tokenize turns a formula source (leading `=` included) into a flat token
// sequence. A `-` that is immediately followed by digits lexes into the
// literal itself, so `=10-2` yields [10, -2]; the reducer absorbs such signed
// literals additively.
func Tokenize(source string) (contracts.Expression, error) {
	if len(source) == 0 || source[0] != FormulaPrefix[0] {
		return nil, fmt.Errorf("`%s`: formula must start with `%s`: %w", source, FormulaPrefix, contracts.MalformedExpressionError)
	}

	expression := contracts.Expression{}
	body := source[1:]

	position := 0
	for position < len(body) {
		char := body[position]

		switch {
		case isDigitChar(char) || char == '.' || char == '-':
			start := position
			position++
			for position < len(body) && (isDigitChar(body[position]) || body[position] == '.') {
				position++
			}

			literal := body[start:position]
			if literal == "-" {
				// lone minus with no digits behind it is a binary operator
				expression = append(expression, contracts.NewOperatorToken(contracts.OpSubtract))
				continue
			}

			number, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, fmt.Errorf("`%s`: %w", literal, contracts.InvalidNumberLiteralError)
			}
			expression = append(expression, contracts.NewValueToken(number))

		case char == contracts.OpAdd || char == contracts.OpMultiply || char == contracts.OpDivide:
			expression = append(expression, contracts.NewOperatorToken(char))
			position++

		case isAlphaChar(char):
			start := position
			position++
			for position < len(body) && (isAlphaChar(body[position]) || isDigitChar(body[position])) {
				position++
			}
			expression = append(expression, contracts.NewRefToken(body[start:position]))

		default:
			// whitespace and anything else unexpected
			position++
		}
	}

	return expression, nil
}

func isDigitChar(char byte) bool {
	return char >= '0' && char <= '9'
}

func isAlphaChar(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
