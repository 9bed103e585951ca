package main

import (
	"csvcel/contracts"
	"fmt"
	"math"
)

// Reduce collapses a fully-resolved token sequence into one number. Two
// left-to-right passes: `*` and `/` first, then `+` and `-`. A Value token
// directly following another Value is a signed literal from the tokenizer
// and is absorbed additively, which keeps `=10-2-3` at 5.
func Reduce(tokens contracts.Expression) (float64, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty token sequence: %w", contracts.MalformedExpressionError)
	}

	working := make(contracts.Expression, 0, len(tokens))
	for _, token := range tokens {
		if token.Type == contracts.RefTokenType {
			return 0, fmt.Errorf("unresolved token `%s`: %w", token.Ref, contracts.MalformedExpressionError)
		}
		working = append(working, token)
	}

	working, err := collapseMultiplicative(working)
	if err != nil {
		return 0, err
	}

	return foldAdditive(working)
}

// collapseMultiplicative replaces every leftmost [left, */, right] window
// with a single Value until no `*` or `/` remains.
func collapseMultiplicative(working contracts.Expression) (contracts.Expression, error) {
	position := 0
	for position < len(working) {
		token := working[position]
		if token.Type != contracts.OperatorTokenType || (token.Op != contracts.OpMultiply && token.Op != contracts.OpDivide) {
			position++
			continue
		}

		if position == 0 || position == len(working)-1 {
			return nil, fmt.Errorf("dangling `%c`: %w", token.Op, contracts.MalformedExpressionError)
		}

		left := working[position-1]
		right := working[position+1]
		if left.Type != contracts.ValueTokenType || right.Type != contracts.ValueTokenType {
			return nil, fmt.Errorf("`%c` without two operands: %w", token.Op, contracts.MalformedExpressionError)
		}

		var value float64
		if token.Op == contracts.OpMultiply {
			value = left.Value * right.Value
		} else {
			value = left.Value / right.Value
		}

		if err := checkFinite(value, left.Value, token.Op, right.Value); err != nil {
			return nil, err
		}

		working[position-1] = contracts.NewValueToken(value)
		working = append(working[:position], working[position+2:]...)
	}

	return working, nil
}

// foldAdditive walks what survives pass 1: Values and `+`/`-` operators. The
// sequence must open with a Value; an operator must be followed by one.
func foldAdditive(working contracts.Expression) (float64, error) {
	first := working[0]
	if first.Type != contracts.ValueTokenType {
		return 0, fmt.Errorf("leading `%c`: %w", first.Op, contracts.MalformedExpressionError)
	}

	accumulator := first.Value

	position := 1
	for position < len(working) {
		token := working[position]

		if token.Type == contracts.ValueTokenType {
			// signed literal
			if err := checkFinite(accumulator+token.Value, accumulator, contracts.OpAdd, token.Value); err != nil {
				return 0, err
			}
			accumulator += token.Value
			position++
			continue
		}

		if position+1 >= len(working) || working[position+1].Type != contracts.ValueTokenType {
			return 0, fmt.Errorf("dangling `%c`: %w", token.Op, contracts.MalformedExpressionError)
		}

		operand := working[position+1].Value
		var value float64
		switch token.Op {
		case contracts.OpAdd:
			value = accumulator + operand
		case contracts.OpSubtract:
			value = accumulator - operand
		default:
			return 0, fmt.Errorf("unexpected `%c`: %w", token.Op, contracts.MalformedExpressionError)
		}

		if err := checkFinite(value, accumulator, token.Op, operand); err != nil {
			return 0, err
		}

		accumulator = value
		position += 2
	}

	return accumulator, nil
}

func checkFinite(value float64, left float64, op byte, right float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%v %c %v is not finite: %w", left, op, right, contracts.ArithmeticError)
	}

	return nil
}
