package main

import (
	"csvcel/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	reduceFormula := func(t *testing.T, source string) (float64, error) {
		tokens, err := Tokenize(source)
		assert.NoError(t, err)
		return Reduce(tokens)
	}

	t.Run("multiplication_before_addition", func(t *testing.T) {
		actual, err := reduceFormula(t, "=1+2*3")

		assert.NoError(t, err)
		assert.Equal(t, float64(7), actual)
	})

	t.Run("left_to_right_subtraction", func(t *testing.T) {
		actual, err := reduceFormula(t, "=10-2-3")

		assert.NoError(t, err)
		assert.Equal(t, float64(5), actual)
	})

	t.Run("left_to_right_division", func(t *testing.T) {
		actual, err := reduceFormula(t, "=100/10/5")

		assert.NoError(t, err)
		assert.Equal(t, float64(2), actual)
	})

	t.Run("mixed_tiers", func(t *testing.T) {
		actual, err := reduceFormula(t, "=2*3 - 4/2 + 1")

		assert.NoError(t, err)
		assert.Equal(t, float64(5), actual)
	})

	t.Run("signed_operand_of_multiplication", func(t *testing.T) {
		actual, err := reduceFormula(t, "=2*-3")

		assert.NoError(t, err)
		assert.Equal(t, float64(-6), actual)
	})

	t.Run("single_value", func(t *testing.T) {
		actual, err := Reduce(contracts.Expression{contracts.NewValueToken(4.25)})

		assert.NoError(t, err)
		assert.Equal(t, 4.25, actual)
	})

	t.Run("idempotent_on_own_output", func(t *testing.T) {
		tokens, err := Tokenize("=8*4-2")
		assert.NoError(t, err)

		first, err := Reduce(tokens)
		assert.NoError(t, err)

		again, err := Reduce(contracts.Expression{contracts.NewValueToken(first)})
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("empty_sequence", func(t *testing.T) {
		_, err := Reduce(contracts.Expression{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.MalformedExpressionError)
	})

	t.Run("trailing_operator", func(t *testing.T) {
		_, err := reduceFormula(t, "=1+")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.MalformedExpressionError)
	})

	t.Run("leading_operator", func(t *testing.T) {
		_, err := reduceFormula(t, "=*2")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.MalformedExpressionError)
	})

	t.Run("doubled_operator", func(t *testing.T) {
		_, err := reduceFormula(t, "=1**2")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.MalformedExpressionError)
	})

	t.Run("leftover_reference", func(t *testing.T) {
		_, err := Reduce(contracts.Expression{contracts.NewRefToken("A1")})

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.MalformedExpressionError)
	})

	t.Run("division_by_zero", func(t *testing.T) {
		_, err := reduceFormula(t, "=1/0")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.ArithmeticError)
		assert.Contains(t, err.Error(), "1")
		assert.Contains(t, err.Error(), "0")
	})

	t.Run("zero_by_zero", func(t *testing.T) {
		_, err := reduceFormula(t, "=0/0")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.ArithmeticError)
	})
}
