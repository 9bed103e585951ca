package main

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
)

func TestJsonRenderer_RenderGrid(t *testing.T) {
	sheet, err := ParseGrid("A,B\n1,=A1+1\n")
	assert.NoError(t, err)

	var out bytes.Buffer
	err = NewJsonRenderer().RenderGrid(&out, sheet)

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\n"))

	var document GridDocument
	assert.NoError(t, json.Unmarshal(out.Bytes(), &document))

	assert.Equal(t, []string{"A", "B"}, document.Header)
	assert.Len(t, document.Cells, 2)
	assert.Equal(t, "A1", document.Cells[0].Identifier)
	assert.Equal(t, "value", document.Cells[0].Kind)
	assert.Equal(t, "B1", document.Cells[1].Identifier)
	assert.Equal(t, "=A1+1", document.Cells[1].Source)
	assert.Equal(t, "expression", document.Cells[1].Kind)
}

func TestJsonRenderer_RenderReport(t *testing.T) {
	sheet, err := ParseGrid("A,B\n1,=A1+1\n")
	assert.NoError(t, err)

	report, err := NewSheetEvaluator().EvaluateSheet(sheet)
	assert.NoError(t, err)

	var out bytes.Buffer
	err = NewJsonRenderer().RenderReport(&out, report)

	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Contains(t, decoded, "header")
	assert.Contains(t, decoded, "cells")
	cells := decoded["cells"].([]any)
	assert.Len(t, cells, 2)

	second := cells[1].(map[string]any)
	assert.Equal(t, "B1", second["identifier"])
	assert.Equal(t, float64(2), second["result"])
}
