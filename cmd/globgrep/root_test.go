package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfer/goglob"
)

func TestFilterLines(t *testing.T) {
	input := "app.log\nnotes.txt\nerror.log\nREADME.md\n"
	match := goglob.Compile("*.log", true).Match

	var out bytes.Buffer
	n, err := filterLines(strings.NewReader(input), &out, match, false, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "app.log\nerror.log\n", out.String())
}

func TestFilterLinesInvert(t *testing.T) {
	input := "app.log\nnotes.txt\nerror.log\n"
	match := goglob.Compile("*.log", true).Match

	var out bytes.Buffer
	n, err := filterLines(strings.NewReader(input), &out, match, true, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "notes.txt\n", out.String())
}

func TestFilterLinesCountOnly(t *testing.T) {
	input := "a1\na2\nb1\n"
	match := goglob.Compile("a?", true).Match

	var out bytes.Buffer
	n, err := filterLines(strings.NewReader(input), &out, match, false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, out.String(), "count mode must not echo lines")
}
