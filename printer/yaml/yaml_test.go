package yaml_test

import (
	"strings"
	"testing"

	"github.com/oppen-go/oppen/internal/layout"
	"github.com/oppen-go/oppen/printer/yaml"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestPrintScalars(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"int":           {"42", "42"},
		"float":         {"1.5", "1.5"},
		"bool":          {"true", "true"},
		"null":          {"null", "null"},
		"plain string":  {"hello", "hello"},
		"quoted string": {`"hello"`, `"hello"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got strings.Builder
			require.NoErrorf(t, yaml.Print([]byte(tt.in), &got, 80, layout.Default), "Print(%s)", tt.in)
			assert.Equalsf(t, got.String(), tt.want, "Print(%s)", tt.in)
		})
	}
}

func TestPrintMappingFitsOnOneLine(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Print([]byte("a: 1\nb: 2\n"), &got, 80, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "{ a: 1, b: 2 }", "flat mapping")
}

func TestPrintSequenceFitsOnOneLine(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Print([]byte("- 1\n- 2\n- 3\n"), &got, 80, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "[ 1, 2, 3 ]", "flat sequence")
}

func TestPrintMappingBreaksIntoBlockWhenItDoesNotFit(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Print([]byte("a: 1\nb: 2\n"), &got, 8, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "{\n  a: 1,\n  b: 2 }", "block mapping")
}

func TestPrintMappingDelimitersCountTowardWidth(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Print([]byte("a: 1\n"), &got, 7, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "{\n  a: 1\n}", "delimiters included in the group's measured width")
}

func TestPrintEmptyMappingAndSequence(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Print([]byte("{}"), &got, 80, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "{}", "empty mapping")

	got.Reset()
	require.NoErrorf(t, yaml.Print([]byte("[]"), &got, 80, layout.Default), "Print")
	assert.Equalsf(t, got.String(), "[]", "empty sequence")
}

func TestPrintInvalidInputReturnsError(t *testing.T) {
	var got strings.Builder
	err := yaml.Print([]byte("a: [1, 2\n"), &got, 80, layout.Default)
	require.NotNilf(t, err, "Print(invalid)")
}

func TestFormatLayoutShowsDocStructure(t *testing.T) {
	var got strings.Builder
	require.NoErrorf(t, yaml.Format([]byte("a: 1\n"), &got, 80, layout.Layout), "Format")
	assert.Equalsf(t, got.String(), `<indent columns=2>
	<text content="{"/>
	<space/>
	<text content="a" width=1/>
	<text content=": "/>
	<text content="1"/>
	<dedent-space size=1/>
	<text content="}"/>
</indent>
`, "layout dump")
}
