package sexpr_test

import (
	"strings"
	"testing"

	"github.com/oppen-go/oppen/printer/sexpr"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestPrintFitsOnOneLine(t *testing.T) {
	expr := sexpr.List{sexpr.Atom(1), sexpr.Atom(2), sexpr.Atom(3)}

	var got strings.Builder
	require.NoErrorf(t, sexpr.Print(expr, &got, 40), "Print")
	assert.Equalsf(t, got.String(), "(1 2 3)", "flat list")
}

func TestPrintRebreaksPerElement(t *testing.T) {
	// The classic S-expression rebreaking example: a list of lists, none individually too wide,
	// but the whole thing doesn't fit at width 10. Since the outer list is an inconsistent
	// group, only the element that actually overflows forces a break; its siblings stay packed
	// on whichever line they fit.
	expr := sexpr.List{
		sexpr.List{sexpr.Atom(1)},
		sexpr.List{sexpr.Atom(2), sexpr.Atom(3)},
		sexpr.List{sexpr.Atom(4), sexpr.Atom(5), sexpr.Atom(6)},
	}

	var got strings.Builder
	require.NoErrorf(t, sexpr.Print(expr, &got, 10), "Print")
	assert.Equalsf(t, got.String(), "((1) (2 3)\n (4 5 6))", "classic rebreaking")
}

func TestPrintEmptyAndSingletonLists(t *testing.T) {
	tests := map[string]struct {
		in   sexpr.Expr
		want string
	}{
		"empty list": {sexpr.List{}, "()"},
		"singleton":  {sexpr.List{sexpr.Atom(42)}, "(42)"},
		"bare atom":  {sexpr.Atom(7), "7"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got strings.Builder
			require.NoErrorf(t, sexpr.Print(tt.in, &got, 40), "Print")
			assert.Equalsf(t, got.String(), tt.want, "Print(%v)", tt.in)
		})
	}
}

func TestParseAndFormat(t *testing.T) {
	tests := map[string]struct {
		in   string
		want sexpr.Expr
	}{
		"atom":        {"42", sexpr.Atom(42)},
		"empty list":  {"()", sexpr.List{}},
		"flat list":   {"(1 2 3)", sexpr.List{sexpr.Atom(1), sexpr.Atom(2), sexpr.Atom(3)}},
		"nested list": {"(1 (2 3))", sexpr.List{sexpr.Atom(1), sexpr.List{sexpr.Atom(2), sexpr.Atom(3)}}},
		"whitespace":  {"  ( 1   2 )  ", sexpr.List{sexpr.Atom(1), sexpr.Atom(2)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := sexpr.Parse([]byte(tt.in))
			require.NoErrorf(t, err, "Parse(%q)", tt.in)
			assert.Equalsf(t, got, tt.want, "Parse(%q)", tt.in)
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	tests := map[string]string{
		"empty input":       "",
		"unterminated list": "(1 2",
		"unexpected close":  ")",
		"non-numeric atom":  "abc",
		"trailing input":    "1 2",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := sexpr.Parse([]byte(in))
			require.NotNilf(t, err, "Parse(%q)", in)
		})
	}
}
