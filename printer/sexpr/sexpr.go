// Package sexpr pretty-prints S-expressions through the oppen engine. A list is an
// inconsistent group indented one column past its opening parenthesis, so each element's
// separating space is decided on its own once the list does not fit on one line: the classic
// Lisp rebreaking style, where a list need not put every element on its own line just because
// it doesn't fit on one.
package sexpr

import (
	"fmt"
	"io"
	"strconv"

	"github.com/oppen-go/oppen"
	"github.com/oppen-go/oppen/internal/layout"
)

// Indent is the number of columns a list's elements are indented relative to its opening
// parenthesis.
const Indent = 1

// Expr is an S-expression: either an [Atom] or a [List].
type Expr interface {
	print(p *oppen.Printer) error
}

// Atom is a single unsigned integer leaf.
type Atom uint32

func (a Atom) print(p *oppen.Printer) error {
	return p.Text(strconv.FormatUint(uint64(a), 10))
}

// List is a parenthesized sequence of sub-expressions.
type List []Expr

func (l List) print(p *oppen.Printer) error {
	return p.IGroup(Indent, func() error {
		if err := p.Text("("); err != nil {
			return err
		}
		for i, e := range l {
			if i > 0 {
				if err := p.Space(); err != nil {
					return err
				}
			}
			if err := e.print(p); err != nil {
				return err
			}
		}
		return p.Text(")")
	})
}

// Print writes expr to w, wrapped at width columns.
func Print(expr Expr, w io.Writer, width int) error {
	p, err := oppen.New(oppen.NewWriterSink(w), width)
	if err != nil {
		return err
	}
	if err := expr.print(p); err != nil {
		return err
	}
	_, err = p.Finish()
	return err
}

// Format parses src and renders it, adapting [Print] to
// [github.com/oppen-go/oppen/internal/format.Printer]'s signature. Only [layout.Default] is
// meaningful here, since this package drives oppen.Printer directly rather than building a
// [layout.Doc].
func Format(src []byte, w io.Writer, width int, ft layout.Format) error {
	if ft != layout.Default {
		return fmt.Errorf("printer/sexpr: format %d has no debug rendering for this printer", ft)
	}
	expr, err := Parse(src)
	if err != nil {
		return err
	}
	return Print(expr, w, width)
}

// Parse reads a minimal S-expression syntax — parenthesized lists of unsigned integer atoms
// separated by whitespace, e.g. "(1 (2 3) (4 5 6))" — into an [Expr] tree. It exists so
// [Format] has something to parse; this package is primarily a pretty-printer, not a Lisp
// reader, so Parse rejects anything beyond that grammar.
func Parse(src []byte) (Expr, error) {
	toks := tokenize(src)
	e, rest, err := parseExpr(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("printer/sexpr: unexpected trailing input %q", rest)
	}
	return e, nil
}

func tokenize(src []byte) []string {
	var toks []string
	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		default:
			start := i
			for i < len(src) && src[i] != ' ' && src[i] != '\t' && src[i] != '\n' && src[i] != '\r' && src[i] != '(' && src[i] != ')' {
				i++
			}
			toks = append(toks, string(src[start:i]))
		}
	}
	return toks
}

func parseExpr(toks []string) (Expr, []string, error) {
	if len(toks) == 0 {
		return nil, nil, fmt.Errorf("printer/sexpr: unexpected end of input")
	}
	if toks[0] != "(" {
		n, err := strconv.ParseUint(toks[0], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("printer/sexpr: invalid atom %q: %w", toks[0], err)
		}
		return Atom(n), toks[1:], nil
	}

	rest := toks[1:]
	list := List{}
	for {
		if len(rest) == 0 {
			return nil, nil, fmt.Errorf("printer/sexpr: unterminated list")
		}
		if rest[0] == ")" {
			return list, rest[1:], nil
		}
		e, next, err := parseExpr(rest)
		if err != nil {
			return nil, nil, err
		}
		list = append(list, e)
		rest = next
	}
}
