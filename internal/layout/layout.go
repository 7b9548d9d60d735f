// Package layout provides a declarative toolkit for building pretty printers and code
// formatters on top of [github.com/oppen-go/oppen].
//
// It implements a DOM-like structure that specifies how text should be laid out with respect to
// line breaking and indentation. The core abstraction is [Doc], a tree of tags that describe
// layout constraints rather than explicit formatting decisions.
//
// A [Doc] is built by chaining method calls that add tags:
//   - [Doc.Text]: adds literal text content, measured as len(content)
//   - [Doc.TextWidth]: adds literal text content with an explicit display width
//   - [Doc.Space]: adds a breakable space — a space if the enclosing group fits on one line, a
//     newline otherwise
//   - [Doc.DedentSpace]: like [Doc.Space], but a break returns to the indentation level from
//     before the nearest enclosing [Doc.Indent] instead of staying at its level
//   - [Doc.Break]: adds one or more unconditional newlines
//   - [Doc.Group]: marks a sequence of tags that should be kept on one line if possible
//   - [Doc.Indent]: increases indentation level for a sequence of tags
//
// Unlike the measure-then-layout engines this package used to wrap, rendering a [Doc] does not
// compute group widths up front: each [Doc.Group] becomes an oppen group, and oppen's own
// bounded-lookahead scan decides, directive by directive, whether it fits. [Doc.Render] simply
// walks the tree once, calling the corresponding oppen.Printer method for each tag.
package layout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/oppen-go/oppen"
)

// Format specifies the output representation for rendering a [Doc].
type Format = int

const (
	// Default renders the formatted output as text.
	Default Format = iota
	// Layout renders the document structure using HTML-like syntax, showing every tag as built,
	// before any fit decision has been made. Useful for inspecting a Doc's shape.
	Layout
	// Go renders the document as a runnable Go program that reproduces the same Doc.
	Go
)

var formats = map[string]Format{
	"default": Default,
	"go":      Go,
	"layout":  Layout,
}

var validFormats = [3]string{"default", "go", "layout"}

// NewFormat converts a string to a [Format] constant. Valid values are "default", "layout", and
// "go". Returns an error if the format string is invalid.
func NewFormat(format string) (Format, error) {
	if f, ok := formats[format]; ok {
		return f, nil
	}
	return Default, fmt.Errorf("invalid format string: %q, valid ones are: %q", format, validFormats)
}

type tagKind int

const (
	tagText tagKind = iota
	tagSpace
	tagBreak
	tagGroup
	tagIndent
	tagDedentSpace
)

// node is one tag in a Doc's tree. Group and Indent nodes hold their body in children.
type node struct {
	kind     tagKind
	content  string // tagText
	width    int    // tagText, only when hasWidth is set; tagDedentSpace: flat size
	hasWidth bool   // tagText: content's width was given explicitly, not len(content)
	count    int    // tagBreak: number of newlines; tagIndent: columns; tagDedentSpace: columns to cancel
	children []node // tagGroup, tagIndent
}

// Doc represents a document for layout formatting. Build it by chaining method calls like
// [Doc.Text], [Doc.Space], [Doc.Break], [Doc.Group], and [Doc.Indent]. Render it using
// [Doc.Render].
type Doc struct {
	maxColumn int
	root      []node
	open      [][]node // stack of in-progress Group/Indent bodies
	indent    int       // accumulated Indent columns for the body currently being built
	indentRun []int     // columns of each currently open Indent, innermost last
}

// NewDoc creates a new document wrapping at the given maximum column width.
func NewDoc(maxColumn int) *Doc {
	return &Doc{maxColumn: maxColumn}
}

// Clone creates a deep copy of the Doc. Unlike the engines this package used to wrap, rendering
// a Doc no longer mutates it, so a Doc can be rendered more than once without cloning it.
func (d *Doc) Clone() *Doc {
	return &Doc{maxColumn: d.maxColumn, root: cloneNodes(d.root)}
}

func cloneNodes(nodes []node) []node {
	if nodes == nil {
		return nil
	}
	clone := make([]node, len(nodes))
	for i, n := range nodes {
		n.children = cloneNodes(n.children)
		clone[i] = n
	}
	return clone
}

func (d *Doc) cur() *[]node {
	if len(d.open) == 0 {
		return &d.root
	}
	return &d.open[len(d.open)-1]
}

func (d *Doc) push(n node) *Doc {
	cur := d.cur()
	*cur = append(*cur, n)
	return d
}

// Text adds literal text content to the document, measuring its width as len(content).
func (d *Doc) Text(content string) *Doc {
	return d.push(node{kind: tagText, content: content})
}

// TextWidth adds literal text content with an explicit display width, for callers whose
// content does not occupy one column per byte — wide runes, zero-width marks, or anything
// else len(content) would misrepresent. See internal/widthutil for computing width.
func (d *Doc) TextWidth(content string, width int) *Doc {
	return d.push(node{kind: tagText, content: content, width: width, hasWidth: true})
}

// Space adds a breakable space: a single space if the enclosing group fits on one line, a
// newline otherwise.
func (d *Doc) Space() *Doc {
	return d.push(node{kind: tagSpace})
}

// DedentSpace adds a break that renders as size spaces if the enclosing group fits on one
// line, or a newline back at the indentation level from before the nearest enclosing [Doc.Indent]
// otherwise — the layout-level equivalent of oppen's ScanBreak(size, -delta). Useful for a
// closing delimiter that should line up with its opening one rather than with the content
// indented between them. Calling it outside any Indent cancels nothing.
func (d *Doc) DedentSpace(size int) *Doc {
	delta := 0
	if n := len(d.indentRun); n > 0 {
		delta = d.indentRun[n-1]
	}
	return d.push(node{kind: tagDedentSpace, width: size, count: delta})
}

// Break adds one or more unconditional newlines. The count must be positive.
func (d *Doc) Break(count int) *Doc {
	if count <= 0 {
		panic("Break: count must be positive")
	}
	return d.push(node{kind: tagBreak, count: count})
}

// Group marks a sequence of content that is laid out on one line if it fits within the maximum
// column width, or broken across multiple lines, every [Doc.Space] becoming a newline, if it
// doesn't.
func (d *Doc) Group(body func(*Doc)) *Doc {
	return d.nested(node{kind: tagGroup}, body)
}

// Indent increases the indentation level by the given number of columns for the content added
// in body, applied at the start of each line after a newline within it. Indent introduces its
// own group: the indented region's fit is decided independently of its surroundings.
func (d *Doc) Indent(columns int, body func(*Doc)) *Doc {
	outer := d.indent
	d.indent = safeAdd(outer, columns)
	d.indentRun = append(d.indentRun, columns)
	defer func() {
		d.indent = outer
		d.indentRun = d.indentRun[:len(d.indentRun)-1]
	}()
	return d.nested(node{kind: tagIndent, count: columns}, body)
}

func (d *Doc) nested(n node, body func(*Doc)) *Doc {
	d.open = append(d.open, nil)
	body(d)
	last := len(d.open) - 1
	n.children = d.open[last]
	d.open = d.open[:last]
	return d.push(n)
}

// Render writes the formatted document to w in the given format.
func (d *Doc) Render(w io.Writer, format Format) error {
	switch format {
	case Layout:
		_, err := fmt.Fprint(w, d)
		return err
	case Go:
		_, err := fmt.Fprintf(w, goTemplate, goString(d, 1))
		return err
	}

	sink := oppen.NewWriterSink(w)
	p, err := oppen.New(sink, d.maxColumn)
	if err != nil {
		return err
	}
	if err := renderNodes(p, d.root); err != nil {
		return err
	}
	_, err = p.Finish()
	return err
}

const goTemplate = `package main

import (
	"os"

	"github.com/oppen-go/oppen/internal/layout"
)

func main() {
	d := %s
	d.Render(os.Stdout, layout.Default)
}
`

func renderNodes(p *oppen.Printer, nodes []node) error {
	for _, n := range nodes {
		switch n.kind {
		case tagText:
			if n.hasWidth {
				if err := p.ScanText(n.content, n.width); err != nil {
					return err
				}
			} else if err := p.Text(n.content); err != nil {
				return err
			}
		case tagSpace:
			if err := p.Space(); err != nil {
				return err
			}
		case tagDedentSpace:
			if err := p.ScanBreak(n.width, -n.count); err != nil {
				return err
			}
		case tagBreak:
			for range n.count {
				if err := p.HardBreak(); err != nil {
					return err
				}
			}
		case tagGroup:
			if err := p.CGroup(0, func() error { return renderNodes(p, n.children) }); err != nil {
				return err
			}
		case tagIndent:
			if err := p.CGroup(n.count, func() error { return renderNodes(p, n.children) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns the document structure as HTML-like markup, showing every tag as built. This
// implements [fmt.Stringer] and is like rendering with [Layout] format. Useful for debugging a
// Doc's shape before it is handed to the renderer.
func (d *Doc) String() string {
	var sb strings.Builder
	stringNodes(&sb, d.root, 0)
	return sb.String()
}

func stringNodes(w io.Writer, nodes []node, indent int) {
	for _, n := range nodes {
		writeIndent(w, indent)
		switch n.kind {
		case tagText:
			if n.hasWidth {
				fmt.Fprintf(w, "<text content=%q width=%d/>\n", n.content, n.width)
			} else {
				fmt.Fprintf(w, "<text content=%q/>\n", n.content)
			}
		case tagSpace:
			fmt.Fprint(w, "<space/>\n")
		case tagDedentSpace:
			fmt.Fprintf(w, "<dedent-space size=%d/>\n", n.width)
		case tagBreak:
			fmt.Fprintf(w, "<break count=%d/>\n", n.count)
		case tagGroup:
			fmt.Fprint(w, "<group>\n")
			stringNodes(w, n.children, indent+1)
			writeIndent(w, indent)
			fmt.Fprint(w, "</group>\n")
		case tagIndent:
			fmt.Fprintf(w, "<indent columns=%d>\n", n.count)
			stringNodes(w, n.children, indent+1)
			writeIndent(w, indent)
			fmt.Fprint(w, "</indent>\n")
		}
	}
}

func writeIndent(w io.Writer, columns int) {
	for range columns {
		fmt.Fprint(w, "\t")
	}
}

// GoString returns the document as runnable Go code that reproduces it. This implements
// [fmt.GoStringer] and is like rendering with [Go] format.
func (d *Doc) GoString() string {
	return goString(d, 0)
}

func goString(d *Doc, indent int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "layout.NewDoc(%d)\n", d.maxColumn)
	goStringNodes(&sb, d.root, indent)
	return sb.String()
}

func goStringNodes(w io.Writer, nodes []node, indent int) {
	first := true
	for _, n := range nodes {
		if first {
			writeIndent(w, indent)
			fmt.Fprint(w, "d.\n")
			indent++
		} else {
			fmt.Fprint(w, ".\n")
		}
		writeIndent(w, indent)

		switch n.kind {
		case tagText:
			if n.hasWidth {
				fmt.Fprintf(w, "TextWidth(%q, %d)", n.content, n.width)
			} else {
				fmt.Fprintf(w, "Text(%q)", n.content)
			}
		case tagSpace:
			fmt.Fprint(w, "Space()")
		case tagDedentSpace:
			fmt.Fprintf(w, "DedentSpace(%d)", n.width)
		case tagBreak:
			fmt.Fprintf(w, "Break(%d)", n.count)
		case tagGroup:
			fmt.Fprint(w, "Group(func(d *layout.Doc) {\n")
			goStringNodes(w, n.children, indent+1)
			fmt.Fprintln(w)
			writeIndent(w, indent)
			fmt.Fprint(w, "})")
		case tagIndent:
			fmt.Fprintf(w, "Indent(%d, func(d *layout.Doc) {\n", n.count)
			goStringNodes(w, n.children, indent+1)
			fmt.Fprintln(w)
			writeIndent(w, indent)
			fmt.Fprint(w, "})")
		}
		first = false
	}
}

// safeAdd adds b to a, panicking on overflow or underflow. Indent columns accumulate across
// nested [Doc.Indent] calls for the lifetime of a render, so a pathologically deep or
// adversarial Doc should fail loudly rather than wrap silently.
func safeAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		panic(fmt.Errorf("overflow adding %d to %d", a, b))
	}
	if b < 0 && a < math.MinInt-b {
		panic(fmt.Errorf("underflow adding %d to %d", a, b))
	}
	return a + b
}
