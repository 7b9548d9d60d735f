// Package yaml pretty-prints YAML documents through internal/layout, rendering every mapping
// and sequence as a flow collection that inlines onto one line when it fits and falls back to an
// indented, one-entry-per-line block when it doesn't. Flow collections are valid YAML syntax (a
// mapping or sequence written with JSON-style brackets is indistinguishable from JSON to a YAML
// parser), so the output here round-trips through a compliant YAML reader even though it reads
// more like compact JSON than a typical block-style YAML file. Anchors are not written, so a
// document that uses aliases does not round-trip.
package yaml

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oppen-go/oppen/internal/layout"
	"github.com/oppen-go/oppen/internal/widthutil"
)

// Indent is the number of columns a mapping or sequence's entries are indented relative to its
// opening bracket.
const Indent = 2

// Print parses src as a single YAML document and writes a pretty-printed rendering to w, wrapped
// at width columns and rendered in the given debug format.
func Print(src []byte, w io.Writer, width int, ft layout.Format) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return fmt.Errorf("printer/yaml: %w", err)
	}

	d := layout.NewDoc(width)
	if len(doc.Content) > 0 {
		build(d, doc.Content[0])
	}
	return d.Render(w, ft)
}

// Format adapts Print to [github.com/oppen-go/oppen/internal/format.Printer]'s signature.
func Format(src []byte, w io.Writer, width int, ft layout.Format) error {
	return Print(src, w, width, ft)
}

func build(d *layout.Doc, n *yaml.Node) {
	switch n.Kind {
	case yaml.ScalarNode:
		buildScalar(d, n)
	case yaml.SequenceNode:
		buildCollection(d, "[", "]", n.Content, func(d *layout.Doc, item *yaml.Node) {
			build(d, item)
		})
	case yaml.MappingNode:
		buildMapping(d, n)
	case yaml.AliasNode:
		d.Text("*" + n.Value)
	default:
		d.Text(n.Value)
	}
}

func buildMapping(d *layout.Doc, n *yaml.Node) {
	type entry struct {
		key, value *yaml.Node
	}
	entries := make([]entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		entries = append(entries, entry{n.Content[i], n.Content[i+1]})
	}

	buildCollection(d, "{", "}", entries, func(d *layout.Doc, e entry) {
		buildScalar(d, e.key)
		d.Text(": ")
		build(d, e.value)
	})
}

// buildCollection lays out items between open and end as a group: a leading breakable space
// and a dedenting trailing one so the flow form reads "{ a: 1, b: 2 }", each item separated by
// ", ", and the whole thing indented by [Indent] when the group doesn't fit on one line. Both
// delimiters are scanned inside the group — matching the convention
// original_source/examples/json.rs uses for its own braces — so the group's measured width
// includes their columns and the closing delimiter dedents back to the opening one's column
// rather than staying at the fields' indentation when the group breaks.
func buildCollection[T any](d *layout.Doc, open, end string, items []T, each func(*layout.Doc, T)) {
	if len(items) == 0 {
		d.Text(open)
		d.Text(end)
		return
	}
	d.Indent(Indent, func(d *layout.Doc) {
		d.Text(open)
		d.Space()
		for i, item := range items {
			if i > 0 {
				d.Text(",").Space()
			}
			each(d, item)
		}
		d.DedentSpace(1)
		d.Text(end)
	})
}

func buildScalar(d *layout.Doc, n *yaml.Node) {
	if n.Tag == "!!null" || (n.Value == "" && n.Tag != "!!str") {
		d.Text("null")
		return
	}
	if n.Tag != "!!str" {
		d.Text(n.Value)
		return
	}

	if n.Style == yaml.DoubleQuotedStyle || n.Style == yaml.SingleQuotedStyle || needsQuote(n.Value) {
		quoted, _ := json.Marshal(n.Value)
		d.TextWidth(string(quoted), widthutil.StringWidth(string(quoted)))
		return
	}
	d.TextWidth(n.Value, widthutil.StringWidth(n.Value))
}

var reservedWord = regexp.MustCompile(`^(?i:true|false|null|~|yes|no|on|off)$`)
var looksNumeric = regexp.MustCompile(`^[-+]?[0-9.]`)
var unsafePlainScalar = regexp.MustCompile(`[:#\x00-\x1f]|^[\s\-?&*!|>'"%@` + "`" + `]`)

// needsQuote reports whether s cannot safely round-trip as a plain (unquoted) YAML scalar: it is
// empty, looks like another type (a bool/null keyword or a number), or contains a character that
// would end or reinterpret a plain scalar.
func needsQuote(s string) bool {
	return s == "" ||
		reservedWord.MatchString(s) ||
		looksNumeric.MatchString(s) ||
		unsafePlainScalar.MatchString(s) ||
		strings.Contains(s, ": ") ||
		strings.HasSuffix(s, ":")
}
