// Package json pretty-prints arbitrary JSON values through the oppen engine directly: arrays
// use an inconsistent group so each element's comma-break is decided on its own once the array
// doesn't fit on one line, objects use a consistent group so every field gets its own line as
// soon as any of them do.
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/oppen-go/oppen"
	"github.com/oppen-go/oppen/internal/layout"
	"github.com/oppen-go/oppen/internal/widthutil"
)

// Indent is the number of columns a nested array or object is indented relative to its
// opening bracket.
const Indent = 2

// Print parses src as a single JSON value and writes a pretty-printed rendering to w, wrapped
// at width columns. Object fields render in sorted key order: a map[string]any carries no
// order of its own, and sorting is what makes repeated runs reproducible.
func Print(src []byte, w io.Writer, width int) error {
	var value any
	if err := json.Unmarshal(src, &value); err != nil {
		return fmt.Errorf("printer/json: %w", err)
	}

	p, err := oppen.New(oppen.NewWriterSink(w), width)
	if err != nil {
		return err
	}
	if err := build(p, value); err != nil {
		return err
	}
	_, err = p.Finish()
	return err
}

// Format adapts Print to [github.com/oppen-go/oppen/internal/format.Printer]'s signature. Only
// [layout.Default] is meaningful here: this package drives oppen.Printer directly rather than
// building a [layout.Doc], so the structural debug modes ([layout.Layout], [layout.Go]) have
// nothing to dump.
func Format(src []byte, w io.Writer, width int, ft layout.Format) error {
	if ft != layout.Default {
		return fmt.Errorf("printer/json: format %d has no debug rendering for this printer", ft)
	}
	return Print(src, w, width)
}

func build(p *oppen.Printer, value any) error {
	switch v := value.(type) {
	case nil:
		return p.Text("null")
	case bool:
		if v {
			return p.Text("true")
		}
		return p.Text("false")
	case float64:
		return p.Text(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		return writeString(p, v)
	case []any:
		return buildArray(p, v)
	case map[string]any:
		return buildObject(p, v)
	default:
		return p.Text(fmt.Sprintf("%v", v))
	}
}

func buildArray(p *oppen.Printer, arr []any) error {
	return p.IGroup(Indent, func() error {
		if err := p.Text("["); err != nil {
			return err
		}
		if len(arr) > 0 {
			if err := p.ZeroBreak(); err != nil {
				return err
			}
			for i, v := range arr {
				if i > 0 {
					if err := p.Text(","); err != nil {
						return err
					}
					if err := p.Space(); err != nil {
						return err
					}
				}
				if err := build(p, v); err != nil {
					return err
				}
			}
			if err := p.ScanBreak(0, -Indent); err != nil {
				return err
			}
		}
		return p.Text("]")
	})
}

func buildObject(p *oppen.Printer, obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return p.CGroup(Indent, func() error {
		if err := p.Text("{"); err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := p.ZeroBreak(); err != nil {
				return err
			}
			for i, k := range keys {
				if i > 0 {
					if err := p.Text(","); err != nil {
						return err
					}
					if err := p.Space(); err != nil {
						return err
					}
				}
				if err := writeString(p, k); err != nil {
					return err
				}
				if err := p.Text(": "); err != nil {
					return err
				}
				if err := build(p, obj[k]); err != nil {
					return err
				}
			}
			if err := p.ScanBreak(0, -Indent); err != nil {
				return err
			}
		}
		return p.Text("}")
	})
}

// writeString quotes s as a JSON string literal and scans it with its display width rather
// than its byte length, so a value full of wide runes doesn't throw off where the engine
// thinks a line ends.
func writeString(p *oppen.Printer, s string) error {
	quoted, _ := json.Marshal(s)
	return p.ScanText(string(quoted), widthutil.StringWidth(string(quoted)))
}
