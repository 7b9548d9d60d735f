// Package oppen implements a streaming pretty-printing engine in the style
// of Oppen's bounded pretty-printing algorithm, as formalized by Chitil in
// "Linear, bounded, functional pretty-printing".
//
// A [Printer] consumes a sequence of layout directives — text, breakable
// whitespace, and nested groups with indentation — and emits a formatted
// document to a [Sink], wrapping groups onto multiple lines only when they
// would overflow the configured line width. The defining property of the
// algorithm is that it decides whether a group fits on one line while the
// input is still arriving in forward order, without ever buffering more than
// roughly one line's worth of pending output: a small bounded lookahead
// queue (the scan deque) holds only the groups whose fit decision is still
// ambiguous.
//
// Callers drive five primitive operations — [Printer.ScanText],
// [Printer.ScanBreak], [Printer.ScanBegin], [Printer.ScanEnd], and
// [Printer.Finish] — directly, or through the small helper vocabulary in
// helpers.go ([Printer.Text], [Printer.Space], [Printer.Group], and so on).
package oppen

// MaxWidth is the break size [Printer.HardBreak] passes to ScanBreak: large
// enough that the break never fits horizontally, forcing its enclosing group
// to break and always taking the vertical branch inside an inconsistent
// group.
const MaxWidth = 1<<31 - 1

// position is a monotonically increasing count of code units that would be
// emitted if every pending break were rendered horizontal. Group widths are
// computed as differences of positions.
type position int64

// directive is the tagged variant of content queued on the scan deque.
type directive interface {
	isDirective()
}

type textDirective struct {
	content string
	width   int
}

func (textDirective) isDirective() {}

type breakDirective struct {
	size   int
	indent int
}

func (breakDirective) isDirective() {}

// groupDirective is a fully-closed group: its width has been measured and
// its children are fixed.
type groupDirective struct {
	width      int
	children   []directive
	consistent bool
}

func (*groupDirective) isDirective() {}

// groupFrame is an in-progress group held on the scan deque: a group whose
// fit decision is not yet known because it is still accumulating children.
type groupFrame struct {
	start      position
	children   []directive
	consistent bool
}

// renderFrame records, for a group currently being emitted, whether it was
// decided to fit on one line (Fits) or to break across lines (and whether
// that breaking is consistent).
type renderFrame struct {
	fits       bool
	consistent bool
}

// Printer is a streaming pretty printer bound to one [Sink] and one line
// width. It is not safe for concurrent use: a Printer is driven by a single
// caller in call order, like a builder.
type Printer struct {
	sink      Sink
	lineWidth int

	position  position
	remaining int

	indent        []int
	pendingIndent int

	// deque is the scan deque: groups still accumulating children, whose
	// accumulated width is therefore still ≤ remaining. It is non-decreasing
	// by start position from front to back.
	deque []groupFrame

	// renderStack mirrors the nesting of groups currently being emitted by
	// the renderer.
	renderStack []renderFrame

	finished bool
}

// New creates a Printer that writes to sink, wrapping at lineWidth code
// units per line. lineWidth must be in [1, 65536]; out of range returns
// InvalidLineWidth. After construction an implicit outermost group is open;
// text and breaks may be scanned immediately, and Finish closes it.
func New(sink Sink, lineWidth int) (*Printer, error) {
	if lineWidth < 1 || lineWidth > 65536 {
		return nil, newError(InvalidLineWidth)
	}
	return &Printer{
		sink:      sink,
		lineWidth: lineWidth,
		remaining: lineWidth,
		indent:    []int{0},
	}, nil
}

func (p *Printer) indentTop() int {
	assertNonEmptyIndent(p.indent)
	return p.indent[len(p.indent)-1]
}

func saturatingSub(a, b int) int {
	r := a - b
	if r < 0 {
		return 0
	}
	return r
}
