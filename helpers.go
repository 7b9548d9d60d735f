package oppen

// Text writes a literal string, measuring its width as len(text) (its byte
// length). Callers that need a different notion of width — measuring
// display columns for multi-byte text, for instance — should call ScanText
// directly with a width they computed themselves; see internal/widthutil
// for one such helper.
func (p *Printer) Text(text string) error {
	return p.ScanText(text, len(text))
}

// Space writes a single space if the enclosing group fits on one line, or a
// newline otherwise.
func (p *Printer) Space() error {
	return p.ScanBreak(1, 0)
}

// SoftBreak is an alias for Space: a single space if the enclosing group
// fits, a newline otherwise.
func (p *Printer) SoftBreak() error {
	return p.ScanBreak(1, 0)
}

// ZeroBreak is a break with no horizontal width: nothing if the enclosing
// group fits, a newline otherwise.
func (p *Printer) ZeroBreak() error {
	return p.ScanBreak(0, 0)
}

// Spaces writes n spaces if the enclosing group fits, or a newline
// otherwise.
func (p *Printer) Spaces(n int) error {
	return p.ScanBreak(n, 0)
}

// HardBreak always breaks: it is a break whose size is large enough that it
// can never fit horizontally, so it forces its enclosing group to break and
// always takes the vertical branch inside an inconsistent group.
func (p *Printer) HardBreak() error {
	return p.ScanBreak(MaxWidth, 0)
}

// Group lays out body as a group indented by delta columns relative to the
// current indent level: laid out on one line if it fits within the
// remaining width, or with every break inside resolved per consistent
// (every direct break becomes a newline) or not (each direct break is
// tested individually against the remaining width).
func (p *Printer) Group(delta int, consistent bool, body func() error) error {
	p.ScanBegin(delta, consistent)
	if err := body(); err != nil {
		return err
	}
	return p.ScanEnd()
}

// CGroup is Group with consistent breaking: if the group does not fit on
// one line, every direct break inside it becomes a newline.
func (p *Printer) CGroup(delta int, body func() error) error {
	return p.Group(delta, true, body)
}

// IGroup is Group with inconsistent (greedy) breaking: if the group does
// not fit on one line, each direct break inside it is tested individually
// against the remaining width.
func (p *Printer) IGroup(delta int, body func() error) error {
	return p.Group(delta, false, body)
}
