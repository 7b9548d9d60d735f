package oppen

// ScanText queues a text directive: content to emit literally, and width,
// the number of code units it occupies (the caller's responsibility — the
// engine makes no assumption about how width relates to len(content)).
// Advances the logical position by width.
func (p *Printer) ScanText(content string, width int) error {
	return p.scan(width, textDirective{content: content, width: width})
}

// ScanBreak queues a break directive: size code units if the enclosing
// group is rendered horizontally, otherwise a newline followed by the
// computed absolute indent. indentDelta is relative to the current
// indent-stack top; if the result is negative, ScanBreak returns
// NegativeIndent and queues nothing.
func (p *Printer) ScanBreak(size int, indentDelta int) error {
	indent := p.indentTop() + indentDelta
	if indent < 0 {
		return newError(NegativeIndent)
	}
	return p.scan(size, breakDirective{size: size, indent: indent})
}

// ScanBegin opens a new group. indentDelta is added to the current
// indent-stack top and pushed for the duration of the group; consistent
// selects, if the group does not fit on one line, whether every direct
// break inside it becomes a newline (true) or each is tested individually
// against the remaining column budget (false).
func (p *Printer) ScanBegin(indentDelta int, consistent bool) {
	p.indent = append(p.indent, p.indentTop()+indentDelta)
	p.deque = append(p.deque, groupFrame{start: p.position, consistent: consistent})
}

// ScanEnd closes the group opened by the matching ScanBegin. If another
// group is still open around it, the closed group is nested into that
// group's pending children with its measured width. If it was the
// outermost open group, it is handed to the renderer directly. If it was
// already evicted from the scan deque by prune — because it could not
// possibly fit and its content was rendered directly as it was scanned —
// ScanEnd has nothing left to do. ScanEnd returns UnmatchedEnd if there is
// no open group to close at all.
//
// The indent stack, not the deque, is what tracks "is a group open": prune
// can empty the deque out from under a group that is still logically open
// (see prune), so deque emptiness alone cannot distinguish "nothing is
// open" from "the open group's frame was already flushed".
func (p *Printer) ScanEnd() error {
	if len(p.indent) <= 1 {
		return newError(UnmatchedEnd)
	}
	p.indent = p.indent[:len(p.indent)-1]

	if len(p.deque) == 0 {
		return nil
	}
	assertDequeIsSuffix(p.deque)

	frame := p.deque[len(p.deque)-1]
	p.deque = p.deque[:len(p.deque)-1]

	group := &groupDirective{
		width:      int(p.position - frame.start),
		children:   frame.children,
		consistent: frame.consistent,
	}

	if len(p.deque) > 0 {
		back := len(p.deque) - 1
		p.deque[back].children = append(p.deque[back].children, group)
		return nil
	}
	return p.renderDirective(group)
}

// Finish closes the implicit outermost group and returns the sink. It is a
// programmer error (UnclosedGroup) to call Finish while a group opened by
// ScanBegin is still open, whether or not that group's frame is still
// sitting in the scan deque (see ScanEnd) — so this checks the indent
// stack, which always reflects true open-group depth, rather than the
// deque, which does not.
func (p *Printer) Finish() (Sink, error) {
	if p.finished {
		return p.sink, nil
	}
	if len(p.indent) != 1 {
		return nil, newError(UnclosedGroup)
	}
	p.finished = true
	return p.sink, nil
}

// scan is the shared dispatch for ScanText and ScanBreak: advance position,
// then either append the directive to the topmost open group's pending
// children, or — if no group is open — forward it straight to the
// renderer. Appending to an open group is always followed by prune.
func (p *Printer) scan(length int, d directive) error {
	p.position += position(length)
	if len(p.deque) > 0 {
		back := len(p.deque) - 1
		p.deque[back].children = append(p.deque[back].children, d)
		return p.prune()
	}
	return p.renderDirective(d)
}

// prune evicts groups from the front of the deque whose accumulated width
// already exceeds the remaining column budget. Such a group cannot possibly
// fit regardless of what arrives later, so it can be committed to "break"
// and rendered without buffering any more input. This is the mechanism that
// bounds the deque to O(line_width) and makes the engine linear in the size
// of the output: the deque only ever holds groups whose fit decision is
// still ambiguous.
func (p *Printer) prune() error {
	for len(p.deque) > 0 {
		front := p.deque[0]
		if int(p.position-front.start) <= p.remaining {
			break
		}
		p.deque = p.deque[1:]
		if err := p.renderGroupFrame(front.consistent, false, front.children); err != nil {
			return err
		}
	}
	return nil
}
