package oppen

// renderText writes content to the sink, flushing any pending indent first
// so that blank lines never carry trailing whitespace, then debits width
// from the remaining column budget.
func (p *Printer) renderText(content string, width int) error {
	if p.pendingIndent > 0 {
		if err := p.sink.WriteSpaces(p.pendingIndent); err != nil {
			return sinkError(err)
		}
		p.pendingIndent = 0
	}
	if err := p.sink.WriteString(content); err != nil {
		return sinkError(err)
	}
	p.remaining = saturatingSub(p.remaining, width)
	return nil
}

// renderBreak emits size spaces or a newline plus indent, depending on the
// render state of the innermost enclosing group — the top of renderStack:
//
//   - fits: always horizontal.
//   - broken and consistent: always vertical.
//   - broken and inconsistent: vertical unless size fits in what remains on
//     the current line (per-break greedy flow).
//   - no enclosing group (top-level, outside any group): treated as broken
//     and inconsistent.
func (p *Printer) renderBreak(size, indent int) error {
	fits := false
	consistent := false
	if n := len(p.renderStack); n > 0 {
		top := p.renderStack[n-1]
		fits, consistent = top.fits, top.consistent
	}

	if fits || (!consistent && size <= p.remaining) {
		if err := p.sink.WriteSpaces(size); err != nil {
			return sinkError(err)
		}
		p.remaining = saturatingSub(p.remaining, size)
		return nil
	}

	if err := p.sink.WriteString("\n"); err != nil {
		return sinkError(err)
	}
	p.pendingIndent = indent
	p.remaining = saturatingSub(p.lineWidth, indent)
	return nil
}

// renderDirective dispatches a single directive — already known to belong
// to a group whose fate (fit or break) has been decided, or to be at the
// implicit top level — to the renderer.
func (p *Printer) renderDirective(d directive) error {
	switch dir := d.(type) {
	case textDirective:
		return p.renderText(dir.content, dir.width)
	case breakDirective:
		return p.renderBreak(dir.size, dir.indent)
	case *groupDirective:
		fits := dir.width <= p.remaining
		return p.renderGroupFrame(dir.consistent, fits, dir.children)
	default:
		panic("oppen: unknown directive type")
	}
}

// renderGroupFrame renders the body of a group whose fit decision has
// already been made (fits), pushing a render frame so that any direct
// break inside dispatches against this group's state, then popping it once
// every child has been rendered. Nested groups are re-evaluated
// independently when renderDirective recurses into them: a broken outer
// group can still contain an inner group that fits on its own line.
func (p *Printer) renderGroupFrame(consistent, fits bool, children []directive) error {
	p.renderStack = append(p.renderStack, renderFrame{fits: fits, consistent: consistent})
	defer func() {
		p.renderStack = p.renderStack[:len(p.renderStack)-1]
	}()

	for _, child := range children {
		if err := p.renderDirective(child); err != nil {
			return err
		}
	}
	return nil
}
