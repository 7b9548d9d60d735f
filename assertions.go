package oppen

import "github.com/oppen-go/oppen/internal/assert"

// These check invariants that are bugs in this package itself if ever
// violated, as opposed to the programmer-error Kinds in errors.go, which are
// conditions a caller can trigger and which are returned, not panicked. See
// DESIGN.md for the rationale behind keeping the two separate.

func assertNonEmptyIndent(indent []int) {
	assert.That(len(indent) > 0, "oppen: indent stack must never be empty")
}

// assertDequeIsSuffix checks the invariant pruning depends on: the deque
// always holds a contiguous suffix of the currently-open group chain,
// innermost last. Pruning only ever evicts from the front, so the deque can
// shrink but never develops a hole; ScanEnd relies on this to tell "my own
// frame was already flushed by prune" (deque empty) apart from "my frame is
// right here at the back" (deque non-empty) without tracking group identity.
func assertDequeIsSuffix(deque []groupFrame) {
	for i := 1; i < len(deque); i++ {
		assert.That(deque[i].start >= deque[i-1].start,
			"oppen: scan deque start positions must be non-decreasing front to back")
	}
}
