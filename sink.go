package oppen

import (
	"bytes"
	"io"
	"strings"
)

// Sink is the abstract output target a Printer writes formatted text to. It
// is the engine's only external boundary: every error a Printer operation
// can return, other than the engine's own programmer-error kinds, comes from
// here.
type Sink interface {
	// WriteString appends s to the output.
	WriteString(s string) error
	// WriteSpaces appends n space characters. Implementations may override
	// the naive "one WriteString call with a repeated-space string" behavior
	// for efficiency; WriteSpacesFallback provides that default for sinks
	// that don't need to.
	WriteSpaces(n int) error
}

// WriteSpacesFallback writes n spaces to s via a single WriteString call. It
// is the default write_spaces behavior the spec describes; sinks that can
// write runs of spaces more cheaply (e.g. by writing into a fixed buffer
// directly) should implement WriteSpaces themselves instead of calling this.
func WriteSpacesFallback(s Sink, n int) error {
	if n <= 0 {
		return nil
	}
	return s.WriteString(strings.Repeat(" ", n))
}

// StringSink collects formatted output into a strings.Builder. Writes are
// infallible.
type StringSink struct {
	b strings.Builder
}

// NewStringSink creates an empty StringSink.
func NewStringSink() *StringSink {
	return &StringSink{}
}

func (s *StringSink) WriteString(str string) error {
	s.b.WriteString(str)
	return nil
}

func (s *StringSink) WriteSpaces(n int) error {
	if n <= 0 {
		return nil
	}
	s.b.Grow(n)
	for range n {
		s.b.WriteByte(' ')
	}
	return nil
}

// String returns everything written so far.
func (s *StringSink) String() string {
	return s.b.String()
}

// BytesSink collects formatted output into a bytes.Buffer. Writes are
// infallible.
type BytesSink struct {
	b bytes.Buffer
}

// NewBytesSink creates an empty BytesSink.
func NewBytesSink() *BytesSink {
	return &BytesSink{}
}

func (s *BytesSink) WriteString(str string) error {
	_, err := s.b.WriteString(str)
	return err
}

func (s *BytesSink) WriteSpaces(n int) error {
	if n <= 0 {
		return nil
	}
	s.b.Grow(n)
	for range n {
		s.b.WriteByte(' ')
	}
	return nil
}

// Bytes returns everything written so far.
func (s *BytesSink) Bytes() []byte {
	return s.b.Bytes()
}

// WriterSink adapts an io.Writer into a Sink. I/O errors from w propagate
// through every Printer operation that triggers a write.
type WriterSink struct {
	W io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

func (s *WriterSink) WriteString(str string) error {
	_, err := io.WriteString(s.W, str)
	return err
}

func (s *WriterSink) WriteSpaces(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(s.W, strings.Repeat(" ", n))
	return err
}
