package tabprint

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Sink is a byte destination that must be flushed once rendering ends.
type Sink interface {
	io.Writer
	Flush() error
}

type flusher interface {
	Flush() error
}

type streamSink struct {
	bw   *bufio.Writer
	dest io.Writer
}

// NewStreamSink returns a buffered Sink writing to w. Flush drains the
// buffer and then flushes w when w has a Flush() error method.
func NewStreamSink(w io.Writer) Sink {
	return &streamSink{bw: bufio.NewWriter(w), dest: w}
}

func (s *streamSink) Write(p []byte) (int, error) { return s.bw.Write(p) }

func (s *streamSink) Flush() error {
	if err := s.bw.Flush(); err != nil {
		return err
	}
	if f, ok := s.dest.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// StringSink accumulates UTF-8 text in memory.
type StringSink struct {
	sb strings.Builder
}

// Write appends p. It fails with ErrEncoding, appending nothing, when p is
// not valid UTF-8.
func (s *StringSink) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, fmt.Errorf("%w: cannot decode %d bytes", ErrEncoding, len(p))
	}
	return s.sb.Write(p)
}

// Flush is a no-op.
func (s *StringSink) Flush() error { return nil }

// String returns everything written so far.
func (s *StringSink) String() string { return s.sb.String() }
