package tabprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// RenderTo writes the boxed rendering of t to s and flushes it.
//
// The output is a rule, the title line, a rule, and then a content line
// followed by a rule for every row: 2*t.Len()+3 lines in total. A failed
// write may leave s partially written.
func (t *Table) RenderTo(s Sink) error {
	widths := t.Widths()
	if err := t.drawRule(s, widths); err != nil {
		return err
	}
	if err := t.drawLine(s, t.titles, widths); err != nil {
		return err
	}
	if err := t.drawRule(s, widths); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := t.drawLine(s, row, widths); err != nil {
			return err
		}
		if err := t.drawRule(s, widths); err != nil {
			return err
		}
	}
	return sinkErr(s.Flush())
}

// Render writes the boxed rendering of t to w. When w is not already a
// [Sink] it is wrapped with [NewStreamSink].
func (t *Table) Render(w io.Writer) error {
	s, ok := w.(Sink)
	if !ok {
		s = NewStreamSink(w)
	}
	return t.RenderTo(s)
}

// RenderString returns the boxed rendering of t.
func (t *Table) RenderString() (string, error) {
	var s StringSink
	if err := t.RenderTo(&s); err != nil {
		return "", err
	}
	return s.String(), nil
}

// String implements [fmt.Stringer]. Rendering failures are reported in the
// form package fmt uses for bad verbs.
func (t *Table) String() string {
	out, err := t.RenderString()
	if err != nil {
		return fmt.Sprintf("%%!v(tabprint: %v)", err)
	}
	return out
}

// Print renders t to standard output. It panics if the write fails.
func (t *Table) Print() {
	if err := t.Render(os.Stdout); err != nil {
		panic(fmt.Sprintf("tabprint: cannot print table to standard output: %v", err))
	}
}

func (t *Table) drawRule(w io.Writer, widths []int) error {
	cross := string(t.style.Cross)
	fill := string(t.style.Rule)
	var sb strings.Builder
	sb.WriteString(cross)
	for _, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		sb.WriteString(cross)
	}
	sb.WriteString(t.style.Newline)
	return writeLine(w, sb.String())
}

func (t *Table) drawLine(w io.Writer, cells []string, widths []int) error {
	sep := string(t.style.Column)
	var sb strings.Builder
	sb.WriteString(sep)
	for i, width := range widths {
		cell := cells[i]
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" ")
		if pad := width - t.style.Measure.Len(cell); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(sep)
	}
	sb.WriteString(t.style.Newline)
	return writeLine(w, sb.String())
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line)
	return sinkErr(err)
}

// sinkErr tags sink failures with ErrIO, leaving encoding failures as is.
func sinkErr(err error) error {
	if err == nil || errors.Is(err, ErrEncoding) || errors.Is(err, ErrIO) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
