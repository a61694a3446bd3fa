package tabprint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.titles, "\t")); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// readTSV splits records on newlines and cells on tabs, the inverse of
// writeTSV. Quotes carry no meaning. A trailing CR is dropped from each line.
func readTSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	var t *Table
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if text == "" && err != nil {
			if t == nil {
				return nil, fmt.Errorf("reading titles: %w", io.ErrUnexpectedEOF)
			}
			return t, nil
		}
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		cells := strings.Split(text, "\t")
		if t == nil {
			t = New(cells...)
		} else if _, aerr := t.AddRow(cells...); aerr != nil {
			return nil, fmt.Errorf("line %d: %w", line, aerr)
		}
		if err != nil {
			return t, nil
		}
	}
}
