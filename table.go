package tabprint

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrRowArity    = errors.New("row arity mismatch")
	ErrColumnIndex = errors.New("column index out of range")
	ErrRowIndex    = errors.New("row index out of range")
	ErrIO          = errors.New("write failed")
	ErrEncoding    = errors.New("invalid utf-8")
)

// Row is an ordered sequence of display cells, one per column.
type Row []string

// Table is a set of titled columns and an ordered collection of rows.
//
// A Table is not safe for concurrent use. The zero value is not usable;
// create tables with [New] or one of the construction helpers.
type Table struct {
	titles []string
	rows   []Row
	style  Style
}

// New creates an empty table whose column count equals len(titles).
func New(titles ...string) *Table {
	return &Table{
		titles: slices.Clone(titles),
		style:  DefaultStyle(),
	}
}

// ColumnCount returns the number of columns, fixed at construction.
func (t *Table) ColumnCount() int { return len(t.titles) }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Titles returns a copy of the column titles.
func (t *Table) Titles() []string { return slices.Clone(t.titles) }

// AddRow appends a copy of cells as a new row and returns its index.
// The table is left unchanged when len(cells) differs from the column count.
func (t *Table) AddRow(cells ...string) (int, error) {
	if len(cells) != len(t.titles) {
		return 0, fmt.Errorf("%w: got %d cells, want %d", ErrRowArity, len(cells), len(t.titles))
	}
	t.rows = append(t.rows, Row(slices.Clone(cells)))
	return len(t.rows) - 1, nil
}

// AddEmptyRow appends a row of empty cells and returns its index.
func (t *Table) AddEmptyRow() (int, error) {
	return t.AddRow(make([]string, len(t.titles))...)
}

// SetElement overwrites the cell at (row, column) with the display form of
// value.
func (t *Table) SetElement(value any, column, row int) error {
	if column < 0 || column >= len(t.titles) {
		return fmt.Errorf("%w: %d (columns: %d)", ErrColumnIndex, column, len(t.titles))
	}
	if err := t.checkRow(row); err != nil {
		return err
	}
	t.rows[row][column] = display(value)
	return nil
}

// Row returns a copy of the row at index i.
func (t *Table) Row(i int) (Row, error) {
	if err := t.checkRow(i); err != nil {
		return nil, err
	}
	return slices.Clone(t.rows[i]), nil
}

// UpdateRow calls fn with the live row at index i. The row must not be
// retained after fn returns.
func (t *Table) UpdateRow(i int, fn func(Row)) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	fn(t.rows[i])
	return nil
}

// RemoveRow deletes the row at index i, shifting later rows down. Out of
// range indices are ignored.
func (t *Table) RemoveRow(i int) {
	if i < 0 || i >= len(t.rows) {
		return
	}
	t.rows = slices.Delete(t.rows, i, i+1)
}

// Separators sets the column separator, the rule character, and the
// character drawn where rules meet column boundaries.
func (t *Table) Separators(column, rule, cross rune) {
	t.style.Column = column
	t.style.Rule = rule
	t.style.Cross = cross
}

// SetNewline sets the line terminator used when rendering.
func (t *Table) SetNewline(nl string) { t.style.Newline = nl }

// SetMeasure sets the length metric used for column widths.
func (t *Table) SetMeasure(m Measure) { t.style.Measure = m }

// Style returns the current rendering style.
func (t *Table) Style() Style { return t.style }

// SetStyle replaces the rendering style.
func (t *Table) SetStyle(s Style) { t.style = s }

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		titles: slices.Clone(t.titles),
		rows:   make([]Row, len(t.rows)),
		style:  t.style,
	}
	for i, r := range t.rows {
		c.rows[i] = slices.Clone(r)
	}
	return c
}

func (t *Table) checkRow(i int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("%w: %d (rows: %d)", ErrRowIndex, i, len(t.rows))
	}
	return nil
}

// display converts a value to the string stored in a cell.
func display(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprint(v)
	}
}
