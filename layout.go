package tabprint

import "fmt"

// ColumnWidth returns the widest measured cell in column i, title included.
func (t *Table) ColumnWidth(i int) (int, error) {
	if i < 0 || i >= len(t.titles) {
		return 0, fmt.Errorf("%w: %d (columns: %d)", ErrColumnIndex, i, len(t.titles))
	}
	return t.columnWidth(i), nil
}

// Widths returns the width of every column.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.titles))
	for i := range widths {
		widths[i] = t.columnWidth(i)
	}
	return widths
}

func (t *Table) columnWidth(i int) int {
	m := t.style.Measure
	width := m.Len(t.titles[i])
	for _, row := range t.rows {
		if w := m.Len(row[i]); w > width {
			width = w
		}
	}
	return width
}
