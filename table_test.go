package tabprint_test

import (
	"errors"
	"testing"

	"github.com/bjaus/tabprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

var errWriteFailed = errors.New("fake write failure")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

func (f *failAfterN) Flush() error { return nil }

type stringer struct{ s string }

func (s stringer) String() string { return "<" + s.s + ">" }

func people(t *testing.T) *tabprint.Table {
	t.Helper()
	tab := tabprint.New("Name", "Age")
	_, err := tab.AddRow("Alice", "30")
	require.NoError(t, err)
	_, err = tab.AddRow("Bob", "7")
	require.NoError(t, err)
	return tab
}

// ============================================================
// Tests
// ============================================================

func TestNew(t *testing.T) {
	t.Parallel()
	titles := []string{"A", "B", "C"}
	tab := tabprint.New(titles...)
	assert.Equal(t, 3, tab.ColumnCount())
	assert.Equal(t, 0, tab.Len())
	assert.Equal(t, titles, tab.Titles())

	// Titles are copied on the way in and out.
	titles[0] = "changed"
	got := tab.Titles()
	got[1] = "changed"
	assert.Equal(t, []string{"A", "B", "C"}, tab.Titles())
}

func TestAddRow(t *testing.T) {
	t.Parallel()
	tab := tabprint.New("Name", "Age")
	i, err := tab.AddRow("Alice", "30")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = tab.AddRow("Bob", "7")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, tab.Len())

	row, err := tab.Row(1)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"Bob", "7"}, row)
}

func TestAddRowCopiesCells(t *testing.T) {
	t.Parallel()
	tab := tabprint.New("A")
	cells := []string{"x"}
	_, err := tab.AddRow(cells...)
	require.NoError(t, err)
	cells[0] = "y"
	row, err := tab.Row(0)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"x"}, row)
}

func TestAddRowArity(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cells []string
	}{
		"too few":  {cells: []string{"Carol"}},
		"too many": {cells: []string{"Carol", "40", "extra"}},
		"none":     {cells: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tab := people(t)
			before := tab.String()
			_, err := tab.AddRow(tt.cells...)
			require.ErrorIs(t, err, tabprint.ErrRowArity)
			assert.Equal(t, 2, tab.Len())
			assert.Equal(t, before, tab.String())
		})
	}
}

func TestAddEmptyRow(t *testing.T) {
	t.Parallel()
	tab := tabprint.New("A", "B", "C")
	i, err := tab.AddEmptyRow()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	row, err := tab.Row(i)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"", "", ""}, row)
}

func TestSetElement(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":   {value: "Zed", want: "Zed"},
		"int":      {value: 42, want: "42"},
		"float":    {value: 1.5, want: "1.5"},
		"bool":     {value: true, want: "true"},
		"stringer": {value: stringer{"s"}, want: "<s>"},
		"error":    {value: errors.New("boom"), want: "boom"},
		"nil":      {value: nil, want: "<nil>"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tab := people(t)
			require.NoError(t, tab.SetElement(tt.value, 1, 0))
			row, err := tab.Row(0)
			require.NoError(t, err)
			assert.Equal(t, tabprint.Row{"Alice", tt.want}, row)
			other, err := tab.Row(1)
			require.NoError(t, err)
			assert.Equal(t, tabprint.Row{"Bob", "7"}, other)
		})
	}
}

func TestSetElementOutOfRange(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		column, row int
		target      error
	}{
		"column equal to count": {column: 2, row: 0, target: tabprint.ErrColumnIndex},
		"column negative":       {column: -1, row: 0, target: tabprint.ErrColumnIndex},
		"row equal to count":    {column: 0, row: 2, target: tabprint.ErrRowIndex},
		"row past count":        {column: 0, row: 9, target: tabprint.ErrRowIndex},
		"row negative":          {column: 0, row: -1, target: tabprint.ErrRowIndex},
		"both out of range":     {column: 5, row: 5, target: tabprint.ErrColumnIndex},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tab := people(t)
			before := tab.String()
			err := tab.SetElement("x", tt.column, tt.row)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, before, tab.String())
		})
	}
}

func TestSetElementEmptyTable(t *testing.T) {
	t.Parallel()
	tab := tabprint.New("A")
	require.ErrorIs(t, tab.SetElement("x", 0, 0), tabprint.ErrRowIndex)
}

func TestRowOutOfRange(t *testing.T) {
	t.Parallel()
	tab := people(t)
	_, err := tab.Row(2)
	require.ErrorIs(t, err, tabprint.ErrRowIndex)
	_, err = tab.Row(-1)
	require.ErrorIs(t, err, tabprint.ErrRowIndex)
}

func TestRowReturnsCopy(t *testing.T) {
	t.Parallel()
	tab := people(t)
	row, err := tab.Row(0)
	require.NoError(t, err)
	row[0] = "Mallory"
	again, err := tab.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0])
}

func TestUpdateRow(t *testing.T) {
	t.Parallel()
	tab := people(t)
	err := tab.UpdateRow(1, func(r tabprint.Row) {
		r[0] = "Robert"
		r[1] = "8"
	})
	require.NoError(t, err)
	row, err := tab.Row(1)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"Robert", "8"}, row)
}

func TestUpdateRowCannotChangeArity(t *testing.T) {
	t.Parallel()
	tab := people(t)
	err := tab.UpdateRow(0, func(r tabprint.Row) {
		_ = append(r, "extra")
	})
	require.NoError(t, err)
	row, err := tab.Row(0)
	require.NoError(t, err)
	assert.Len(t, row, 2)
}

func TestUpdateRowOutOfRange(t *testing.T) {
	t.Parallel()
	tab := people(t)
	called := false
	err := tab.UpdateRow(2, func(tabprint.Row) { called = true })
	require.ErrorIs(t, err, tabprint.ErrRowIndex)
	assert.False(t, called)
}

func TestRemoveRow(t *testing.T) {
	t.Parallel()
	tab := people(t)
	_, err := tab.AddRow("Carol", "41")
	require.NoError(t, err)

	tab.RemoveRow(0)
	assert.Equal(t, 2, tab.Len())
	row, err := tab.Row(0)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"Bob", "7"}, row)
	row, err = tab.Row(1)
	require.NoError(t, err)
	assert.Equal(t, tabprint.Row{"Carol", "41"}, row)
}

func TestRemoveRowOutOfRange(t *testing.T) {
	t.Parallel()
	tests := map[string]int{
		"equal to count": 2,
		"past count":     100,
		"negative":       -1,
	}
	for name, idx := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tab := people(t)
			before := tab.String()
			tab.RemoveRow(idx)
			assert.Equal(t, 2, tab.Len())
			assert.Equal(t, before, tab.String())
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	tab := people(t)
	tab.Separators('#', '=', '*')
	c := tab.Clone()
	require.NoError(t, c.SetElement("Eve", 0, 0))
	c.RemoveRow(1)

	row, err := tab.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", row[0])
	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, tab.Style(), c.Style())
}
