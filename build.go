package tabprint

import (
	"fmt"
	"iter"
	"slices"
)

// Rower provides the cells of one row.
type Rower interface {
	Row() []string
}

// Headed provides column titles.
type Headed interface {
	Header() []string
}

// MustNew builds a table from titles and rows, converting every value to
// its display form. It panics if any row has the wrong number of values.
//
//	t := tabprint.MustNew([]any{"Name", "Age"},
//		[]any{"Alice", 30},
//		[]any{"Bob", 7},
//	)
func MustNew(titles []any, rows ...[]any) *Table {
	t := New(displayAll(titles)...)
	for i, row := range rows {
		if _, err := t.AddRow(displayAll(row)...); err != nil {
			panic(fmt.Sprintf("tabprint: cannot create table from row %d: %v", i, err))
		}
	}
	return t
}

// MustPrint is [MustNew] followed by [Table.Print]. It returns the table
// for further use.
func MustPrint(titles []any, rows ...[]any) *Table {
	t := MustNew(titles, rows...)
	t.Print()
	return t
}

// FromRowers builds a table from items. Titles come from the first item,
// which must implement [Headed].
func FromRowers[T Rower](items ...T) (*Table, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to take titles from", ErrMissingInterface)
	}
	h, ok := any(items[0]).(Headed)
	if !ok {
		return nil, fmt.Errorf("%w: titles require Headed, not implemented by %T", ErrMissingInterface, items[0])
	}
	return FromSeq(h.Header(), slices.Values(items))
}

// FromSeq builds a table with the given titles from the rows yielded by
// seq. It stops at the first row with the wrong number of cells.
func FromSeq[T Rower](titles []string, seq iter.Seq[T]) (*Table, error) {
	t := New(titles...)
	var err error
	seq(func(item T) bool {
		if _, err = t.AddRow(item.Row()...); err != nil {
			err = fmt.Errorf("row %d: %w", t.Len(), err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func displayAll(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = display(v)
	}
	return out
}
