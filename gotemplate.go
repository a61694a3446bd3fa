package tabprint

import (
	"fmt"
	"io"
	"text/template"
)

type templateRow struct {
	Index  int
	Cells  []string
	Fields map[string]string
}

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for i, row := range t.rows {
		data := templateRow{Index: i, Cells: row, Fields: make(map[string]string, len(row))}
		for c, title := range t.titles {
			data.Fields[title] = row[c]
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
