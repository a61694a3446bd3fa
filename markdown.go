package tabprint

import (
	"fmt"
	"io"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// writeMarkdown renders a GitHub-flavored Markdown table. Columns are padded
// with the table's measure so the source stays readable.
func writeMarkdown(w io.Writer, t *Table) error {
	m := t.style.Measure
	header := escapeMarkdown(t.titles)
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = escapeMarkdown(row)
	}

	// Minimum 3 so the separator row is valid.
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = max(3, m.Len(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], m.Len(cell))
		}
	}

	if err := writeMarkdownRow(w, header, widths, m); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, m); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, m Measure) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padRight(cells[i], width, m)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

func padRight(s string, width int, m Measure) string {
	pad := width - m.Len(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
