package tabprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for the format encoders.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output encoding of a table.
type Format string

const (
	Boxed    Format = "boxed"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Boxed, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a Go text/template once per row.
// The template data has Index (0-based), Cells, and Fields (cells keyed by
// column title).
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write encodes t in format f and writes it to w.
func Write(w io.Writer, f Format, t *Table) error {
	switch f {
	case Boxed:
		return t.Render(w)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read decodes a table from r. CSV and TSV take titles from the first
// record; JSON and YAML expect the document written by [Write].
func Read(r io.Reader, f Format) (*Table, error) {
	switch f {
	case CSV:
		return readCSV(r)
	case TSV:
		return readTSV(r)
	case JSON:
		return readJSON(r)
	case YAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: cannot read %q", ErrUnsupportedFormat, f)
	}
}

// document is the JSON and YAML shape of a table.
type document struct {
	Titles []string   `json:"titles" yaml:"titles"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

func (t *Table) document() document {
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r
	}
	return document{Titles: t.titles, Rows: rows}
}

func (d document) table() (*Table, error) {
	t := New(d.Titles...)
	for i, row := range d.Rows {
		if _, err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}
