// Package input decodes tabular data for the tabprint CLI.
//
// CSV and TSV input take titles from the first record. JSON and YAML input
// may be a {"titles": [...], "rows": [[...]]} document, an array of arrays
// whose first element holds the titles, or an array of objects whose keys
// become the titles. A jq query may reshape JSON and YAML input first.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabprint"
)

var (
	ErrUnsupportedInput = errors.New("unsupported input")
	ErrShape            = errors.New("data is not tabular")
)

// Format is an input encoding.
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{CSV, TSV, JSON, YAML}

// ParseFormat parses an input format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedInput, s)
}

// Detect guesses the input format from a file name. It reports false when
// the extension is not recognised.
func Detect(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, true
	case ".tsv", ".tab":
		return TSV, true
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	default:
		return "", false
	}
}

// Decode reads a table from r. A non-empty query is applied to JSON and
// YAML data before it is shaped into a table.
func Decode(r io.Reader, f Format, query string) (*tabprint.Table, error) {
	switch f {
	case CSV, TSV:
		if query != "" {
			return nil, fmt.Errorf("%w: --query needs json or yaml input, got %s", ErrUnsupportedInput, f)
		}
		return tabprint.Read(r, tabprint.Format(f))
	case JSON:
		var v any
		if err := json.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return shape(v, query)
	case YAML:
		var v any
		if err := yaml.NewDecoder(r).Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return shape(normalize(v), query)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, f)
	}
}

func shape(v any, query string) (*tabprint.Table, error) {
	if query != "" {
		out, err := runQuery(v, query)
		if err != nil {
			return nil, err
		}
		v = out
	}
	return toTable(v)
}

// runQuery returns the single value the query emits, or all of them as an
// array when it emits several.
func runQuery(v any, query string) (any, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	var results []any
	iter := code.Run(v)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			return nil, fmt.Errorf("query error: %w", err)
		}
		results = append(results, out)
	}
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

func toTable(v any) (*tabprint.Table, error) {
	switch x := v.(type) {
	case map[string]any:
		if titles, ok := x["titles"]; ok {
			return fromDocument(titles, x["rows"])
		}
		return fromObjects([]any{x})
	case []any:
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: empty array", ErrShape)
		}
		switch x[0].(type) {
		case []any:
			return fromArrays(x)
		case map[string]any:
			return fromObjects(x)
		}
		return nil, fmt.Errorf("%w: array of %T", ErrShape, x[0])
	default:
		return nil, fmt.Errorf("%w: %T", ErrShape, v)
	}
}

func fromDocument(titles, rows any) (*tabprint.Table, error) {
	head, ok := titles.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: titles must be an array", ErrShape)
	}
	all := []any{head}
	if rows != nil {
		body, ok := rows.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: rows must be an array", ErrShape)
		}
		all = append(all, body...)
	}
	return fromArrays(all)
}

func fromArrays(arrays []any) (*tabprint.Table, error) {
	head, _ := arrays[0].([]any)
	t := tabprint.New(cells(head)...)
	for i, a := range arrays[1:] {
		row, ok := a.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %d is %T, not an array", ErrShape, i, a)
		}
		if _, err := t.AddRow(cells(row)...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

// fromObjects uses the sorted union of keys as titles. Missing keys are
// rendered as empty cells.
func fromObjects(objects []any) (*tabprint.Table, error) {
	seen := map[string]bool{}
	var titles []string
	for i, o := range objects {
		m, ok := o.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %d is %T, not an object", ErrShape, i, o)
		}
		for k := range m {
			if !seen[k] {
				seen[k] = true
				titles = append(titles, k)
			}
		}
	}
	sort.Strings(titles)

	t := tabprint.New(titles...)
	for _, o := range objects {
		m := o.(map[string]any)
		row := make([]string, len(titles))
		for c, title := range titles {
			if v, ok := m[title]; ok {
				row[c] = cell(v)
			}
		}
		if _, err := t.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func cells(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cell(v)
	}
	return out
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// normalize converts YAML-decoded values into the JSON-like types gojq
// accepts.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	case int64:
		return int(x)
	case uint64:
		return float64(x)
	default:
		return v
	}
}
