package tabprint

import (
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t.document())
}

func readJSON(r io.Reader) (*Table, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return doc.table()
}
