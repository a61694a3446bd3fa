package tabprint

import (
	"encoding/json"
	"io"
)

// writeJSONL writes the titles and then every row as one JSON array per line.
func writeJSONL(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t.titles); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
