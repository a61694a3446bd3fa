package tabprint

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.document()); err != nil {
		return err
	}
	return enc.Close()
}

func readYAML(r io.Reader) (*Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return doc.table()
}
