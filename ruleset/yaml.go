package ruleset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a YAML document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return doc, fmt.Errorf("%w: yaml: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// EncodeYAML writes doc as YAML with two-space indentation.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
