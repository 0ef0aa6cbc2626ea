package ruleset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed ruleset.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("ruleset.schema.json", schemaSource)
	})
	return schema, schemaErr
}

// DecodeJSON reads a JSON document and validates it against the embedded schema.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	raw, err := io.ReadAll(r)
	if err != nil {
		return doc, err
	}
	s, err := compiledSchema()
	if err != nil {
		return doc, err
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return doc, fmt.Errorf("%w: json: %v", ErrInvalidDocument, err)
	}
	if err := s.Validate(v); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: json: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// EncodeJSON writes doc as indented JSON.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
