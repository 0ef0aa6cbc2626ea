package ruleset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is a document encoding.
type Format int

const (
	FormatXML Format = iota
	FormatYAML
	FormatJSON
)

// FormatOf maps a file extension (.xml, .yaml, .yml, .json) to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode reads a document in format f.
func Decode(r io.Reader, f Format) (Document, error) {
	switch f {
	case FormatXML:
		return DecodeXML(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatJSON:
		return DecodeJSON(r)
	}
	return Document{}, ErrUnknownFormat
}

// Encode writes doc in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatXML:
		return EncodeXML(w, doc)
	case FormatYAML:
		return EncodeYAML(w, doc)
	case FormatJSON:
		return EncodeJSON(w, doc)
	}
	return ErrUnknownFormat
}

// Load reads the document at path, choosing the encoding by extension.
func Load(path string) (Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path, choosing the encoding by extension.
func Save(path string, doc Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, doc, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
