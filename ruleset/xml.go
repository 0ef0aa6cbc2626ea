package ruleset

import (
	"encoding/xml"
	"fmt"
	"io"
)

// DecodeXML reads a <set> document.
func DecodeXML(r io.Reader) (Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("%w: xml: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// EncodeXML writes doc as an indented <set> document with an XML header.
func EncodeXML(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
