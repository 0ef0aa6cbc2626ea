package ruleset

import "errors"

var (
	// ErrUnknownFormat indicates a file extension Load or Save cannot map to an encoding.
	ErrUnknownFormat = errors.New("ruleset: unknown document format")
	// ErrInvalidDocument indicates a document that does not match the schema.
	ErrInvalidDocument = errors.New("ruleset: invalid document")
)
