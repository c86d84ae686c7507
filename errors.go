package inliner

import "errors"

// Errors.
var (
	ErrInvalidURI          = errors.New("invalid data URI")
	ErrEncodingMismatch    = errors.New("binary content requires base64 encoding")
	ErrUnsupportedTemplate = errors.New("template literal contains substitutions")
	ErrUnsupportedLiteral  = errors.New("expected string literal argument")
	ErrMalformedDocument   = errors.New("malformed svg document")
	ErrNoLoader            = errors.New("no stylesheet loader")
)
