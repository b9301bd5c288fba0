package parser

import (
	"errors"
	"fmt"
)

// SyntaxError reports a malformed result document. It wraps the underlying
// decoder error and aborts the parse; there is no partial-result recovery.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed result document: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MissingAttrError reports a required attribute absent from an element,
// e.g. a testrun without a browser. Fatal for the stream; there is no
// best-effort defaulting beyond the documented file-name fallback.
type MissingAttrError struct {
	Element string
	Attr    string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("element <%s> is missing required attribute %q", e.Element, e.Attr)
}

// IsSyntaxError reports whether err is a SyntaxError.
// Uses errors.As to handle wrapped errors.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
