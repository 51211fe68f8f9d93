package client

import (
	"fmt"

	goipp "github.com/alexpevzner/ippclient"
)

// TransportError wraps an error returned by a Transport's Exchange method.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %s", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// IoError wraps a failure reading a document payload from its source.
type IoError struct{ Err error }

func (e *IoError) Error() string { return fmt.Sprintf("reading payload: %s", e.Err) }
func (e *IoError) Unwrap() error { return e.Err }

// StatusError reports a non-successful operation-status in an IPP response.
type StatusError struct{ Code goipp.Status }

func (e *StatusError) Error() string { return fmt.Sprintf("IPP: %s", e.Code) }

// MissingAttribute reports that a response lacked an attribute a typed
// accessor needed.
type MissingAttribute struct{ Name string }

func (e *MissingAttribute) Error() string {
	return fmt.Sprintf("attribute %q is missing", e.Name)
}

// InvalidAttributeType reports that an attribute was present but not
// of the type a typed accessor expected.
type InvalidAttributeType struct {
	Name       string
	Want, Have goipp.Type
}

func (e *InvalidAttributeType) Error() string {
	return fmt.Sprintf("attribute %q: expected type %s, got %s", e.Name, e.Want, e.Have)
}

// ParamError reports an invalid argument passed to an operation builder.
type ParamError struct{ Param, Reason string }

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Reason)
}
