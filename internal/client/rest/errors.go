package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind is the variant tag of an Error. It is chosen solely by HTTP status
// code and fixed at construction.
type Kind int

const (
	// KindGeneric covers every error status without a dedicated variant,
	// plus transport-level faults where no response was obtained.
	KindGeneric Kind = iota
	// KindBadRequest corresponds to HTTP 400.
	KindBadRequest
	// KindUnauthorized corresponds to HTTP 401.
	KindUnauthorized
	// KindNotFound corresponds to HTTP 404.
	KindNotFound
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindGeneric:
		return "generic"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// kindForStatus selects the error variant for a non-success status code.
// The table is a fixed contract: 400, 401, and 404 get named variants,
// everything else is generic.
func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindGeneric
	}
}

// Error is the typed failure produced by the pipeline. It carries the
// decoded diagnostic body and normalized headers of the error response,
// both nil when the failure happened before a response was obtained.
// Errors are immutable value objects once returned to a caller.
type Error struct {
	// Kind is the variant tag.
	Kind Kind
	// Status is the HTTP status code, 0 for transport faults.
	Status int
	// Body is the decoded diagnostic body, nil for transport faults.
	Body any
	// Headers is the normalized response header mapping, nil for transport faults.
	Headers map[string]string
	// cause is the original transport fault, nil for classified responses.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}

	return fmt.Sprintf("%s: unexpected HTTP status %d", e.Kind, e.Status)
}

// Unwrap returns the original transport fault, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// MarshalJSON renders the error with its kind spelled out, so result
// envelopes stay readable when printed.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string            `json:"kind"`
		Status  int               `json:"status,omitempty"`
		Message string            `json:"message"`
		Body    any               `json:"body,omitempty"`
		Headers map[string]string `json:"headers,omitempty"`
	}{
		Kind:    e.Kind.String(),
		Status:  e.Status,
		Message: e.Error(),
		Body:    e.Body,
		Headers: e.Headers,
	})
}

// newStatusError builds the typed error for a non-success response.
// It never fails, whatever the body or headers contain.
func newStatusError(status int, body any, headers map[string]string) *Error {
	return &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Body:    body,
		Headers: headers,
	}
}

// newTransportError wraps a failure that occurred before any response was
// obtained. The original fault stays reachable through errors.Unwrap.
func newTransportError(cause error) *Error {
	return &Error{
		Kind:  KindGeneric,
		cause: cause,
	}
}

// IsKind reports whether err is a pipeline error of the given kind.
func IsKind(err error, kind Kind) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}

	return typed.Kind == kind
}
