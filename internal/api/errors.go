package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a client failure so callers can branch
// without inspecting message text.
type Kind string

const (
	// KindNetwork means the request could not be sent or no response arrived.
	KindNetwork Kind = "network"
	// KindAPI means the server answered with a non-success status.
	KindAPI Kind = "api"
	// KindParse means a success response body did not match the expected shape.
	KindParse Kind = "parse"
	// KindValidation means the caller supplied malformed input.
	KindValidation Kind = "validation"
)

// Error is the failure outcome of a client operation.
// Status is set only for KindAPI.
type Error struct {
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		return fmt.Sprintf("API error: %d %s", e.Status, http.StatusText(e.Status))
	case KindParse:
		return fmt.Sprintf("failed to parse response: %v", e.Err)
	case KindValidation:
		return e.Err.Error()
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// StatusOf returns the HTTP status carried by err, or 0 when err
// is not an api-status failure.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindAPI {
		return apiErr.Status
	}
	return 0
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

func statusError(status int) *Error {
	return &Error{Kind: KindAPI, Status: status}
}

func parseError(err error) *Error {
	return &Error{Kind: KindParse, Err: err}
}

// ValidationError builds a validation-kind failure from a message.
func ValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}
