package api

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failed request into a closed set so callers can
// switch on kind instead of probing response bodies of unpredictable shape.
type FailureKind int

const (
	// FailureUnknown covers everything without a more specific kind,
	// including unexpected server errors and malformed responses.
	FailureUnknown FailureKind = iota
	// FailureUnauthorized is an authentication rejection (HTTP 401). The
	// persisted credential has already been cleared when this is returned.
	FailureUnauthorized
	// FailureValidation is a request the server understood and refused
	// (HTTP 400, 404, 409, 422).
	FailureValidation
	// FailureTransport means no usable response arrived: connection
	// refused, DNS failure, timeout, cancelled context.
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureUnauthorized:
		return "unauthorized"
	case FailureValidation:
		return "validation"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// APIError is the normalized failure returned for every unsuccessful request.
type APIError struct {
	Kind    FailureKind
	Status  int    // HTTP status, 0 for transport failures
	Message string // server-provided message when parseable
	Err     error  // underlying cause, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("api: %s failure, status %d", e.Kind, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// KindOf extracts the FailureKind from err, or FailureUnknown when err is
// not an *APIError.
func KindOf(err error) FailureKind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return FailureUnknown
}

// IsUnauthorized reports whether err is an authentication rejection.
func IsUnauthorized(err error) bool {
	return KindOf(err) == FailureUnauthorized
}

// IsNotFound reports whether err carries an HTTP 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == 404
}

// Message returns the server-provided message from err, or fallback when
// none is available. Mirrors the UI convention of showing the server's text
// with a generic backstop.
func Message(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// kindForStatus maps an HTTP status to its FailureKind.
func kindForStatus(status int) FailureKind {
	switch {
	case status == 401:
		return FailureUnauthorized
	case status == 400, status == 404, status == 409, status == 422:
		return FailureValidation
	default:
		return FailureUnknown
	}
}
