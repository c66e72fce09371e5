// ABOUTME: Closed error taxonomy for remote catalog failures
// ABOUTME: Every catalog call failure is a CatalogError carrying exactly one Kind

package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a catalog failure
type Kind int

const (
	// KindUnknown is any failure that fits no other kind
	KindUnknown Kind = iota

	// KindInvalidRequest is a 4xx response (other than 429) or a request that could not be built
	KindInvalidRequest

	// KindRateLimited is a 429 response
	KindRateLimited

	// KindServerFailure is a 5xx response or server-side transport fault
	KindServerFailure

	// KindTransportFailure is a connectivity failure before a response arrived
	KindTransportFailure

	// KindDecodeFailure is a payload that does not match the expected shape
	KindDecodeFailure
)

// Kinds lists every Kind value
var Kinds = []Kind{
	KindUnknown,
	KindInvalidRequest,
	KindRateLimited,
	KindServerFailure,
	KindTransportFailure,
	KindDecodeFailure,
}

// String returns the snake_case name of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindRateLimited:
		return "rate_limited"
	case KindServerFailure:
		return "server_failure"
	case KindTransportFailure:
		return "transport_failure"
	case KindDecodeFailure:
		return "decode_failure"
	default:
		return "unknown"
	}
}

// CatalogError represents a failed catalog request
type CatalogError struct {
	Kind       Kind
	Operation  string
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	msg := fmt.Sprintf("catalog %s failed: %s", e.Operation, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a catalog error of the given kind
func NewCatalogError(kind Kind, operation, detail string, cause error) *CatalogError {
	return &CatalogError{
		Kind:      kind,
		Operation: operation,
		Detail:    detail,
		Err:       cause,
	}
}

// IsCatalog checks if an error is a CatalogError
func IsCatalog(err error) bool {
	var catalogErr *CatalogError
	return errors.As(err, &catalogErr)
}

// KindOf returns the Kind of a catalog error, or KindUnknown for anything else
func KindOf(err error) Kind {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr.Kind
	}
	return KindUnknown
}

// DetailOf returns the detail text of a catalog error, if any
func DetailOf(err error) string {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr.Detail
	}
	return ""
}

// IsRateLimited checks if an error is a rate limited catalog error
func IsRateLimited(err error) bool {
	return IsCatalog(err) && KindOf(err) == KindRateLimited
}
