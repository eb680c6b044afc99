package paykit

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	// Configuration errors.
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("an API key or access token is required")
	ErrInvalidAPIKey      = errors.New("invalid API key: expected \"live_\" or \"test_\" followed by at least 30 word characters")
	ErrInvalidAccessToken = errors.New("invalid access token: expected \"access_\" followed by word characters")
	ErrMissingParentID    = errors.New("missing parent id for sub-resource")

	// Argument errors.
	ErrIdentifierRequired = errors.New("resource identifier is required")
	ErrInvalidIdentifier  = errors.New("invalid resource identifier")

	// Response errors.
	ErrEmptyResponse = errors.New("empty response body")

	// Pagination errors.
	ErrNoMoreItems = errors.New("no more items")
)

// APIError represents a structured error reported by the Paykit API.
type APIError struct {
	Type    string `json:"type"            yaml:"type"`
	Message string `json:"message"         yaml:"message"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error (%s): %s (field: %s)", e.Type, e.Message, e.Field)
	}

	return fmt.Sprintf("api error (%s): %s", e.Type, e.Message)
}

// DecodeError indicates a response body that could not be decoded as JSON.
// Raw carries the offending body for diagnostics.
type DecodeError struct {
	Raw []byte
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v (body: %q)", e.Err, string(e.Raw))
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError indicates a request body that could not be encoded as JSON.
type EncodeError struct {
	Err error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding request body: %v", e.Err)
}

// Unwrap returns the underlying encode failure.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// TransportError wraps a network-level failure. The original error is
// preserved as the cause.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError checks whether the error carries a structured API error.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// APIErrorField returns the offending field name reported by the API, or ""
// when the error is not an APIError or no field was supplied.
func APIErrorField(err error) string {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Field
	}

	return ""
}

// IsTransportError checks whether the error originated in the transport
// layer rather than the API.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
