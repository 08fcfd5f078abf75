package domain

import (
	"errors"
	"fmt"
)

// userFacingMessage is the one message presentation layers may show for any
// provider failure. Wire-level detail never leaks past this package.
const userFacingMessage = "can't reach the adoption service right now"

var (
	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)

// AuthError is returned when the token endpoint rejects the credentials, or
// when a request still receives 401 after a forced token refresh.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed: %v", e.Cause)
	}
	return "authentication failed"
}

func (e *AuthError) Unwrap() error { return e.Cause }

// APIError is returned for any non-2xx, non-401 response from a data
// endpoint, and for a 2xx whose body cannot be decoded. Status and Cause
// are kept for diagnostics only.
type APIError struct {
	Status int
	Cause  error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider returned status %d: %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("provider returned status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Cause }

// NetworkError is returned when no response arrives at all (DNS failure,
// timeout, connection reset). Distinguished from APIError for telemetry only.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("provider unreachable: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// UserMessage maps any client error to its stable user-facing message.
func UserMessage(err error) string {
	var authErr *AuthError
	var apiErr *APIError
	var netErr *NetworkError
	if errors.As(err, &authErr) || errors.As(err, &apiErr) || errors.As(err, &netErr) {
		return userFacingMessage
	}
	return err.Error()
}
