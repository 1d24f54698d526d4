package fileprovider

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNotFound - the item or folder does not exist
	ErrNotFound = Error("item not found")

	// ErrUnauthorized - the session expired or the credentials were rejected; the caller should re-authenticate
	ErrUnauthorized = Error("unauthorized")

	// ErrForbidden - the item is read-only, the version is stale, or the backend does not allow the action
	ErrForbidden = Error("forbidden")

	// ErrNameConflict - an item with the same name already exists in the folder
	ErrNameConflict = Error("name conflict")

	// ErrInvalidCursor - the continuation cursor is unknown, already used, or belongs to an older listing
	ErrInvalidCursor = Error("invalid cursor")

	// ErrSamePath - source and destination resolve to the same location
	ErrSamePath = Error("source and destination are the same")

	// ErrNetwork - the request never got a response
	ErrNetwork = Error("network error")

	// ErrUnexpectedResponse - the backend answered with a status the provider does not map
	ErrUnexpectedResponse = Error("unexpected response")
)

// UnexpectedResponseError carries the status code of an unmapped response. It matches ErrUnexpectedResponse.
type UnexpectedResponseError struct {
	StatusCode int
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrUnexpectedResponse, e.StatusCode)
}

// Is makes errors.Is(err, ErrUnexpectedResponse) true.
func (e *UnexpectedResponseError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// Wrap tags cause with kind. The result matches both kind and cause with errors.Is. A nil cause yields kind.
func Wrap(kind Error, cause error) error {
	if cause == nil {
		return kind
	}
	if errors.Is(cause, kind) {
		return cause
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// StatusError maps an HTTP status code to the error taxonomy. Codes below 400 yield nil.
func StatusError(code int, cause error) error {
	switch {
	case code < http.StatusBadRequest:
		return nil
	case code == http.StatusUnauthorized:
		return Wrap(ErrUnauthorized, cause)
	case code == http.StatusForbidden:
		return Wrap(ErrForbidden, cause)
	case code == http.StatusNotFound:
		return Wrap(ErrNotFound, cause)
	case code == http.StatusConflict, code == http.StatusPreconditionFailed:
		return Wrap(ErrNameConflict, cause)
	}
	unexpected := &UnexpectedResponseError{StatusCode: code}
	if cause == nil {
		return unexpected
	}
	return fmt.Errorf("%w: %w", unexpected, cause)
}

// IsTransportError reports whether err happened below HTTP, ie no response was received.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classified reports whether err already wraps one of the taxonomy sentinels.
func Classified(err error) bool {
	for _, kind := range []error{
		ErrNotFound, ErrUnauthorized, ErrForbidden, ErrNameConflict,
		ErrInvalidCursor, ErrSamePath, ErrNetwork, ErrUnexpectedResponse,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
