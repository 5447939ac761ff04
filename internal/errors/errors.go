package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these without knowing anything about HTTP; the API layer uses
// `errors.Is()` to map them to status codes.

var (
	// ErrValidation signifies that client input failed pre-flight validation.
	// Mapped to 400 Bad Request. For streaming endpoints this is always
	// returned before the upstream call is opened.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrUpstream signifies that the upstream agent call failed or returned a
	// non-success result. Surfaced as an `error` stream frame on streaming
	// endpoints, or a 500 JSON body on the analysis endpoint. Never retried.
	ErrUpstream = errors.New("upstream agent failure")

	// ErrInternal signifies an unexpected server-side error. Kept generic to
	// avoid leaking implementation details to the client.
	ErrInternal = errors.New("internal server error")
)
