package common

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the bearer token
	// (HTTP 401 on anything but the login call).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by the login call only. Callers
	// surface a generic message and never the backend detail.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable is returned when a request never produced an HTTP
	// response (connection refused, timeout, DNS failure).
	ErrUnavailable = errors.New("server unavailable")

	// ErrValidation marks client-side form validation failures; they must
	// never reach the network.
	ErrValidation = errors.New("validation error")
)
