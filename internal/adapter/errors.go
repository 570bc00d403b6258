package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes. Callers
// match them with [errors.Is].
var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("access to room denied")
	ErrNotFound          = errors.New("resource not found")
	ErrServerUnavailable = errors.New("server unavailable")
)
