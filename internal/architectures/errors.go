package architectures

import (
	"errors"
	"net/http"
)

var (
	ErrSessionNotFound = errors.New("session has no committed result")
	ErrInvalidSession  = errors.New("invalid session id")
	ErrInvalidText     = errors.New("invalid text")
)

// MapHTTPStatus maps architectures domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidSession), errors.Is(err, ErrInvalidText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
