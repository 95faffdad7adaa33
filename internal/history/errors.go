package history

import (
	"errors"
	"net/http"
)

// Domain errors for history operations.
var (
	ErrNotFound     = errors.New("history entry not found")
	ErrDuplicate    = errors.New("history entry already exists")
	ErrInvalidEntry = errors.New("history entry requires text and at least one component")
	ErrNoExport     = errors.New("history entry has no exported diagram")
	ErrInvalidID    = errors.New("history id must be a UUID")
)

// MapHTTPStatus maps history domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoExport):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidEntry), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
