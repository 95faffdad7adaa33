// Package handlers provides JSON response and request helpers shared by
// domain HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/blueprint/pkg/formatting"
)

var (
	// ErrInvalidBody indicates a request body that could not be decoded.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrBodyTooLarge indicates a request body over the configured size limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as {"error": message}. Server errors
// log at error level; client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}

	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// DecodeJSON decodes the request body into T, rejecting unknown fields.
// Errors wrap ErrInvalidBody. A body cut off by an http.MaxBytesReader also
// wraps ErrBodyTooLarge, with the limit in readable units.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			limit := formatting.FormatBytes(tooLarge.Limit, 1)
			return v, errors.Join(ErrInvalidBody, fmt.Errorf("%w: limit is %s", ErrBodyTooLarge, limit))
		}
		return v, errors.Join(ErrInvalidBody, err)
	}

	return v, nil
}

// DecodeStatus returns the status code for a DecodeJSON error.
func DecodeStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
