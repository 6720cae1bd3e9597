package handler

// RESPONSE HELPERS:
// writeJSON and writeError standardise how every endpoint replies, so the
// handlers themselves stay small.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//
//	{"error": "not_found", "message": "email not registered, check it or create an account"}
//
// The "error" field is machine-readable, the "message" field is for humans.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abarbosa/recados/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // machine-readable error type (e.g. "not_found")
	Message string `json:"message"` // human-readable description
}

// writeJSON sends a JSON response with the given status code.
//
// Headers and status must be written before the body — once Encode starts
// writing, the response is committed.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code.
//
// This is the single place where the apperror taxonomy meets HTTP:
//
//	ErrValidation   → 400 Bad Request
//	ErrUnauthorized → 401 Unauthorized   (wrong password)
//	ErrNotFound     → 404 Not Found      (unknown email or message id)
//	ErrConflict     → 409 Conflict       (email already registered)
//	anything else   → 500 Internal Server Error
//
// Unknown-email and wrong-password login failures deliberately map to
// different statuses (404 vs 401) — the stricter of the two behaviors the
// original service shipped.
//
// errors.Is/As walk the wrapped error chain, so services are free to add
// context with fmt.Errorf("...: %w", err) without breaking classification.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
			errorType = "conflict"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	// Unclassified error — return a generic 500. Never expose internal
	// error details (they may contain stack context or stored state).
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

// writeInvalidJSON is the shared reply for unparseable request bodies.
func writeInvalidJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_json",
		Message: "request body must be valid JSON",
	})
}
