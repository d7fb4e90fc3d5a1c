package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"billbook/internal/app"
	"billbook/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors to HTTP status codes and writes the
// JSON error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrOffline):
		writeError(w, r, err.Error(), "OFFLINE", http.StatusServiceUnavailable)
	case errors.Is(err, core.ErrMissingCompany),
		errors.Is(err, core.ErrMissingName),
		errors.Is(err, core.ErrNoLineItems),
		errors.Is(err, core.ErrAmountNotPositive),
		errors.Is(err, core.ErrAmountExceedsOutstanding),
		errors.Is(err, core.ErrMissingItemName),
		errors.Is(err, core.ErrNegativePrice),
		errors.Is(err, app.ErrInvalidDate):
		writeError(w, r, err.Error(), "VALIDATION", http.StatusBadRequest)
	default:
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
