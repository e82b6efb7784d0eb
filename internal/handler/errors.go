package handler

import (
	"errors"
	"net/http"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// classify maps a service error to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrUnknownStation):
		return http.StatusUnprocessableEntity, "unknown_station"
	case errors.Is(err, domain.ErrInvalidVelocity):
		return http.StatusUnprocessableEntity, "invalid_velocity"
	case errors.Is(err, domain.ErrEmptyTrajectory):
		return http.StatusUnprocessableEntity, "empty_trajectory"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "body_too_large"
	}
	return http.StatusInternalServerError, "internal_error"
}

// writeError classifies err and writes it. Internal errors are logged and
// their message is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: msg}})
}

// badRequest writes a 400 for input rejected before reaching a service.
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}})
}
