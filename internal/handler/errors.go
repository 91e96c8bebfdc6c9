package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// generationFailedMessage is shown instead of the underlying cause, which
// may carry internal detail.
const generationFailedMessage = "We could not generate your itinerary. Please try again."

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the API's error envelope: {"error":{"code","message"}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeLookupError is writeServiceError for operations that load a
// resource by id. notFound is the message used for domain.ErrNotFound,
// because the handler is the layer that knows what was being looked up.
func (s *Server) writeLookupError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", notFound)
		return
	}
	s.writeServiceError(w, r, err)
}

// writeServiceError maps a service error onto a status code and envelope.
// Anything unexpected is logged and answered with a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrGeneration):
		writeError(w, http.StatusInternalServerError, "generation_failed", generationFailedMessage)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// The client went away; nobody is listening for the body.
		s.log.InfoContext(r.Context(), "request cancelled", "path", r.URL.Path)
		writeError(w, http.StatusServiceUnavailable, "cancelled", "request cancelled")
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.ItineraryService.Create: validation error: budget must be at least 1000"
// → "budget must be at least 1000"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
