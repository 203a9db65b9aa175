package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a service error to a response: business-rule
// violations become 400 with their code, everything else an opaque 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Debug().Str("code", domainErr.Code).Str("error", domainErr.Message).Msg("domain error")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	logger.Error().Err(err).Msg("unexpected error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: model.ErrCodeInternalError})
}
