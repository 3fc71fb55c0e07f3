package handler

import (
	"encoding/json"
	"net/http"
)

// Response messages reused across handlers.
const (
	msgInvalidJSON        = "Invalid JSON"
	msgServerError        = "Server error"
	msgNotAuthenticated   = "Not authenticated"
	msgServiceUnavailable = "Service unavailable"
)

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}
