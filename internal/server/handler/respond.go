// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the uniform failure shape: {"error": "..."}. Success
// responses never carry an error key.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func logAndRespondServerError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	respondError(w, http.StatusInternalServerError, msg)
}
