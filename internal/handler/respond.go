package handler

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
)

// successEnvelope is the discriminated result every action endpoint returns.
type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondSuccess(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, successEnvelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorEnvelope{Success: false, Error: message})
}

// respondServiceError maps a service error to the envelope. Typed AppErrors
// keep their message and status; anything else is logged and surfaced as a
// generic failure so upstream causes never leak to clients.
func respondServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.Internal != nil {
			log.WithError(appErr.Internal).Error("Request failed")
		}
		respondError(w, appErr.StatusCode, appErr.Message)
		return
	}

	log.WithError(err).Error("Unhandled request error")
	respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// generateETag fingerprints a response body for If-None-Match handling.
func generateETag(data interface{}) string {
	raw, _ := json.Marshal(data)
	hash := md5.Sum(raw)
	return fmt.Sprintf(`"%x"`, hash)
}
