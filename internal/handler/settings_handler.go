package handler

import (
	"encoding/json"
	"net/http"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// SettingsHandler exposes the application settings singleton.
type SettingsHandler struct {
	settings service.SettingsService
	log      *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings service.SettingsService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		log:      log,
	}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, settings)
}

// Update handles PUT /api/settings (admin)
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.settings.Update(r.Context(), req); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, req)
}
