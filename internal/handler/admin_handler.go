package handler

import (
	"net/http"

	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	admin service.AdminService
	log   *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin service.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		log:   log,
	}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, stats)
}

// RecomputeStandings handles POST /api/admin/standings/recompute. It
// rebuilds every team's totals from verified results, repairing any
// drift left by manual sheet edits.
func (h *AdminHandler) RecomputeStandings(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.RecomputeStandings(r.Context()); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.log.Info("Standings recomputed")
	respondSuccess(w, http.StatusOK, nil)
}
