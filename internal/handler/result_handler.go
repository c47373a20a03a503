package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// ResultHandler handles result submission and verification.
type ResultHandler struct {
	results service.ResultService
	log     *logger.Logger
}

// NewResultHandler creates a new result handler
func NewResultHandler(results service.ResultService, log *logger.Logger) *ResultHandler {
	return &ResultHandler{
		results: results,
		log:     log,
	}
}

// Submit handles POST /api/results. Requires a session; a re-submission
// for the same match and team overwrites the earlier one.
func (h *ResultHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitResult
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.results.Submit(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, result)
}

type verifyRequest struct {
	Verified bool `json:"verified"`
}

// Verify handles POST /api/results/{id}/verify (admin)
func (h *ResultHandler) Verify(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, "id")

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.results.Verify(r.Context(), resultID, req.Verified); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}

type updateStatsRequest struct {
	Kills     int `json:"kills"`
	Placement int `json:"placement"`
}

// UpdateStats handles PUT /api/results/{id} (admin). Points are
// recomputed from the new kills and placement.
func (h *ResultHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, "id")

	var req updateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.results.UpdateStats(r.Context(), resultID, req.Kills, req.Placement); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}

// Pending handles GET /api/admin/results/pending (admin)
func (h *ResultHandler) Pending(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.Pending(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, results)
}
