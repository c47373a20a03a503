package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// MatchHandler handles match scheduling and listing.
type MatchHandler struct {
	matches service.MatchService
	log     *logger.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches service.MatchService, log *logger.Logger) *MatchHandler {
	return &MatchHandler{
		matches: matches,
		log:     log,
	}
}

// Create handles POST /api/matches (admin)
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, err := h.matches.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, match)
}

// List handles GET /api/matches with an optional ?game= filter
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	game := domain.Game(r.URL.Query().Get("game"))
	if game != "" && !game.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown game")
		return
	}

	matches, err := h.matches.List(r.Context(), game)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, matches)
}

// Upcoming handles GET /api/matches/upcoming
func (h *MatchHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.Upcoming(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, matches)
}

// Get handles GET /api/matches/{id}: the match with its submitted results.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	match, err := h.matches.GetWithResults(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, match)
}

type updateStatusRequest struct {
	Status domain.MatchStatus `json:"status"`
}

// UpdateStatus handles PUT /api/matches/{id}/status (admin)
func (h *MatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.matches.UpdateStatus(r.Context(), matchID, req.Status); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}

// Delete handles DELETE /api/matches/{id} (admin); results cascade.
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	if err := h.matches.Delete(r.Context(), matchID); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
