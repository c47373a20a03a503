package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// TeamHandler handles team registration, listing and deletion.
type TeamHandler struct {
	teams       service.TeamService
	leaderboard service.LeaderboardService
	log         *logger.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams service.TeamService, leaderboard service.LeaderboardService, log *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teams:       teams,
		leaderboard: leaderboard,
		log:         log,
	}
}

// Register handles POST /api/teams
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.TeamRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.teams.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, team)
}

// List handles GET /api/teams with an optional ?game= filter
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	game := domain.Game(r.URL.Query().Get("game"))
	if game != "" && !game.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown game")
		return
	}

	teams, err := h.teams.List(r.Context(), game)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, teams)
}

// Get handles GET /api/teams/{id}: the team, its verified results and stats.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	detail, err := h.leaderboard.TeamDetail(r.Context(), teamID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, detail)
}

// Delete handles DELETE /api/teams/{id} (admin)
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	if err := h.teams.Delete(r.Context(), teamID); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
