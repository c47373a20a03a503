package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service"
	"gameverse-api/pkg/logger"
)

// LeaderboardHandler serves the ranked and aggregated standings views.
// Responses carry an ETag so clients polling the boards can get 304s.
type LeaderboardHandler struct {
	leaderboard service.LeaderboardService
	log         *logger.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard service.LeaderboardService, log *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: leaderboard,
		log:         log,
	}
}

// respondCacheable writes a success envelope with ETag and Cache-Control
// headers, answering 304 when the client's If-None-Match still matches.
func (h *LeaderboardHandler) respondCacheable(w http.ResponseWriter, r *http.Request, data interface{}) {
	etag := generateETag(data)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=30")

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	respondSuccess(w, http.StatusOK, data)
}

// Overall handles GET /api/leaderboard/overall
func (h *LeaderboardHandler) Overall(w http.ResponseWriter, r *http.Request) {
	teams, err := h.leaderboard.Overall(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.respondCacheable(w, r, teams)
}

// ByGame handles GET /api/leaderboard/game/{game}
func (h *LeaderboardHandler) ByGame(w http.ResponseWriter, r *http.Request) {
	game := domain.Game(chi.URLParam(r, "game"))
	if !game.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown game")
		return
	}

	teams, err := h.leaderboard.ByGame(r.Context(), game)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.respondCacheable(w, r, teams)
}

// Colleges handles GET /api/leaderboard/colleges
func (h *LeaderboardHandler) Colleges(w http.ResponseWriter, r *http.Request) {
	standings, err := h.leaderboard.Colleges(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.respondCacheable(w, r, standings)
}
