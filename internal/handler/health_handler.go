package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gameverse-api/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Service   string    `json:"service"`
	Store     string    `json:"store"`
	Cache     string    `json:"cache"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	log := h.container.GetLogger()

	store := "memory"
	if h.container.GetConfig().HasSheets() {
		store = "sheets"
	}

	cache := "disabled"
	if h.container.HasRedis() {
		cache = "redis"
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		if err := h.container.GetRedisClient().Health(ctx); err != nil {
			log.WithError(err).Warn("Redis health check failed")
			cache = "unreachable"
		}
		cancel()
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Service:   "gameverse-api",
		Store:     store,
		Cache:     cache,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Error("Failed to encode health check response")
	}
}
