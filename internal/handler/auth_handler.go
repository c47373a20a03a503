package handler

import (
	"encoding/json"
	"net/http"

	"gameverse-api/internal/middleware"
	"gameverse-api/internal/service"
	"gameverse-api/internal/service/session"
	"gameverse-api/pkg/logger"
)

// AuthHandler handles login, registration, logout and the auth check.
type AuthHandler struct {
	auth     service.AuthService
	sessions *session.Service
	log      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService, sessions *session.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		log:      log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.sessions.SetCookie(w, token)
	respondSuccess(w, http.StatusOK, user)
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	h.sessions.SetCookie(w, token)
	respondSuccess(w, http.StatusCreated, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	respondSuccess(w, http.StatusOK, nil)
}

// Check handles GET /api/auth/check. The response shape is fixed for the
// client's periodic authentication poll.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionUser(r)
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"role":          user.Role,
		"name":          user.Name,
		"email":         user.Email,
	})
}
