package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service/session"
	"gameverse-api/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// UserContextKey is the key for the verified session user in context
	UserContextKey ContextKey = "user"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// SessionUser returns the verified session user from the request context,
// or nil when the request is unauthenticated.
func SessionUser(r *http.Request) *domain.SessionUser {
	if user, ok := r.Context().Value(UserContextKey).(*domain.SessionUser); ok {
		return user
	}
	return nil
}

// SessionAuth requires a valid session cookie and puts the verified user
// into the request context.
func SessionAuth(sessions *session.Service, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sessions.FromRequest(r)
			if user == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized - Please log in")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession puts the session user into context when the request
// carries a valid cookie, and continues anonymously otherwise.
func OptionalSession(sessions *session.Service, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessions.FromRequest(r); user != nil {
				ctx := context.WithValue(r.Context(), UserContextKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole gates a route group behind a role. It must be mounted after
// SessionAuth. Centralizing the check here means no individual action can
// forget it.
func RequireRole(role domain.Role, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := SessionUser(r)
			if user == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized - Please log in")
				return
			}
			if user.Role != role {
				log.WithFields(map[string]interface{}{
					"user_id":       user.ID,
					"role":          user.Role,
					"required_role": role,
				}).Warn("Role check failed")
				writeError(w, http.StatusForbidden, "Unauthorized - Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// generateRequestID generates a simple request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}

// writeError writes the discriminated error envelope used by every action
// endpoint.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
