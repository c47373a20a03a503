package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/service/session"
	"gameverse-api/pkg/logger"
)

func newTestSession(t *testing.T) (*session.Service, *logger.Logger) {
	t.Helper()

	log, err := logger.New("error", "development")
	require.NoError(t, err)
	return session.NewService("test-secret", false, log), log
}

func requestWithSession(t *testing.T, sessions *session.Service, user domain.SessionUser) *http.Request {
	t.Helper()

	token, err := sessions.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

func echoUserHandler(t *testing.T, captured **domain.SessionUser) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = SessionUser(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthAdmitsValidCookie(t *testing.T) {
	sessions, log := newTestSession(t)

	var captured *domain.SessionUser
	handler := SessionAuth(sessions, log)(echoUserHandler(t, &captured))

	req := requestWithSession(t, sessions, domain.SessionUser{ID: "user_1", Role: domain.RolePlayer})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "user_1", captured.ID)
}

func TestSessionAuthRejectsMissingCookie(t *testing.T) {
	sessions, log := newTestSession(t)

	handler := SessionAuth(sessions, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized - Please log in"}`, rec.Body.String())
}

func TestSessionAuthRejectsTamperedToken(t *testing.T) {
	sessions, log := newTestSession(t)

	handler := SessionAuth(sessions, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalSessionContinuesAnonymously(t *testing.T) {
	sessions, log := newTestSession(t)

	var captured *domain.SessionUser
	handler := OptionalSession(sessions, log)(echoUserHandler(t, &captured))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}

func TestOptionalSessionAttachesUser(t *testing.T) {
	sessions, log := newTestSession(t)

	var captured *domain.SessionUser
	handler := OptionalSession(sessions, log)(echoUserHandler(t, &captured))

	req := requestWithSession(t, sessions, domain.SessionUser{ID: "user_1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, captured)
	assert.Equal(t, "user_1", captured.ID)
}

func TestRequireRole(t *testing.T) {
	sessions, log := newTestSession(t)

	tests := []struct {
		name       string
		role       domain.Role
		wantStatus int
	}{
		{name: "admin passes", role: domain.RoleAdmin, wantStatus: http.StatusOK},
		{name: "player rejected", role: domain.RolePlayer, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := SessionAuth(sessions, log)(
				RequireRole(domain.RoleAdmin, log)(
					http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(http.StatusOK)
					})))

			req := requestWithSession(t, sessions, domain.SessionUser{ID: "u1", Role: tt.role})
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	_, log := newTestSession(t)

	handler := RequireRole(domain.RoleAdmin, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
