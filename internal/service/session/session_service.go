package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/logger"
)

// CookieName is the session cookie name.
const CookieName = "session"

// TTL is the lifetime of an issued session.
const TTL = 7 * 24 * time.Hour

// Service issues and verifies the signed session credential carried in the
// session cookie.
type Service struct {
	secret []byte
	secure bool
	log    *logger.Logger
}

type sessionClaims struct {
	User domain.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// NewService creates a session service. secure controls the cookie's Secure
// attribute and should be true in production.
func NewService(secret string, secure bool, log *logger.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		secure: secure,
		log:    log,
	}
}

// Issue encodes the user into a signed token with a 7-day expiry.
func (s *Service) Issue(user domain.SessionUser) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry, returning nil on any failure.
// Callers treat nil as "not authenticated"; verification never errors out.
func (s *Service) Verify(tokenString string) *domain.SessionUser {
	if tokenString == "" {
		return nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return &claims.User
}

// SetCookie stores the credential as an http-only, same-site-restricted
// cookie.
func (s *Service) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie revokes the stored credential.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest extracts and verifies the session cookie, returning nil when
// the request carries no valid session.
func (s *Service) FromRequest(r *http.Request) *domain.SessionUser {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return s.Verify(cookie.Value)
}
