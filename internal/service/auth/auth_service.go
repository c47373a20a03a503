package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	"gameverse-api/internal/service"
	"gameverse-api/internal/service/session"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
)

const minPasswordLength = 6

// Service implements the AuthService interface over the Users table.
type Service struct {
	users    repository.UserRepository
	sessions *session.Service
	log      *logger.Logger
}

// NewService creates a new auth service
func NewService(users repository.UserRepository, sessions *session.Service, log *logger.Logger) service.AuthService {
	return &Service{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Login verifies credentials and issues a session token. The same error is
// returned for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.SessionUser, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if user == nil {
		return nil, "", apperrors.NewAuthenticationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.NewAuthenticationError("Invalid email or password")
	}

	sessionUser := domain.SessionUserFromUser(user)
	token, err := s.sessions.Issue(sessionUser)
	if err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")

	return &sessionUser, token, nil
}

// Register creates a player account and issues a session token.
func (s *Service) Register(ctx context.Context, req *service.RegisterRequest) (*domain.SessionUser, string, error) {
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		return nil, "", apperrors.NewValidationError("Valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", apperrors.NewValidationError("Password must be at least 6 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, "", apperrors.NewValidationError("Name is required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if existing != nil {
		return nil, "", apperrors.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}

	user := &domain.User{
		ID:        "user_" + uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		Name:      req.Name,
		Role:      domain.RolePlayer,
		TeamID:    req.TeamID,
		College:   req.College,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}

	sessionUser := domain.SessionUserFromUser(user)
	token, err := s.sessions.Issue(sessionUser)
	if err != nil {
		return nil, "", apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithField("user_id", user.ID).Info("User registered")

	return &sessionUser, token, nil
}
