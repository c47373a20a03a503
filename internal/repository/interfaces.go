package repository

import (
	"context"

	"gameverse-api/internal/domain"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	// GetAll retrieves every registered team
	GetAll(ctx context.Context) ([]domain.Team, error)

	// GetByID retrieves a team by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Team, error)

	// GetByGame retrieves the teams registered for one game
	GetByGame(ctx context.Context, game domain.Game) ([]domain.Team, error)

	// Create appends a new team
	Create(ctx context.Context, team *domain.Team) error

	// Update overwrites an existing team row
	Update(ctx context.Context, team *domain.Team) error

	// UpdateAll rewrites the whole teams table
	UpdateAll(ctx context.Context, teams []domain.Team) error

	// Delete removes a team, reporting whether it existed
	Delete(ctx context.Context, id string) (bool, error)
}

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	// GetAll retrieves every match
	GetAll(ctx context.Context) ([]domain.Match, error)

	// GetByID retrieves a match by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Match, error)

	// Create appends a new match
	Create(ctx context.Context, match *domain.Match) error

	// Update overwrites an existing match row
	Update(ctx context.Context, match *domain.Match) error

	// Delete removes a match, reporting whether it existed
	Delete(ctx context.Context, id string) (bool, error)
}

// ResultRepository defines the interface for match result data operations
type ResultRepository interface {
	// GetAll retrieves every submitted result
	GetAll(ctx context.Context) ([]domain.MatchResult, error)

	// GetByID retrieves a result by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.MatchResult, error)

	// GetByMatchID retrieves every result submitted for a match
	GetByMatchID(ctx context.Context, matchID string) ([]domain.MatchResult, error)

	// GetByTeamID retrieves every result submitted by a team
	GetByTeamID(ctx context.Context, teamID string) ([]domain.MatchResult, error)

	// Create appends a new result
	Create(ctx context.Context, result *domain.MatchResult) error

	// Update overwrites an existing result row
	Update(ctx context.Context, result *domain.MatchResult) error

	// DeleteByMatchID removes every result of a match, returning the count
	DeleteByMatchID(ctx context.Context, matchID string) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetByID retrieves a user by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email, case-insensitively
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create appends a new user
	Create(ctx context.Context, user *domain.User) error
}

// SettingsRepository defines the interface for the settings singleton
type SettingsRepository interface {
	// Get reads the settings, falling back to defaults when absent
	Get(ctx context.Context) (domain.AppSettings, error)

	// Update writes the settings row
	Update(ctx context.Context, settings domain.AppSettings) error
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Team     TeamRepository
	Match    MatchRepository
	Result   ResultRepository
	User     UserRepository
	Settings SettingsRepository
}
