package service

import (
	"context"

	"gameverse-api/internal/domain"
)

// TeamService defines the interface for team registration and management
type TeamService interface {
	// Register registers a new team; the team name must be unique
	Register(ctx context.Context, reg *domain.TeamRegistration) (*domain.Team, error)

	// List retrieves every team, optionally filtered by game
	List(ctx context.Context, game domain.Game) ([]domain.Team, error)

	// Delete removes a team (admin operation)
	Delete(ctx context.Context, id string) error
}

// MatchService defines the interface for match management
type MatchService interface {
	// Create schedules a new match; (game, match_number) must be unique
	Create(ctx context.Context, req *domain.CreateMatch) (*domain.Match, error)

	// List retrieves every match, optionally filtered by game
	List(ctx context.Context, game domain.Game) ([]domain.Match, error)

	// Upcoming retrieves the next scheduled or in-progress matches by date
	Upcoming(ctx context.Context) ([]domain.Match, error)

	// GetWithResults retrieves a match together with its results
	GetWithResults(ctx context.Context, id string) (*domain.MatchWithResults, error)

	// UpdateStatus transitions a match's status (admin operation)
	UpdateStatus(ctx context.Context, id string, status domain.MatchStatus) error

	// Delete removes a match and cascades to its results (admin operation)
	Delete(ctx context.Context, id string) error
}

// ResultService defines the interface for result submission and verification
type ResultService interface {
	// Submit records a team's performance for a match; re-submission for
	// the same (match, team) overwrites in place and resets verification
	Submit(ctx context.Context, req *domain.SubmitResult) (*domain.MatchResult, error)

	// Verify toggles a result's verified flag (admin operation)
	Verify(ctx context.Context, id string, verified bool) error

	// UpdateStats edits kills/placement and recomputes points (admin
	// operation); the verified flag is left as-is
	UpdateStats(ctx context.Context, id string, kills, placement int) error

	// Pending retrieves every unverified result (admin operation)
	Pending(ctx context.Context) ([]domain.MatchResult, error)
}

// LeaderboardService defines the interface for ranked and aggregated views
type LeaderboardService interface {
	// Overall retrieves the top teams across all games
	Overall(ctx context.Context) ([]domain.Team, error)

	// ByGame retrieves the top teams for one game
	ByGame(ctx context.Context, game domain.Game) ([]domain.Team, error)

	// Colleges retrieves per-college aggregated standings
	Colleges(ctx context.Context) ([]domain.CollegeStanding, error)

	// TeamDetail retrieves a team with its verified results and stats
	TeamDetail(ctx context.Context, teamID string) (*domain.TeamDetail, error)
}

// AuthService defines the interface for account and session operations
type AuthService interface {
	// Login verifies credentials and returns the session identity with a
	// signed token
	Login(ctx context.Context, email, password string) (*domain.SessionUser, string, error)

	// Register creates an account and returns the session identity with a
	// signed token
	Register(ctx context.Context, req *RegisterRequest) (*domain.SessionUser, string, error)
}

// AdminService defines the interface for admin dashboard operations
type AdminService interface {
	// Stats retrieves the dashboard counters
	Stats(ctx context.Context) (*domain.AdminStats, error)

	// RecomputeStandings rebuilds every team's accumulated totals from
	// verified results
	RecomputeStandings(ctx context.Context) error
}

// SettingsService defines the interface for the settings singleton
type SettingsService interface {
	// Get reads the application settings
	Get(ctx context.Context) (domain.AppSettings, error)

	// Update writes the application settings (admin operation)
	Update(ctx context.Context, settings domain.AppSettings) error
}

// RegisterRequest is the account registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	College  string `json:"college,omitempty"`
	TeamID   string `json:"team_id,omitempty"`
}

// Services aggregates all service interfaces
type Services struct {
	Team        TeamService
	Match       MatchService
	Result      ResultService
	Leaderboard LeaderboardService
	Auth        AuthService
	Admin       AdminService
	Settings    SettingsService
}
