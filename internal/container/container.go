package container

import (
	"context"

	"gameverse-api/internal/config"
	"gameverse-api/internal/repository"
	"gameverse-api/internal/service"
	"gameverse-api/internal/service/auth"
	"gameverse-api/internal/service/session"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
	"gameverse-api/pkg/sheetstore"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logger.Logger
	Store        sheetstore.Store
	RedisClient  *redis.Client
	Repositories *repository.Repositories
	Sessions     *session.Service
	Services     *service.Services
}

// New creates a new dependency injection container. The spreadsheet
// store is used when credentials are configured; otherwise an in-memory
// store seeded with demo fixtures keeps the API fully usable.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	// Pick the backing store
	var store sheetstore.Store
	if cfg.HasSheets() {
		sheetsStore, err := sheetstore.NewSheetsStore(ctx, cfg.SpreadsheetID, cfg.SheetsCredentialsJSON, log)
		if err != nil {
			return nil, err
		}
		store = sheetsStore
		log.WithField("spreadsheet_id", cfg.SpreadsheetID).Info("Google Sheets store initialized")
	} else {
		store = sheetstore.NewMemoryStoreWithFixtures()
		log.Warn("Sheets credentials not configured, using in-memory store with demo data")
	}

	// Initialize Redis client if Redis URL is configured
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	// Initialize repositories
	repos := &repository.Repositories{
		Team:     repository.NewTeamRepository(store),
		Match:    repository.NewMatchRepository(store),
		Result:   repository.NewResultRepository(store),
		User:     repository.NewUserRepository(store),
		Settings: repository.NewSettingsRepository(store),
	}

	// Initialize services
	sessions := session.NewService(cfg.SessionSecret, cfg.IsProduction(), log)

	services := &service.Services{
		Team:        service.NewTeamService(repos.Team, redisClient, log),
		Match:       service.NewMatchService(repos.Match, repos.Result, redisClient, log),
		Result:      service.NewResultService(repos.Result, repos.Match, repos.Settings, redisClient, log),
		Leaderboard: service.NewLeaderboardService(repos.Team, repos.Result, redisClient, log),
		Auth:        auth.NewService(repos.User, sessions, log),
		Admin:       service.NewAdminService(repos.Team, repos.Match, repos.Result, redisClient, log),
		Settings:    service.NewSettingsService(repos.Settings, log),
	}

	return &Container{
		Config:       cfg,
		Logger:       log,
		Store:        store,
		RedisClient:  redisClient,
		Repositories: repos,
		Sessions:     sessions,
		Services:     services,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetStore returns the backing table store
func (c *Container) GetStore() sheetstore.Store {
	return c.Store
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// GetSessionService returns the session service
func (c *Container) GetSessionService() *session.Service {
	return c.Sessions
}

// GetTeamService returns the team service
func (c *Container) GetTeamService() service.TeamService {
	return c.Services.Team
}

// GetMatchService returns the match service
func (c *Container) GetMatchService() service.MatchService {
	return c.Services.Match
}

// GetResultService returns the result service
func (c *Container) GetResultService() service.ResultService {
	return c.Services.Result
}

// GetLeaderboardService returns the leaderboard service
func (c *Container) GetLeaderboardService() service.LeaderboardService {
	return c.Services.Leaderboard
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.Services.Auth
}

// GetAdminService returns the admin service
func (c *Container) GetAdminService() service.AdminService {
	return c.Services.Admin
}

// GetSettingsService returns the settings service
func (c *Container) GetSettingsService() service.SettingsService {
	return c.Services.Settings
}

// Close releases held connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
