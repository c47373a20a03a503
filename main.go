package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"gameverse-api/internal/config"
	"gameverse-api/internal/container"
	"gameverse-api/internal/domain"
	"gameverse-api/internal/handler"
	"gameverse-api/internal/middleware"
	"gameverse-api/pkg/logger"
)

// Resources holds all resources that need cleanup
type Resources struct {
	container *container.Container
	server    *http.Server
	log       *logger.Logger
	mu        sync.Mutex
	closed    bool
}

// Cleanup gracefully closes all resources
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errors []error

	r.log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first to stop accepting new requests
	if r.server != nil {
		r.log.Info("Shutting down HTTP server...")
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errors = append(errors, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	// Close Redis connection with health check
	if r.container != nil && r.container.HasRedis() {
		r.log.Info("Closing Redis connection...")

		healthCtx, healthCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := r.container.GetRedisClient().Health(healthCtx); err != nil {
			r.log.WithError(err).Warn("Redis health check failed before closing")
		}
		healthCancel()

		if err := r.container.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errors = append(errors, fmt.Errorf("Redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed successfully")
		}
	}

	if len(errors) > 0 {
		r.log.WithField("error_count", len(errors)).Error("Cleanup completed with errors")
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errors), errors)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting gameverse-api server")

	// Create dependency injection container
	ctx := context.Background()
	container, err := container.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create container")
	}

	// Setup router
	router := setupRouter(container)

	// Create HTTP server
	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	// Create resources manager for cleanup
	resources := &Resources{
		container: container,
		server:    server,
		log:       log,
	}

	// Setup graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	// Cleanup runs regardless of how the program exits
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	log.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(container *container.Container) *chi.Mux {
	cfg := container.GetConfig()
	log := container.GetLogger()
	sessions := container.GetSessionService()

	// Create router
	r := chi.NewRouter()

	// Setup CORS middleware
	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "If-None-Match"},
		ExposedHeaders:   []string{"Content-Length", "ETag"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	// Setup middlewares
	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Create handlers
	healthHandler := handler.NewHealthHandler(container)
	authHandler := handler.NewAuthHandler(container.GetAuthService(), sessions, log)
	teamHandler := handler.NewTeamHandler(container.GetTeamService(), container.GetLeaderboardService(), log)
	matchHandler := handler.NewMatchHandler(container.GetMatchService(), log)
	resultHandler := handler.NewResultHandler(container.GetResultService(), log)
	leaderboardHandler := handler.NewLeaderboardHandler(container.GetLeaderboardService(), log)
	settingsHandler := handler.NewSettingsHandler(container.GetSettingsService(), log)
	adminHandler := handler.NewAdminHandler(container.GetAdminService(), log)

	// Health check (no auth required)
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.OptionalSession(sessions, log))
				r.Get("/check", authHandler.Check)
			})
		})

		// Public read endpoints
		r.Post("/teams", teamHandler.Register)
		r.Get("/teams", teamHandler.List)
		r.Get("/teams/{id}", teamHandler.Get)

		r.Get("/matches", matchHandler.List)
		r.Get("/matches/upcoming", matchHandler.Upcoming)
		r.Get("/matches/{id}", matchHandler.Get)

		r.Get("/leaderboard/overall", leaderboardHandler.Overall)
		r.Get("/leaderboard/game/{game}", leaderboardHandler.ByGame)
		r.Get("/leaderboard/colleges", leaderboardHandler.Colleges)

		r.Get("/settings", settingsHandler.Get)

		// Result submission requires a logged-in player or admin
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(sessions, log))

			r.Post("/results", resultHandler.Submit)
		})

		// Admin-only endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(sessions, log))
			r.Use(middleware.RequireRole(domain.RoleAdmin, log))

			r.Post("/matches", matchHandler.Create)
			r.Put("/matches/{id}/status", matchHandler.UpdateStatus)
			r.Delete("/matches/{id}", matchHandler.Delete)

			r.Delete("/teams/{id}", teamHandler.Delete)

			r.Post("/results/{id}/verify", resultHandler.Verify)
			r.Put("/results/{id}", resultHandler.UpdateStats)

			r.Put("/settings", settingsHandler.Update)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/stats", adminHandler.Stats)
				r.Get("/results/pending", resultHandler.Pending)
				r.Post("/standings/recompute", adminHandler.RecomputeStandings)
			})
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Endpoint not found"}`))
	})

	return r
}
