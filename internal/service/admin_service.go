package service

import (
	"context"
	"sync"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
)

type adminService struct {
	teams   repository.TeamRepository
	matches repository.MatchRepository
	results repository.ResultRepository
	cache   *redis.Client
	log     *logger.Logger
}

// NewAdminService creates the admin dashboard service.
func NewAdminService(
	teams repository.TeamRepository,
	matches repository.MatchRepository,
	results repository.ResultRepository,
	cache *redis.Client,
	log *logger.Logger,
) AdminService {
	return &adminService{
		teams:   teams,
		matches: matches,
		results: results,
		cache:   cache,
		log:     log,
	}
}

// Stats fans out the three table reads concurrently and assembles the
// dashboard counters.
func (s *adminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	var (
		wg      sync.WaitGroup
		teams   []domain.Team
		matches []domain.Match
		results []domain.MatchResult

		teamErr, matchErr, resultErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		teams, teamErr = s.teams.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		matches, matchErr = s.matches.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		results, resultErr = s.results.GetAll(ctx)
	}()
	wg.Wait()

	for _, err := range []error{teamErr, matchErr, resultErr} {
		if err != nil {
			return nil, apperrors.NewInternalError("An unexpected error occurred", err)
		}
	}

	stats := &domain.AdminStats{
		TotalTeams:   len(teams),
		TotalMatches: len(matches),
	}
	for _, result := range results {
		if result.Verified {
			stats.VerifiedResults++
		} else {
			stats.PendingResults++
		}
	}
	return stats, nil
}

// RecomputeStandings rebuilds every team's accumulated totals from verified
// results and rewrites the Teams table in one pass. This is the explicit
// refresh for the counters that no automatic flow maintains.
func (s *adminService) RecomputeStandings(ctx context.Context) error {
	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	results, err := s.results.GetAll(ctx)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	type tally struct {
		points  int
		matches int
		wins    int
	}
	tallies := make(map[string]tally, len(teams))
	for _, result := range results {
		if !result.Verified {
			continue
		}
		t := tallies[result.TeamID]
		t.points += result.Points
		t.matches++
		if result.Placement == 1 {
			t.wins++
		}
		tallies[result.TeamID] = t
	}

	for i := range teams {
		t := tallies[teams[i].ID]
		teams[i].TotalPoints = t.points
		teams[i].MatchesPlayed = t.matches
		teams[i].Wins = t.wins
	}

	if err := s.teams.UpdateAll(ctx, teams); err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithField("team_count", len(teams)).Info("Standings recomputed from verified results")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return nil
}
