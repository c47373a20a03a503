package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
)

const upcomingMatchLimit = 3

type matchService struct {
	matches repository.MatchRepository
	results repository.ResultRepository
	cache   *redis.Client
	log     *logger.Logger
}

// NewMatchService creates the match management service.
func NewMatchService(matches repository.MatchRepository, results repository.ResultRepository, cache *redis.Client, log *logger.Logger) MatchService {
	return &matchService{
		matches: matches,
		results: results,
		cache:   cache,
		log:     log,
	}
}

func (s *matchService) Create(ctx context.Context, req *domain.CreateMatch) (*domain.Match, error) {
	if !req.Game.Valid() {
		return nil, apperrors.NewValidationError("Unknown game")
	}
	if req.MatchNumber < 1 {
		return nil, apperrors.NewValidationError("Match number must be at least 1")
	}

	status := req.Status
	if status == "" {
		status = domain.MatchScheduled
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Unknown match status")
	}

	existing, err := s.matches.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	for _, match := range existing {
		if match.Game == req.Game && match.MatchNumber == req.MatchNumber {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("Match %d already exists for %s", req.MatchNumber, req.Game))
		}
	}

	match := &domain.Match{
		ID:          "match_" + uuid.NewString(),
		Game:        req.Game,
		MatchNumber: req.MatchNumber,
		MatchDate:   req.MatchDate,
		Status:      status,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.matches.Create(ctx, match); err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"match_id":     match.ID,
		"game":         match.Game,
		"match_number": match.MatchNumber,
	}).Info("Match created")

	return match, nil
}

func (s *matchService) List(ctx context.Context, game domain.Game) ([]domain.Match, error) {
	matches, err := s.matches.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if game == "" {
		return matches, nil
	}

	filtered := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		if match.Game == game {
			filtered = append(filtered, match)
		}
	}
	return filtered, nil
}

func (s *matchService) Upcoming(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.matches.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	upcoming := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		if match.Status == domain.MatchScheduled || match.Status == domain.MatchInProgress {
			upcoming = append(upcoming, match)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].MatchDate < upcoming[j].MatchDate
	})

	if len(upcoming) > upcomingMatchLimit {
		upcoming = upcoming[:upcomingMatchLimit]
	}
	return upcoming, nil
}

func (s *matchService) GetWithResults(ctx context.Context, id string) (*domain.MatchWithResults, error) {
	match, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if match == nil {
		return nil, apperrors.NewNotFoundError("Match not found")
	}

	results, err := s.results.GetByMatchID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	return &domain.MatchWithResults{Match: *match, Results: results}, nil
}

func (s *matchService) UpdateStatus(ctx context.Context, id string, status domain.MatchStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("Unknown match status")
	}

	match, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if match == nil {
		return apperrors.NewNotFoundError("Match not found")
	}

	// No transition table: any status may follow any other.
	match.Status = status
	if err := s.matches.Update(ctx, match); err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"match_id": id,
		"status":   status,
	}).Info("Match status updated")

	return nil
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	found, err := s.matches.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if !found {
		return apperrors.NewNotFoundError("Match not found")
	}

	// Cascade: a deleted match takes its submitted results with it.
	removed, err := s.results.DeleteByMatchID(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"match_id":        id,
		"results_removed": removed,
	}).Info("Match deleted")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return nil
}
