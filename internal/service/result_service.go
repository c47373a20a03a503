package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
)

type resultService struct {
	results  repository.ResultRepository
	matches  repository.MatchRepository
	settings repository.SettingsRepository
	cache    *redis.Client
	log      *logger.Logger
}

// NewResultService creates the result submission/verification service.
func NewResultService(
	results repository.ResultRepository,
	matches repository.MatchRepository,
	settings repository.SettingsRepository,
	cache *redis.Client,
	log *logger.Logger,
) ResultService {
	return &resultService{
		results:  results,
		matches:  matches,
		settings: settings,
		cache:    cache,
		log:      log,
	}
}

func (s *resultService) Submit(ctx context.Context, req *domain.SubmitResult) (*domain.MatchResult, error) {
	if req.Placement < 1 {
		return nil, apperrors.NewValidationError("Placement must be at least 1")
	}
	if req.Kills < 0 {
		return nil, apperrors.NewValidationError("Kills cannot be negative")
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if req.ScreenshotURL != "" && !settings.ScreenshotUploadEnabled {
		return nil, apperrors.NewValidationError("Screenshot upload is currently disabled")
	}

	match, err := s.matches.GetByID(ctx, req.MatchID)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if match == nil {
		return nil, apperrors.NewNotFoundError("Match not found")
	}

	points := CalculatePoints(match.Game, req.Placement, req.Kills)
	now := time.Now().UTC().Format(time.RFC3339)

	// One result per (match, team): a re-submission overwrites the prior
	// one in place and drops any earlier verification.
	existing, err := s.findByMatchAndTeam(ctx, req.MatchID, req.TeamID)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	var result *domain.MatchResult
	if existing != nil {
		existing.Placement = req.Placement
		existing.Kills = req.Kills
		existing.Points = points
		existing.ScreenshotURL = req.ScreenshotURL
		existing.Verified = false
		existing.VerifiedAt = ""
		existing.UpdatedAt = now
		result = existing
	} else {
		result = &domain.MatchResult{
			ID:            "result_" + uuid.NewString(),
			MatchID:       req.MatchID,
			TeamID:        req.TeamID,
			Placement:     req.Placement,
			Kills:         req.Kills,
			Points:        points,
			ScreenshotURL: req.ScreenshotURL,
			Verified:      false,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	if settings.AutoVerifyResults {
		result.Verified = true
		result.VerifiedAt = now
	}

	if existing != nil {
		err = s.results.Update(ctx, result)
	} else {
		err = s.results.Create(ctx, result)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"result_id": result.ID,
		"match_id":  result.MatchID,
		"team_id":   result.TeamID,
		"points":    result.Points,
		"verified":  result.Verified,
	}).Info("Match result submitted")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return result, nil
}

func (s *resultService) Verify(ctx context.Context, id string, verified bool) error {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if result == nil {
		return apperrors.NewNotFoundError("Result not found")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result.Verified = verified
	result.UpdatedAt = now
	if verified {
		result.VerifiedAt = now
	} else {
		result.VerifiedAt = ""
	}

	if err := s.results.Update(ctx, result); err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"result_id": id,
		"verified":  verified,
	}).Info("Match result verification updated")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return nil
}

func (s *resultService) UpdateStats(ctx context.Context, id string, kills, placement int) error {
	if placement < 1 {
		return apperrors.NewValidationError("Placement must be at least 1")
	}
	if kills < 0 {
		return apperrors.NewValidationError("Kills cannot be negative")
	}

	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if result == nil {
		return apperrors.NewNotFoundError("Result not found")
	}

	match, err := s.matches.GetByID(ctx, result.MatchID)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if match == nil {
		return apperrors.NewNotFoundError("Match not found")
	}

	// Points are recomputed; the verified flag is deliberately untouched.
	result.Kills = kills
	result.Placement = placement
	result.Points = CalculatePoints(match.Game, placement, kills)
	result.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.results.Update(ctx, result); err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}

	invalidateLeaderboards(ctx, s.cache, s.log)
	return nil
}

func (s *resultService) Pending(ctx context.Context) ([]domain.MatchResult, error) {
	results, err := s.results.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	pending := make([]domain.MatchResult, 0, len(results))
	for _, result := range results {
		if !result.Verified {
			pending = append(pending, result)
		}
	}
	return pending, nil
}

func (s *resultService) findByMatchAndTeam(ctx context.Context, matchID, teamID string) (*domain.MatchResult, error) {
	results, err := s.results.GetByMatchID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if results[i].TeamID == teamID {
			return &results[i], nil
		}
	}
	return nil, nil
}
