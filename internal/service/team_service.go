package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
	"gameverse-api/pkg/utils"
)

const maxPlayersPerTeam = 5

type teamService struct {
	teams repository.TeamRepository
	cache *redis.Client
	log   *logger.Logger
}

// NewTeamService creates the team registration/management service.
func NewTeamService(teams repository.TeamRepository, cache *redis.Client, log *logger.Logger) TeamService {
	return &teamService{
		teams: teams,
		cache: cache,
		log:   log,
	}
}

func (s *teamService) Register(ctx context.Context, reg *domain.TeamRegistration) (*domain.Team, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	existing, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	for _, team := range existing {
		if team.TeamName == reg.TeamName {
			return nil, apperrors.NewConflictError("Team name already exists. Please choose a different name.")
		}
	}

	team := &domain.Team{
		ID:           "team_" + uuid.NewString(),
		TeamName:     reg.TeamName,
		College:      reg.College,
		Game:         reg.Game,
		CaptainName:  reg.CaptainName,
		CaptainEmail: reg.CaptainEmail,
		CaptainPhone: utils.NormalizePhone(reg.CaptainPhone),
		PlayerNames:  reg.PlayerNames,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	s.log.WithFields(map[string]interface{}{
		"team_id":   team.ID,
		"team_name": team.TeamName,
		"game":      team.Game,
		"college":   team.College,
	}).Info("Team registered")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return team, nil
}

func (s *teamService) List(ctx context.Context, game domain.Game) ([]domain.Team, error) {
	var (
		teams []domain.Team
		err   error
	)
	if game == "" {
		teams, err = s.teams.GetAll(ctx)
	} else {
		teams, err = s.teams.GetByGame(ctx, game)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	return teams, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	found, err := s.teams.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if !found {
		return apperrors.NewNotFoundError("Team not found")
	}

	s.log.WithField("team_id", id).Info("Team deleted")

	invalidateLeaderboards(ctx, s.cache, s.log)
	return nil
}

func validateRegistration(reg *domain.TeamRegistration) error {
	if strings.TrimSpace(reg.TeamName) == "" {
		return apperrors.NewValidationError("Team name is required")
	}
	if strings.TrimSpace(reg.College) == "" {
		return apperrors.NewValidationError("College name is required")
	}
	if !reg.Game.Valid() {
		return apperrors.NewValidationError("Unknown game")
	}
	if strings.TrimSpace(reg.CaptainName) == "" {
		return apperrors.NewValidationError("Captain name is required")
	}
	if !strings.Contains(reg.CaptainEmail, "@") {
		return apperrors.NewValidationError("Valid captain email is required")
	}
	if !utils.IsValidPhone(reg.CaptainPhone) {
		return apperrors.NewValidationError("Valid captain phone number is required")
	}
	if len(reg.PlayerNames) < 1 || len(reg.PlayerNames) > maxPlayersPerTeam {
		return apperrors.NewValidationError("Teams must have between 1 and 5 players")
	}
	for _, name := range reg.PlayerNames {
		if strings.TrimSpace(name) == "" {
			return apperrors.NewValidationError("Player names cannot be empty")
		}
	}
	return nil
}
