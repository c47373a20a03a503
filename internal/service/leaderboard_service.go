package service

import (
	"context"
	"math"
	"sort"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
)

const (
	overallLeaderboardLimit = 100
	gameLeaderboardLimit    = 50
)

type leaderboardService struct {
	teams   repository.TeamRepository
	results repository.ResultRepository
	cache   *redis.Client
	log     *logger.Logger
}

// NewLeaderboardService creates the aggregation service. cache may be nil,
// in which case every call recomputes from the store.
func NewLeaderboardService(teams repository.TeamRepository, results repository.ResultRepository, cache *redis.Client, log *logger.Logger) LeaderboardService {
	return &leaderboardService{
		teams:   teams,
		results: results,
		cache:   cache,
		log:     log,
	}
}

func (s *leaderboardService) Overall(ctx context.Context) ([]domain.Team, error) {
	var cached []domain.Team
	if s.cache != nil && cacheGet(ctx, s.cache, s.cache.KeyBuilder.KeyLeaderboardOverall(), &cached) {
		return cached, nil
	}

	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	ranked := rankTeams(teams, overallLeaderboardLimit)
	if s.cache != nil {
		cacheSet(ctx, s.cache, s.log, s.cache.KeyBuilder.KeyLeaderboardOverall(), ranked, redis.TTLLeaderboard)
	}
	return ranked, nil
}

func (s *leaderboardService) ByGame(ctx context.Context, game domain.Game) ([]domain.Team, error) {
	var cached []domain.Team
	if s.cache != nil && cacheGet(ctx, s.cache, s.cache.KeyBuilder.KeyLeaderboardGame(string(game)), &cached) {
		return cached, nil
	}

	teams, err := s.teams.GetByGame(ctx, game)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	ranked := rankTeams(teams, gameLeaderboardLimit)
	if s.cache != nil {
		cacheSet(ctx, s.cache, s.log, s.cache.KeyBuilder.KeyLeaderboardGame(string(game)), ranked, redis.TTLLeaderboard)
	}
	return ranked, nil
}

func (s *leaderboardService) Colleges(ctx context.Context) ([]domain.CollegeStanding, error) {
	var cached []domain.CollegeStanding
	if s.cache != nil && cacheGet(ctx, s.cache, s.cache.KeyBuilder.KeyLeaderboardColleges(), &cached) {
		return cached, nil
	}

	teams, err := s.teams.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	standings := aggregateColleges(teams)
	if s.cache != nil {
		cacheSet(ctx, s.cache, s.log, s.cache.KeyBuilder.KeyLeaderboardColleges(), standings, redis.TTLLeaderboard)
	}
	return standings, nil
}

func (s *leaderboardService) TeamDetail(ctx context.Context, teamID string) (*domain.TeamDetail, error) {
	var cached domain.TeamDetail
	if s.cache != nil && cacheGet(ctx, s.cache, s.cache.KeyBuilder.KeyTeamStats(teamID), &cached) {
		return &cached, nil
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}
	if team == nil {
		return nil, apperrors.NewNotFoundError("Team not found")
	}

	results, err := s.results.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, apperrors.NewInternalError("An unexpected error occurred", err)
	}

	verified := make([]domain.MatchResult, 0, len(results))
	for _, result := range results {
		if result.Verified {
			verified = append(verified, result)
		}
	}

	detail := &domain.TeamDetail{
		Team:    *team,
		Results: verified,
		Stats:   computeTeamStats(team, verified),
	}
	if s.cache != nil {
		cacheSet(ctx, s.cache, s.log, s.cache.KeyBuilder.KeyTeamStats(teamID), detail, redis.TTLTeamStats)
	}
	return detail, nil
}

// rankTeams sorts descending by total points. The sort is stable so equal
// scores keep their registration order.
func rankTeams(teams []domain.Team, limit int) []domain.Team {
	ranked := append([]domain.Team(nil), teams...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// aggregateColleges groups teams by college, summing points and counting
// teams. Colleges keep first-appearance order among equal totals.
func aggregateColleges(teams []domain.Team) []domain.CollegeStanding {
	index := make(map[string]int)
	standings := make([]domain.CollegeStanding, 0)

	for _, team := range teams {
		i, ok := index[team.College]
		if !ok {
			i = len(standings)
			index[team.College] = i
			standings = append(standings, domain.CollegeStanding{College: team.College})
		}
		standings[i].TotalPoints += team.TotalPoints
		standings[i].TeamCount++
	}

	for i := range standings {
		if standings[i].TeamCount > 0 {
			avg := float64(standings[i].TotalPoints) / float64(standings[i].TeamCount)
			standings[i].AvgPoints = roundTo1Decimal(avg)
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings
}

// computeTeamStats derives per-team statistics from verified results only.
func computeTeamStats(team *domain.Team, verified []domain.MatchResult) domain.TeamStats {
	stats := domain.TeamStats{
		TotalMatches: len(verified),
		TotalPoints:  team.TotalPoints,
	}
	if len(verified) == 0 {
		return stats
	}

	placementSum := 0
	best := verified[0].Placement
	for _, result := range verified {
		stats.TotalKills += result.Kills
		placementSum += result.Placement
		if result.Placement < best {
			best = result.Placement
		}
	}

	stats.AvgKills = roundTo1Decimal(float64(stats.TotalKills) / float64(len(verified)))
	stats.AvgPlacement = roundTo1Decimal(float64(placementSum) / float64(len(verified)))
	stats.BestPlacement = best
	return stats
}

func roundTo1Decimal(f float64) float64 {
	return math.Round(f*10) / 10
}
