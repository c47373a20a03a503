package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/domain"
)

func TestCreateMatch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	match, err := svc.Create(ctx, &domain.CreateMatch{
		Game:        domain.GameBGMI,
		MatchNumber: 1,
		MatchDate:   "2026-09-01T18:00:00Z",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, match.ID)
	assert.Equal(t, domain.MatchScheduled, match.Status)
	assert.NotEmpty(t, match.CreatedAt)
}

func TestCreateMatchValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateMatch
		want string
	}{
		{
			name: "unknown game",
			req:  domain.CreateMatch{Game: "Chess", MatchNumber: 1},
			want: "Unknown game",
		},
		{
			name: "match number below one",
			req:  domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 0},
			want: "Match number must be at least 1",
		},
		{
			name: "unknown status",
			req:  domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1, Status: "paused"},
			want: "Unknown match status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreateMatchDuplicateNumber(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Match 1 already exists for BGMI")

	// Same number under a different game is fine
	_, err = svc.Create(ctx, &domain.CreateMatch{Game: domain.GameFreeFire, MatchNumber: 1})
	assert.NoError(t, err)
}

func TestListFiltersByGame(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateMatch{Game: domain.GameFreeFire, MatchNumber: 1})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bgmi, err := svc.List(ctx, domain.GameBGMI)
	require.NoError(t, err)
	require.Len(t, bgmi, 1)
	assert.Equal(t, domain.GameBGMI, bgmi[0].Game)
}

func TestUpcomingSortsAndLimits(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	matches := []domain.CreateMatch{
		{Game: domain.GameBGMI, MatchNumber: 1, MatchDate: "2026-09-04T18:00:00Z"},
		{Game: domain.GameBGMI, MatchNumber: 2, MatchDate: "2026-09-01T18:00:00Z"},
		{Game: domain.GameBGMI, MatchNumber: 3, MatchDate: "2026-09-03T18:00:00Z", Status: domain.MatchInProgress},
		{Game: domain.GameBGMI, MatchNumber: 4, MatchDate: "2026-09-02T18:00:00Z", Status: domain.MatchCompleted},
		{Game: domain.GameBGMI, MatchNumber: 5, MatchDate: "2026-09-05T18:00:00Z"},
	}
	for i := range matches {
		_, err := svc.Create(ctx, &matches[i])
		require.NoError(t, err)
	}

	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)

	// Earliest first; the completed match never shows
	assert.Equal(t, 2, upcoming[0].MatchNumber)
	assert.Equal(t, 3, upcoming[1].MatchNumber)
	assert.Equal(t, 1, upcoming[2].MatchNumber)
}

func TestGetWithResults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	match, err := svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.NoError(t, err)

	require.NoError(t, repos.Result.Create(ctx, &domain.MatchResult{
		ID: "r1", MatchID: match.ID, TeamID: "team_1", Placement: 1, Kills: 3, Points: 27,
	}))
	require.NoError(t, repos.Result.Create(ctx, &domain.MatchResult{
		ID: "r2", MatchID: "other_match", TeamID: "team_2", Placement: 2, Kills: 1, Points: 24,
	}))

	withResults, err := svc.GetWithResults(ctx, match.ID)
	require.NoError(t, err)

	assert.Equal(t, match.ID, withResults.Match.ID)
	require.Len(t, withResults.Results, 1)
	assert.Equal(t, "r1", withResults.Results[0].ID)
}

func TestUpdateStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	match, err := svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, match.ID, domain.MatchCompleted))

	stored, err := repos.Match.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchCompleted, stored.Status)

	// Reverting a completed match back to scheduled is allowed
	require.NoError(t, svc.UpdateStatus(ctx, match.ID, domain.MatchScheduled))

	err = svc.UpdateStatus(ctx, match.ID, "paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown match status")

	err = svc.UpdateStatus(ctx, "nope", domain.MatchCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Match not found")
}

func TestDeleteCascadesResults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))
	ctx := context.Background()

	match, err := svc.Create(ctx, &domain.CreateMatch{Game: domain.GameBGMI, MatchNumber: 1})
	require.NoError(t, err)

	require.NoError(t, repos.Result.Create(ctx, &domain.MatchResult{
		ID: "r1", MatchID: match.ID, TeamID: "team_1",
	}))
	require.NoError(t, repos.Result.Create(ctx, &domain.MatchResult{
		ID: "r2", MatchID: match.ID, TeamID: "team_2",
	}))
	require.NoError(t, repos.Result.Create(ctx, &domain.MatchResult{
		ID: "r3", MatchID: "other_match", TeamID: "team_1",
	}))

	require.NoError(t, svc.Delete(ctx, match.ID))

	gone, err := repos.Match.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	remaining, err := repos.Result.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r3", remaining[0].ID)
}

func TestDeleteUnknownMatch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.Match, repos.Result, nil, newTestLogger(t))

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Match not found")
}
