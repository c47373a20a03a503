package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
)

func newResultFixture(t *testing.T) (*repository.Repositories, ResultService) {
	t.Helper()

	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Match.Create(ctx, &domain.Match{
		ID:          "match_1",
		Game:        domain.GameBGMI,
		MatchNumber: 1,
		Status:      domain.MatchCompleted,
	}))
	require.NoError(t, repos.Team.Create(ctx, &domain.Team{
		ID: "team_1", TeamName: "Phoenix", Game: domain.GameBGMI,
	}))

	svc := NewResultService(repos.Result, repos.Match, repos.Settings, nil, newTestLogger(t))
	return repos, svc
}

func TestSubmitComputesPoints(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	result, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID:   "match_1",
		TeamID:    "team_1",
		Placement: 3,
		Kills:     10,
	})
	require.NoError(t, err)

	// (25-3) + 10
	assert.Equal(t, 32, result.Points)
	assert.False(t, result.Verified)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.CreatedAt)

	stored, err := fx.Result.GetByID(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 32, stored.Points)
}

func TestSubmitUpsertsAndResetsVerification(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 1, Kills: 5,
	})
	require.NoError(t, err)

	// Admin verifies the first submission
	require.NoError(t, svc.Verify(ctx, first.ID, true))

	second, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 2, Kills: 7,
	})
	require.NoError(t, err)

	// Same row, new numbers, verification dropped
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 30, second.Points)
	assert.False(t, second.Verified)
	assert.Empty(t, second.VerifiedAt)

	all, err := fx.Result.GetByMatchID(ctx, "match_1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitValidation(t *testing.T) {
	_, svc := newResultFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.SubmitResult
		want string
	}{
		{
			name: "placement below one",
			req:  domain.SubmitResult{MatchID: "match_1", TeamID: "team_1", Placement: 0, Kills: 3},
			want: "Placement must be at least 1",
		},
		{
			name: "negative kills",
			req:  domain.SubmitResult{MatchID: "match_1", TeamID: "team_1", Placement: 2, Kills: -1},
			want: "Kills cannot be negative",
		},
		{
			name: "unknown match",
			req:  domain.SubmitResult{MatchID: "match_999", TeamID: "team_1", Placement: 2, Kills: 3},
			want: "Match not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSubmitScreenshotDisabled(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.Settings.Update(ctx, domain.AppSettings{
		ScreenshotUploadEnabled: false,
		ManualEntryEnabled:      true,
	}))

	_, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID:       "match_1",
		TeamID:        "team_1",
		Placement:     2,
		Kills:         3,
		ScreenshotURL: "https://example.com/shot.png",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Screenshot upload is currently disabled")

	// Without a screenshot the submission still goes through
	_, err = svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 2, Kills: 3,
	})
	assert.NoError(t, err)
}

func TestSubmitAutoVerify(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.Settings.Update(ctx, domain.AppSettings{
		ScreenshotUploadEnabled: true,
		ManualEntryEnabled:      true,
		AutoVerifyResults:       true,
	}))

	result, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 5, Kills: 2,
	})
	require.NoError(t, err)

	assert.True(t, result.Verified)
	assert.NotEmpty(t, result.VerifiedAt)
}

func TestVerifyTogglesFlag(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	result, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 4, Kills: 6,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, result.ID, true))

	stored, err := fx.Result.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.NotEmpty(t, stored.VerifiedAt)
	// Points are untouched by verification
	assert.Equal(t, 27, stored.Points)

	require.NoError(t, svc.Verify(ctx, result.ID, false))

	stored, err = fx.Result.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.False(t, stored.Verified)
	assert.Empty(t, stored.VerifiedAt)
}

func TestVerifyUnknownResult(t *testing.T) {
	_, svc := newResultFixture(t)

	err := svc.Verify(context.Background(), "nope", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Result not found")
}

func TestUpdateStatsRecomputesPointsKeepsVerification(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	result, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 10, Kills: 2,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Verify(ctx, result.ID, true))

	require.NoError(t, svc.UpdateStats(ctx, result.ID, 8, 1))

	stored, err := fx.Result.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Placement)
	assert.Equal(t, 8, stored.Kills)
	assert.Equal(t, 32, stored.Points)
	// An admin correction leaves the verified flag alone
	assert.True(t, stored.Verified)
}

func TestPendingReturnsUnverifiedOnly(t *testing.T) {
	fx, svc := newResultFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.Match.Create(ctx, &domain.Match{
		ID: "match_2", Game: domain.GameBGMI, MatchNumber: 2, Status: domain.MatchCompleted,
	}))

	first, err := svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_1", TeamID: "team_1", Placement: 1, Kills: 4,
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, &domain.SubmitResult{
		MatchID: "match_2", TeamID: "team_1", Placement: 6, Kills: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, first.ID, true))

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "match_2", pending[0].MatchID)
}
