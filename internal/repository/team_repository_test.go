package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

func newTeamRepo(t *testing.T) (TeamRepository, *sheetstore.MemoryStore) {
	t.Helper()

	store := sheetstore.NewMemoryStore()
	require.NoError(t, store.Overwrite(context.Background(), sheetstore.TableTeams,
		[][]string{TeamHeaders}))
	return NewTeamRepository(store), store
}

func sampleTeam(id, name string) *domain.Team {
	return &domain.Team{
		ID:            id,
		TeamName:      name,
		College:       "IIT Delhi",
		Game:          domain.GameBGMI,
		CaptainName:   "Rahul Sharma",
		CaptainEmail:  "rahul@example.com",
		CaptainPhone:  "9876543210",
		PlayerNames:   []string{"Rahul", "Amit"},
		TotalPoints:   120,
		MatchesPlayed: 4,
		Wins:          1,
		CreatedAt:     "2026-01-15T10:00:00Z",
	}
}

func TestTeamRoundTrip(t *testing.T) {
	repo, _ := newTeamRepo(t)
	ctx := context.Background()

	want := sampleTeam("team_1", "Phoenix")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByID(ctx, "team_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestTeamGetByIDAbsent(t *testing.T) {
	repo, _ := newTeamRepo(t)

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTeamUpdateTouchesOnlyItsRow(t *testing.T) {
	repo, store := newTeamRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleTeam("team_1", "Phoenix")))
	require.NoError(t, repo.Create(ctx, sampleTeam("team_2", "Titans")))

	updated := sampleTeam("team_2", "Titans")
	updated.TotalPoints = 999
	require.NoError(t, repo.Update(ctx, updated))

	// The second data row sits at sheet row 3
	rows, err := store.ReadAll(ctx, sheetstore.TableTeams)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "999", rows[2][8])
	assert.Equal(t, "120", rows[1][8])
}

func TestTeamUpdateUnknown(t *testing.T) {
	repo, _ := newTeamRepo(t)

	err := repo.Update(context.Background(), sampleTeam("nope", "Ghost"))
	assert.Error(t, err)
}

func TestTeamDeleteRewritesTable(t *testing.T) {
	repo, store := newTeamRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleTeam("team_1", "Phoenix")))
	require.NoError(t, repo.Create(ctx, sampleTeam("team_2", "Titans")))
	require.NoError(t, repo.Create(ctx, sampleTeam("team_3", "Storm")))

	found, err := repo.Delete(ctx, "team_2")
	require.NoError(t, err)
	assert.True(t, found)

	// No stale trailing row is left behind
	rows, err := store.ReadAll(ctx, sheetstore.TableTeams)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	remaining, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "team_1", remaining[0].ID)
	assert.Equal(t, "team_3", remaining[1].ID)

	found, err = repo.Delete(ctx, "team_2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTeamGetByGame(t *testing.T) {
	repo, _ := newTeamRepo(t)
	ctx := context.Background()

	bgmi := sampleTeam("team_1", "Phoenix")
	ff := sampleTeam("team_2", "Titans")
	ff.Game = domain.GameFreeFire
	require.NoError(t, repo.Create(ctx, bgmi))
	require.NoError(t, repo.Create(ctx, ff))

	teams, err := repo.GetByGame(ctx, domain.GameFreeFire)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "team_2", teams[0].ID)
}

func TestTeamParsesRaggedAndMalformedRows(t *testing.T) {
	repo, store := newTeamRepo(t)
	ctx := context.Background()

	// A short row and a row with a broken roster cell, as manual sheet
	// edits produce
	require.NoError(t, store.Append(ctx, sheetstore.TableTeams, [][]string{
		{"team_1", "Phoenix"},
		{"team_2", "Titans", "IIT Delhi", "BGMI", "Rahul", "r@x.com", "9876543210", "not-json", "abc", "2", "1", ""},
	}))

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Phoenix", teams[0].TeamName)
	assert.Empty(t, teams[0].PlayerNames)
	assert.Equal(t, 0, teams[0].TotalPoints)

	assert.Empty(t, teams[1].PlayerNames)
	assert.Equal(t, 0, teams[1].TotalPoints)
	assert.Equal(t, 2, teams[1].MatchesPlayed)
}
