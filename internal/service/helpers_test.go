package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gameverse-api/internal/repository"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/sheetstore"
)

// newTestRepos builds the repository set over an empty in-memory store
// with header rows in place.
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	store := sheetstore.NewMemoryStore()
	ctx := context.Background()

	headers := map[string][]string{
		sheetstore.TableTeams:    repository.TeamHeaders,
		sheetstore.TableMatches:  repository.MatchHeaders,
		sheetstore.TableResults:  repository.ResultHeaders,
		sheetstore.TableUsers:    repository.UserHeaders,
		sheetstore.TableSettings: repository.SettingsHeaders,
	}
	for table, header := range headers {
		require.NoError(t, store.Overwrite(ctx, table, [][]string{header}))
	}

	return &repository.Repositories{
		Team:     repository.NewTeamRepository(store),
		Match:    repository.NewMatchRepository(store),
		Result:   repository.NewResultRepository(store),
		User:     repository.NewUserRepository(store),
		Settings: repository.NewSettingsRepository(store),
	}
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New("error", "development")
	require.NoError(t, err)
	return log
}
