package container

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/config"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/sheetstore"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name        string
		config      *config.Config
		expectRedis bool
	}{
		{
			name: "Container with Redis configured",
			config: &config.Config{
				Environment:   "development",
				RedisURL:      "redis://" + mr.Addr(),
				SessionSecret: "test-secret",
			},
			expectRedis: true,
		},
		{
			name: "Container without Redis configured",
			config: &config.Config{
				Environment:   "development",
				RedisURL:      "",
				SessionSecret: "test-secret",
			},
			expectRedis: false,
		},
		{
			name: "Container with unreachable Redis",
			config: &config.Config{
				Environment:   "development",
				RedisURL:      "redis://127.0.0.1:1",
				SessionSecret: "test-secret",
			},
			// Redis init fails but container creation succeeds without caching
			expectRedis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger, _ := logger.New("info", "development")

			container, err := New(context.Background(), tt.config, testLogger)
			require.NoError(t, err)
			require.NotNil(t, container)

			assert.Equal(t, tt.expectRedis, container.HasRedis())

			// Without sheet credentials the fixture-backed memory store is used
			_, ok := container.GetStore().(*sheetstore.MemoryStore)
			assert.True(t, ok)

			assert.NotNil(t, container.GetTeamService())
			assert.NotNil(t, container.GetMatchService())
			assert.NotNil(t, container.GetResultService())
			assert.NotNil(t, container.GetLeaderboardService())
			assert.NotNil(t, container.GetAuthService())
			assert.NotNil(t, container.GetAdminService())
			assert.NotNil(t, container.GetSettingsService())
			assert.NotNil(t, container.GetSessionService())

			assert.NoError(t, container.Close())
		})
	}
}

func TestContainerSeedsFixtureTables(t *testing.T) {
	testLogger, _ := logger.New("info", "development")

	container, err := New(context.Background(), &config.Config{
		Environment:   "development",
		SessionSecret: "test-secret",
	}, testLogger)
	require.NoError(t, err)

	teams, err := container.Repositories.Team.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, teams)

	admin, err := container.Repositories.User.GetByEmail(context.Background(), sheetstore.FixtureAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)
}
