package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	repo := NewSettingsRepository(sheetstore.NewMemoryStore())

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := sheetstore.NewMemoryStore()
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	want := domain.AppSettings{
		ScreenshotUploadEnabled: false,
		ManualEntryEnabled:      true,
		AutoVerifyResults:       true,
	}
	require.NoError(t, repo.Update(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Flags are stored as spreadsheet-style TRUE/FALSE strings
	rows, err := store.ReadAll(ctx, sheetstore.TableSettings)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"FALSE", "TRUE", "TRUE"}, rows[1])
}

func TestUserGetByEmailCaseInsensitive(t *testing.T) {
	store := sheetstore.NewMemoryStore()
	require.NoError(t, store.Overwrite(context.Background(), sheetstore.TableUsers,
		[][]string{UserHeaders}))
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "user_1", Email: "Admin@GameVerse.com", Role: domain.RoleAdmin,
	}))

	got, err := repo.GetByEmail(ctx, "admin@gameverse.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user_1", got.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@gameverse.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRoleDefaultsToPlayer(t *testing.T) {
	store := sheetstore.NewMemoryStore()
	require.NoError(t, store.Overwrite(context.Background(), sheetstore.TableUsers,
		[][]string{UserHeaders}))
	require.NoError(t, store.Append(context.Background(), sheetstore.TableUsers,
		[][]string{{"user_1", "x@y.com", "hash", "X"}}))

	repo := NewUserRepository(store)
	got, err := repo.GetByID(context.Background(), "user_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RolePlayer, got.Role)
}
