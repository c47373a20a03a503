package repository

import (
	"context"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

// SettingsHeaders is the fixed column order of the Settings table, a
// singleton: one header row and one data row of "TRUE"/"FALSE" flags.
var SettingsHeaders = []string{
	"screenshot_upload_enabled", "manual_entry_enabled", "auto_verify_results",
}

type settingsRepository struct {
	store sheetstore.Store
}

// NewSettingsRepository creates a settings repository over the given store.
func NewSettingsRepository(store sheetstore.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(ctx context.Context) (domain.AppSettings, error) {
	rows, err := r.store.ReadAll(ctx, sheetstore.TableSettings)
	if err != nil || len(rows) < 2 {
		// Absent or unreadable settings degrade to the defaults rather
		// than blocking result submission.
		return domain.DefaultSettings(), nil
	}

	row := rows[1]
	return domain.AppSettings{
		ScreenshotUploadEnabled: sheetstore.Cell(row, 0) == "TRUE",
		ManualEntryEnabled:      sheetstore.Cell(row, 1) == "TRUE",
		AutoVerifyResults:       sheetstore.Cell(row, 2) == "TRUE",
	}, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings domain.AppSettings) error {
	row := []string{
		formatFlag(settings.ScreenshotUploadEnabled),
		formatFlag(settings.ManualEntryEnabled),
		formatFlag(settings.AutoVerifyResults),
	}
	return r.store.Overwrite(ctx, sheetstore.TableSettings, [][]string{SettingsHeaders, row})
}

func formatFlag(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
