package service

import (
	"context"

	"gameverse-api/internal/domain"
	"gameverse-api/internal/repository"
	apperrors "gameverse-api/pkg/errors"
	"gameverse-api/pkg/logger"
)

type settingsService struct {
	settings repository.SettingsRepository
	log      *logger.Logger
}

// NewSettingsService creates the settings service.
func NewSettingsService(settings repository.SettingsRepository, log *logger.Logger) SettingsService {
	return &settingsService{settings: settings, log: log}
}

func (s *settingsService) Get(ctx context.Context) (domain.AppSettings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings domain.AppSettings) error {
	if err := s.settings.Update(ctx, settings); err != nil {
		return apperrors.NewInternalError("Failed to update settings", err)
	}

	s.log.WithFields(map[string]interface{}{
		"screenshot_upload_enabled": settings.ScreenshotUploadEnabled,
		"manual_entry_enabled":      settings.ManualEntryEnabled,
		"auto_verify_results":       settings.AutoVerifyResults,
	}).Info("Application settings updated")

	return nil
}
