package service

import (
	"context"
	"fmt"
	"strings"

	"namazvakti/internal/model"
	"namazvakti/internal/repository"
)

// SettingsService handles per-device settings reads and upserts.
type SettingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Upsert creates or updates the settings record for deviceID. The patch is
// merged field by field: nil fields leave the stored value alone, non-nil
// fields overwrite it, including values that happen to equal a default.
// The write is a single atomic statement in the repository, so concurrent
// upserts for the same device cannot lose each other's fields.
func (s *SettingsService) Upsert(ctx context.Context, deviceID string, patch *model.SettingsPatch) (*model.UserSettings, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, fmt.Errorf("device_id is required")
	}
	if patch == nil {
		patch = &model.SettingsPatch{}
	}

	settings, err := s.repo.Upsert(ctx, deviceID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

// GetByDeviceID returns the settings for a device, or
// model.ErrSettingsNotFound when the device has never written any.
func (s *SettingsService) GetByDeviceID(ctx context.Context, deviceID string) (*model.UserSettings, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, fmt.Errorf("device_id is required")
	}

	return s.repo.GetByDeviceID(ctx, deviceID)
}
