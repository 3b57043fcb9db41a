package repository

import (
	"context"

	"namazvakti/internal/model"
)

type SettingsRepository interface {
	// Upsert creates the record for deviceID if it does not exist, applying
	// defaults for fields the patch leaves nil, or merges the non-nil patch
	// fields into the existing record. Either way it returns the full record
	// as stored.
	Upsert(ctx context.Context, deviceID string, patch *model.SettingsPatch) (*model.UserSettings, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*model.UserSettings, error)
}
