package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"namazvakti/internal/model"
)

// settingsRepository implements SettingsRepository using sqlx
type settingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

const settingsColumns = `id, device_id, language, theme, notification_enabled,
	       notification_sound, calculation_method, latitude, longitude,
	       city, country, created_at, updated_at`

// Upsert writes settings for a device in one atomic statement. Two
// concurrent upserts for the same device_id serialize inside Postgres, so
// the read-modify-write race of doing a SELECT followed by an INSERT or
// UPDATE cannot happen here.
//
// Insert path: fresh id, defaults for nil patch fields. Conflict path:
// non-nil patch fields overwrite, nil fields keep the stored value, and
// id, device_id and created_at are never touched.
func (r *settingsRepository) Upsert(ctx context.Context, deviceID string, patch *model.SettingsPatch) (*model.UserSettings, error) {
	query := `
		INSERT INTO user_settings (id, device_id, language, theme,
			notification_enabled, notification_sound, calculation_method,
			latitude, longitude, city, country, created_at, updated_at)
		VALUES ($1, $2,
			COALESCE($3, 'tr'),
			COALESCE($4, 'dark'),
			COALESCE($5, TRUE),
			COALESCE($6, 'default'),
			COALESCE($7, 13),
			$8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (device_id) DO UPDATE SET
			language             = COALESCE($3, user_settings.language),
			theme                = COALESCE($4, user_settings.theme),
			notification_enabled = COALESCE($5, user_settings.notification_enabled),
			notification_sound   = COALESCE($6, user_settings.notification_sound),
			calculation_method   = COALESCE($7, user_settings.calculation_method),
			latitude             = COALESCE($8, user_settings.latitude),
			longitude            = COALESCE($9, user_settings.longitude),
			city                 = COALESCE($10, user_settings.city),
			country              = COALESCE($11, user_settings.country),
			updated_at           = NOW()
		RETURNING ` + settingsColumns

	var s model.UserSettings
	err := r.db.GetContext(ctx, &s, query,
		uuid.NewString(),
		deviceID,
		patch.Language,
		patch.Theme,
		patch.NotificationEnabled,
		patch.NotificationSound,
		patch.CalculationMethod,
		patch.Latitude,
		patch.Longitude,
		patch.City,
		patch.Country,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}

	return &s, nil
}

// GetByDeviceID retrieves the settings record for a device
func (r *settingsRepository) GetByDeviceID(ctx context.Context, deviceID string) (*model.UserSettings, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM user_settings
		WHERE device_id = $1
	`

	var s model.UserSettings
	err := r.db.GetContext(ctx, &s, query, deviceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings by device id: %w", err)
	}

	return &s, nil
}
