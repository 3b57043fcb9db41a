package model

import (
	"errors"
	"time"
)

// UserSettings is the per-device preferences record. device_id is the
// natural key: one record per device, looked up and upserted by it.
type UserSettings struct {
	ID                  string    `db:"id" json:"id"`
	DeviceID            string    `db:"device_id" json:"device_id"`
	Language            string    `db:"language" json:"language"`
	Theme               string    `db:"theme" json:"theme"`
	NotificationEnabled bool      `db:"notification_enabled" json:"notification_enabled"`
	NotificationSound   string    `db:"notification_sound" json:"notification_sound"`
	CalculationMethod   int       `db:"calculation_method" json:"calculation_method"`
	Latitude            *float64  `db:"latitude" json:"latitude"`
	Longitude           *float64  `db:"longitude" json:"longitude"`
	City                *string   `db:"city" json:"city"`
	Country             *string   `db:"country" json:"country"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// SettingsPatch is the request body for POST /api/settings. Nil fields mean
// "leave unchanged"; there is no way to clear a stored field back to null.
type SettingsPatch struct {
	Language            *string  `json:"language"`
	Theme               *string  `json:"theme"`
	NotificationEnabled *bool    `json:"notification_enabled"`
	NotificationSound   *string  `json:"notification_sound"`
	CalculationMethod   *int     `json:"calculation_method"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	City                *string  `json:"city"`
	Country             *string  `json:"country"`
}

// Defaults applied when a device writes settings for the first time.
// Method 13 is Diyanet İşleri Başkanlığı (Turkey).
const (
	DefaultLanguage            = "tr"
	DefaultTheme               = "dark"
	DefaultNotificationEnabled = true
	DefaultNotificationSound   = "default"
	DefaultCalculationMethod   = 13
)

var (
	// ErrSettingsNotFound is returned when no record exists for a device_id
	ErrSettingsNotFound = errors.New("settings not found")
)
