package service

import (
	"context"
	"fmt"
	"strings"

	"namazvakti/internal/model"
)

// TimingsProvider is the upstream prayer-times source. *AladhanClient is
// the production implementation; tests substitute a fake.
type TimingsProvider interface {
	Timings(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error)
	Calendar(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error)
}

// PrayerService reshapes the upstream schema into the flat API schema.
type PrayerService struct {
	provider TimingsProvider
}

func NewPrayerService(provider TimingsProvider) *PrayerService {
	return &PrayerService{provider: provider}
}

// GetDaily returns one day of prayer times. Time strings are kept exactly
// as the provider sends them, timezone suffix included.
func (s *PrayerService) GetDaily(ctx context.Context, latitude, longitude float64, date string, method int) (*model.PrayerTimes, error) {
	day, err := s.provider.Timings(ctx, latitude, longitude, date, method)
	if err != nil {
		return nil, fmt.Errorf("fetch prayer times: %w", err)
	}

	return &model.PrayerTimes{
		Fajr:        day.Timings.Fajr,
		Sunrise:     day.Timings.Sunrise,
		Dhuhr:       day.Timings.Dhuhr,
		Asr:         day.Timings.Asr,
		Maghrib:     day.Timings.Maghrib,
		Isha:        day.Timings.Isha,
		Date:        day.Date.Readable,
		HijriDate:   fmt.Sprintf("%s %s %s", day.Date.Hijri.Day, day.Date.Hijri.Month.En, day.Date.Hijri.Year),
		HijriDateAr: fmt.Sprintf("%s %s %s", day.Date.Hijri.Day, day.Date.Hijri.Month.Ar, day.Date.Hijri.Year),
		Timezone:    day.Meta.Timezone,
		Method:      day.Meta.Method.Name,
	}, nil
}

// GetMonthly returns a whole month, one entry per day, with timezone
// suffixes stripped from the time strings so clients get bare clock values.
func (s *PrayerService) GetMonthly(ctx context.Context, latitude, longitude float64, month, year, method int) ([]model.DailyTimes, error) {
	days, err := s.provider.Calendar(ctx, latitude, longitude, month, year, method)
	if err != nil {
		return nil, fmt.Errorf("fetch monthly prayer times: %w", err)
	}

	monthly := make([]model.DailyTimes, 0, len(days))
	for _, day := range days {
		monthly = append(monthly, model.DailyTimes{
			Date:      day.Date.Readable,
			Gregorian: day.Date.Gregorian.Date,
			Hijri:     fmt.Sprintf("%s %s", day.Date.Hijri.Day, day.Date.Hijri.Month.En),
			Fajr:      clockOnly(day.Timings.Fajr),
			Sunrise:   clockOnly(day.Timings.Sunrise),
			Dhuhr:     clockOnly(day.Timings.Dhuhr),
			Asr:       clockOnly(day.Timings.Asr),
			Maghrib:   clockOnly(day.Timings.Maghrib),
			Isha:      clockOnly(day.Timings.Isha),
		})
	}

	return monthly, nil
}

// clockOnly drops anything after the first space, turning
// "05:12 (+03)" into "05:12".
func clockOnly(t string) string {
	if i := strings.IndexByte(t, ' '); i >= 0 {
		return t[:i]
	}
	return t
}
