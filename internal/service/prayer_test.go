package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeTimingsProvider lets each test script the upstream responses without
// touching the network.
type fakeTimingsProvider struct {
	timingsFn  func(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error)
	calendarFn func(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error)

	timingsCalls  int
	calendarCalls int
}

func (f *fakeTimingsProvider) Timings(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error) {
	f.timingsCalls++
	if f.timingsFn != nil {
		return f.timingsFn(ctx, latitude, longitude, date, method)
	}
	return nil, errors.New("not scripted")
}

func (f *fakeTimingsProvider) Calendar(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error) {
	f.calendarCalls++
	if f.calendarFn != nil {
		return f.calendarFn(ctx, latitude, longitude, month, year, method)
	}
	return nil, errors.New("not scripted")
}

func sampleDay() AladhanDay {
	return AladhanDay{
		Timings: AladhanTimings{
			Fajr:    "05:12 (+03)",
			Sunrise: "06:43 (+03)",
			Dhuhr:   "12:08 (+03)",
			Asr:     "14:32 (+03)",
			Maghrib: "17:21 (+03)",
			Isha:    "18:47 (+03)",
		},
		Date: AladhanDate{
			Readable: "15 Jan 2026",
			Hijri: AladhanHijri{
				Day:   "26",
				Month: AladhanMonth{Number: 7, En: "Rajab", Ar: "رجب"},
				Year:  "1447",
			},
			Gregorian: AladhanGregorian{
				Date: "15-01-2026",
			},
		},
		Meta: AladhanMeta{
			Timezone: "Europe/Istanbul",
			Method: struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			}{ID: 13, Name: "Diyanet İşleri Başkanlığı, Turkey"},
		},
	}
}

func TestPrayerService_GetDaily(t *testing.T) {
	day := sampleDay()
	provider := &fakeTimingsProvider{
		timingsFn: func(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error) {
			return &day, nil
		},
	}
	svc := NewPrayerService(provider)

	got, err := svc.GetDaily(context.Background(), 41.0082, 28.9784, "15-01-2026", 13)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Daily times keep the upstream string verbatim, suffix included.
	if got.Fajr != "05:12 (+03)" {
		t.Errorf("fajr = %q, want %q", got.Fajr, "05:12 (+03)")
	}
	if got.Isha != "18:47 (+03)" {
		t.Errorf("isha = %q, want %q", got.Isha, "18:47 (+03)")
	}
	if got.Date != "15 Jan 2026" {
		t.Errorf("date = %q, want %q", got.Date, "15 Jan 2026")
	}
	if got.HijriDate != "26 Rajab 1447" {
		t.Errorf("hijri_date = %q, want %q", got.HijriDate, "26 Rajab 1447")
	}
	if got.HijriDateAr != "26 رجب 1447" {
		t.Errorf("hijri_date_ar = %q, want %q", got.HijriDateAr, "26 رجب 1447")
	}
	if got.Timezone != "Europe/Istanbul" {
		t.Errorf("timezone = %q, want %q", got.Timezone, "Europe/Istanbul")
	}
	if got.Method != "Diyanet İşleri Başkanlığı, Turkey" {
		t.Errorf("method = %q", got.Method)
	}
}

func TestPrayerService_GetDaily_UpstreamError(t *testing.T) {
	upstreamErr := errors.New("aladhan api error: status=502")
	provider := &fakeTimingsProvider{
		timingsFn: func(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error) {
			return nil, upstreamErr
		},
	}
	svc := NewPrayerService(provider)

	_, err := svc.GetDaily(context.Background(), 41.0, 29.0, "", 13)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, upstreamErr) {
		t.Errorf("error should wrap the upstream cause, got: %v", err)
	}
	if !strings.Contains(err.Error(), "fetch prayer times") {
		t.Errorf("error = %q, want context prefix", err.Error())
	}
}

func TestPrayerService_GetMonthly(t *testing.T) {
	day := sampleDay()
	second := sampleDay()
	second.Timings.Fajr = "05:13"
	second.Date.Readable = "16 Jan 2026"
	second.Date.Gregorian.Date = "16-01-2026"
	second.Date.Hijri.Day = "27"

	provider := &fakeTimingsProvider{
		calendarFn: func(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error) {
			return []AladhanDay{day, second}, nil
		},
	}
	svc := NewPrayerService(provider)

	got, err := svc.GetMonthly(context.Background(), 41.0082, 28.9784, 1, 2026, 13)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// Monthly times are bare clock values: the timezone suffix is stripped.
	if got[0].Fajr != "05:12" {
		t.Errorf("fajr = %q, want %q", got[0].Fajr, "05:12")
	}
	if got[0].Maghrib != "17:21" {
		t.Errorf("maghrib = %q, want %q", got[0].Maghrib, "17:21")
	}
	if got[0].Hijri != "26 Rajab" {
		t.Errorf("hijri = %q, want %q", got[0].Hijri, "26 Rajab")
	}
	if got[0].Gregorian != "15-01-2026" {
		t.Errorf("gregorian = %q, want %q", got[0].Gregorian, "15-01-2026")
	}

	// A time string without a suffix passes through unchanged.
	if got[1].Fajr != "05:13" {
		t.Errorf("fajr = %q, want %q", got[1].Fajr, "05:13")
	}
	if got[1].Date != "16 Jan 2026" {
		t.Errorf("date = %q, want %q", got[1].Date, "16 Jan 2026")
	}
}

func TestPrayerService_GetMonthly_UpstreamError(t *testing.T) {
	provider := &fakeTimingsProvider{
		calendarFn: func(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewPrayerService(provider)

	if _, err := svc.GetMonthly(context.Background(), 41.0, 29.0, 1, 2026, 13); err == nil {
		t.Fatal("expected error, got nil")
	}
	if provider.calendarCalls != 1 {
		t.Errorf("calendar called %d times, want exactly 1 (no retries)", provider.calendarCalls)
	}
}
