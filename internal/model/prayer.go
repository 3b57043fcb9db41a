package model

// PrayerTimes is the flat daily schema returned by GET /api/prayer-times.
// Time strings are passed through exactly as the upstream provider sends
// them, which may include a timezone suffix like "05:12 (+03)".
type PrayerTimes struct {
	Fajr        string `json:"fajr"`
	Sunrise     string `json:"sunrise"`
	Dhuhr       string `json:"dhuhr"`
	Asr         string `json:"asr"`
	Maghrib     string `json:"maghrib"`
	Isha        string `json:"isha"`
	Date        string `json:"date"`
	HijriDate   string `json:"hijri_date"`
	HijriDateAr string `json:"hijri_date_ar"`
	Timezone    string `json:"timezone"`
	Method      string `json:"method"`
}

// DailyTimes is one day of GET /api/prayer-times/monthly. Times here are
// bare clock values; any timezone suffix is stripped.
type DailyTimes struct {
	Date      string `json:"date"`
	Gregorian string `json:"gregorian"`
	Hijri     string `json:"hijri"`
	Fajr      string `json:"fajr"`
	Sunrise   string `json:"sunrise"`
	Dhuhr     string `json:"dhuhr"`
	Asr       string `json:"asr"`
	Maghrib   string `json:"maghrib"`
	Isha      string `json:"isha"`
}

// QiblaDirection is the response body for GET /api/qibla.
type QiblaDirection struct {
	Direction      float64 `json:"direction"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	KaabaLatitude  float64 `json:"kaaba_latitude"`
	KaabaLongitude float64 `json:"kaaba_longitude"`
}
