package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// AladhanClient talks to the Aladhan prayer-times API
// (https://aladhan.com/prayer-times-api). This service is a pass-through:
// all the astronomy (twilight angles per calculation method, timezone
// resolution) happens upstream, we only reshape the response.
//
// Calls are never retried and never cached; every request hits the API
// fresh, bounded by the request context and the client timeout.
type AladhanClient struct {
	baseURL    string
	httpClient *http.Client
}

// AladhanTimings holds the six prayer times of one day as the API names
// them. Values may carry a timezone suffix, e.g. "05:12 (+03)".
type AladhanTimings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// AladhanMonth is the month block inside a hijri or gregorian date.
type AladhanMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar,omitempty"`
}

// AladhanHijri is the hijri half of the date block.
type AladhanHijri struct {
	Date  string       `json:"date"`
	Day   string       `json:"day"`
	Month AladhanMonth `json:"month"`
	Year  string       `json:"year"`
}

// AladhanGregorian is the gregorian half of the date block.
type AladhanGregorian struct {
	Date  string       `json:"date"`
	Day   string       `json:"day"`
	Month AladhanMonth `json:"month"`
	Year  string       `json:"year"`
}

// AladhanDate combines the readable date with both calendars.
type AladhanDate struct {
	Readable  string           `json:"readable"`
	Timestamp string           `json:"timestamp"`
	Hijri     AladhanHijri     `json:"hijri"`
	Gregorian AladhanGregorian `json:"gregorian"`
}

// AladhanMeta carries the request metadata the API echoes back.
type AladhanMeta struct {
	Timezone string `json:"timezone"`
	Method   struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"method"`
}

// AladhanDay is one day of timings with its date block and metadata.
type AladhanDay struct {
	Timings AladhanTimings `json:"timings"`
	Date    AladhanDate    `json:"date"`
	Meta    AladhanMeta    `json:"meta"`
}

type aladhanTimingsResponse struct {
	Code int        `json:"code"`
	Data AladhanDay `json:"data"`
}

type aladhanCalendarResponse struct {
	Code int          `json:"code"`
	Data []AladhanDay `json:"data"`
}

// NewAladhanClient creates a client for the given base URL (e.g.
// "http://api.aladhan.com/v1") with the given per-call timeout.
func NewAladhanClient(baseURL string, timeout time.Duration) *AladhanClient {
	return &AladhanClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Timings fetches one day of prayer times. date is DD-MM-YYYY; when empty,
// today (server local time) is used, matching the API's own convention.
func (c *AladhanClient) Timings(ctx context.Context, latitude, longitude float64, date string, method int) (*AladhanDay, error) {
	if date == "" {
		date = time.Now().Format("02-01-2006")
	}

	endpoint := fmt.Sprintf("%s/timings/%s", c.baseURL, date)

	var resp aladhanTimingsResponse
	if err := c.get(ctx, endpoint, latitude, longitude, method, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// Calendar fetches a full month of prayer times.
func (c *AladhanClient) Calendar(ctx context.Context, latitude, longitude float64, month, year, method int) ([]AladhanDay, error) {
	endpoint := fmt.Sprintf("%s/calendar/%d/%d", c.baseURL, year, month)

	var resp aladhanCalendarResponse
	if err := c.get(ctx, endpoint, latitude, longitude, method, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// get issues one GET with the shared query parameters and decodes the body
// into out. Any transport error, non-2xx status or undecodable body comes
// back as a single wrapped error; callers surface it, they don't retry.
func (c *AladhanClient) get(ctx context.Context, endpoint string, latitude, longitude float64, method int, out interface{}) error {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("method", strconv.Itoa(method))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("aladhan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("aladhan api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode aladhan response: %w", err)
	}

	return nil
}
