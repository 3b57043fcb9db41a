package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"namazvakti/internal/httputil"
	"namazvakti/internal/service"
)

type PrayerHandler struct {
	prayerService *service.PrayerService
}

func NewPrayerHandler(prayerService *service.PrayerService) *PrayerHandler {
	return &PrayerHandler{
		prayerService: prayerService,
	}
}

// GetDaily handles GET /api/prayer-times
func (h *PrayerHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := coordinatesFromQuery(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	method, err := methodFromQuery(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	// Optional, DD-MM-YYYY; empty means today. Passed through as-is, the
	// provider rejects unparseable dates itself.
	date := r.URL.Query().Get("date")

	times, err := h.prayerService.GetDaily(r.Context(), lat, lng, date, method)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("failed to fetch prayer times")
		httputil.WriteInternalError(w, "Failed to fetch prayer times: "+err.Error())
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, times)
}

// GetMonthly handles GET /api/prayer-times/monthly
func (h *PrayerHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := coordinatesFromQuery(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	method, err := methodFromQuery(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		httputil.WriteBadRequest(w, "month must be an integer between 1 and 12")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		httputil.WriteBadRequest(w, "year must be a positive integer")
		return
	}

	monthly, err := h.prayerService.GetMonthly(r.Context(), lat, lng, month, year, method)
	if err != nil {
		log.Error().Err(err).Int("month", month).Int("year", year).Msg("failed to fetch monthly prayer times")
		httputil.WriteInternalError(w, "Failed to fetch monthly prayer times: "+err.Error())
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, monthly)
}
