package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"namazvakti/internal/httputil"
	"namazvakti/internal/model"
	"namazvakti/internal/service"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Upsert handles POST /api/settings?device_id=...
// The body is a partial settings object; omitted fields keep their stored
// value (or get a default on first write for the device).
func (h *SettingsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if strings.TrimSpace(deviceID) == "" {
		httputil.WriteBadRequest(w, "Query parameter 'device_id' is required")
		return
	}

	var patch model.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Upsert(r.Context(), deviceID, &patch)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to save settings")
		httputil.WriteInternalError(w, "Failed to save settings: "+err.Error())
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, settings)
}

// Get handles GET /api/settings/{device_id}
// A device that never wrote settings gets {"success":true,"data":null},
// not a 404: the mobile client treats "no settings yet" as a normal state.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	settings, err := h.settingsService.GetByDeviceID(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			httputil.WriteSuccess(w, http.StatusOK, nil)
			return
		}
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to get settings")
		httputil.WriteInternalError(w, "Failed to get settings")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, settings)
}
