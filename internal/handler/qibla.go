package handler

import (
	"net/http"

	"namazvakti/internal/httputil"
	"namazvakti/internal/model"
	"namazvakti/internal/service"
)

type QiblaHandler struct{}

func NewQiblaHandler() *QiblaHandler {
	return &QiblaHandler{}
}

// Get handles GET /api/qibla. The computation is pure, so this handler
// never touches the database or the upstream provider.
func (h *QiblaHandler) Get(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := coordinatesFromQuery(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, model.QiblaDirection{
		Direction:      service.QiblaDirection(lat, lng),
		Latitude:       lat,
		Longitude:      lng,
		KaabaLatitude:  service.KaabaLatitude,
		KaabaLongitude: service.KaabaLongitude,
	})
}
