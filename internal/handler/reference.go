package handler

import (
	"net/http"

	"namazvakti/internal/httputil"
	"namazvakti/internal/model"
)

// ReferenceHandler serves the static lookup lists. Pure data, no
// dependencies.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Root handles GET /api/
func (h *ReferenceHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Namaz Vakitleri API",
		"version": "1.0",
	})
}

// TurkishCities handles GET /api/cities/turkey
func (h *ReferenceHandler) TurkishCities(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, http.StatusOK, model.TurkishCities)
}

// WorldCities handles GET /api/cities/world
func (h *ReferenceHandler) WorldCities(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, http.StatusOK, model.WorldCities)
}

// CalculationMethods handles GET /api/calculation-methods
func (h *ReferenceHandler) CalculationMethods(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, http.StatusOK, model.CalculationMethods)
}
