package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"namazvakti/internal/handler"
	"namazvakti/internal/httputil"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	PrayerHandler    *handler.PrayerHandler
	QiblaHandler     *handler.QiblaHandler
	SettingsHandler  *handler.SettingsHandler
	ReferenceHandler *handler.ReferenceHandler
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// The mobile app is served from a different origin, so the API is wide
	// open; there is no authenticated surface to protect.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Everything the app consumes lives under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/", cfg.ReferenceHandler.Root)

		r.Get("/prayer-times", cfg.PrayerHandler.GetDaily)
		r.Get("/prayer-times/monthly", cfg.PrayerHandler.GetMonthly)

		r.Get("/qibla", cfg.QiblaHandler.Get)

		r.Get("/cities/turkey", cfg.ReferenceHandler.TurkishCities)
		r.Get("/cities/world", cfg.ReferenceHandler.WorldCities)
		r.Get("/calculation-methods", cfg.ReferenceHandler.CalculationMethods)

		r.Post("/settings", cfg.SettingsHandler.Upsert)
		r.Get("/settings/{device_id}", cfg.SettingsHandler.Get)
	})

	return r
}
