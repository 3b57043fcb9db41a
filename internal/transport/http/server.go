package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/rs/zerolog/log"

	"namazvakti/internal/config"
	"namazvakti/internal/database"
	"namazvakti/internal/handler"
	"namazvakti/internal/repository"
	"namazvakti/internal/service"
)

// Run wires the whole service together and blocks serving HTTP. The
// database handle is owned here: opened before any repository sees it,
// closed when the server stops.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	settingsRepo := repository.NewSettingsRepository(db)
	settingsService := service.NewSettingsService(settingsRepo)

	aladhan := service.NewAladhanClient(cfg.AladhanBaseURL, cfg.AladhanTimeout)
	prayerService := service.NewPrayerService(aladhan)

	router := NewRouter(RouterConfig{
		PrayerHandler:    handler.NewPrayerHandler(prayerService),
		QiblaHandler:     handler.NewQiblaHandler(),
		SettingsHandler:  handler.NewSettingsHandler(settingsService),
		ReferenceHandler: handler.NewReferenceHandler(),
	})

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")

	return stdhttp.ListenAndServe(addr, router)
}
