package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	MigrationsPath string

	AladhanBaseURL string
	AladhanTimeout time.Duration
}

const defaultAladhanBaseURL = "http://api.aladhan.com/v1"

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	aladhanBaseURL := os.Getenv("ALADHAN_BASE_URL")
	if aladhanBaseURL == "" {
		aladhanBaseURL = defaultAladhanBaseURL
	}

	// Upstream calls must never hang a request; 30s matches the original
	// client-side budget for the Aladhan API.
	aladhanTimeout := 30 * time.Second
	if v := os.Getenv("ALADHAN_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			aladhanTimeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		ServerPort: serverPort,

		MigrationsPath: migrationsPath,

		AladhanBaseURL: aladhanBaseURL,
		AladhanTimeout: aladhanTimeout,
	}, nil
}
