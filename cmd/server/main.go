package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"namazvakti/internal/transport/http"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := http.Run(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
