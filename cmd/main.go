package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/api/v1/handlers"
	"github.com/auralabs/aura/internal/config"
	"github.com/auralabs/aura/internal/services"
)

func main() {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	setupLogger()

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	r := setupRouter(svcs)

	addr := ":" + config.GetPort()
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupLogger() {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r, svcs)
	return r
}
