package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/petscout/backend/config"
	httpDelivery "github.com/petscout/backend/internal/delivery/http"
	"github.com/petscout/backend/internal/domain"
	"github.com/petscout/backend/internal/infrastructure/cache"
	"github.com/petscout/backend/internal/infrastructure/mockdata"
	"github.com/petscout/backend/internal/infrastructure/petfinder"
	"github.com/petscout/backend/internal/usecase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := setupLogger(cfg.Server.Environment)

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("starting petscout backend v1.0.0")

	// Cache tables, one per data category
	caches := cache.NewStore(cache.Options{
		SearchTTL:       cfg.Cache.SearchTTL,
		AnimalTTL:       cfg.Cache.AnimalTTL,
		OrganizationTTL: cfg.Cache.OrganizationTTL,
	})

	// Data sources: live provider client plus the mock generator. Without
	// credentials the facade never touches the live client.
	var live domain.AnimalSource
	if cfg.Petfinder.HasCredentials() {
		live = petfinder.NewClient(cfg.Petfinder, logger)
		logger.Info().Str("base_url", cfg.Petfinder.BaseURL).Msg("provider credentials configured, live mode available")
	} else if (cfg.Petfinder.ClientID == "") != (cfg.Petfinder.ClientSecret == "") {
		// Likely a typo'd deployment rather than an intentional mock setup
		logger.Warn().Msg("provider credentials are incomplete (one of client id/secret missing), serving mock data")
	} else {
		logger.Warn().Msg("no provider credentials configured, serving mock data")
	}
	mock := mockdata.NewGenerator()

	adoptions := usecase.NewAdoptionService(caches, live, mock, cfg.Petfinder.HasCredentials(), logger)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(adoptions, cfg.Petfinder.Snapshot())

	// Setup router
	router := httpDelivery.SetupRouter(cfg, logger, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogger builds the process logger: human-readable console output in
// development, JSON everywhere else
func setupLogger(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
