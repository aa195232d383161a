package main

import (
	"atoll/config"
	"atoll/di"
	"atoll/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Atoll Operations API
// @version 1.0
// @description Room board, bookings and speedboat logistics for a guesthouse front desk.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		logger.ErrorWithStack(err)
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
