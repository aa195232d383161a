package handler

import (
	"net/http"
	"sync"

	"atoll/config"
	"atoll/di"
	"atoll/shared/logger"
	transport "atoll/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service *transport.HTTP
	initErr error
)

// Handler serves the API from a serverless function. The service graph is built once per instance so the
// in-memory stores survive between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		service, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	service.ServeHTTP(w, r)
}
