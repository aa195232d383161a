//go:build wireinject
// +build wireinject

package di

import (
	"atoll/config"
	"atoll/infras/kafka"
	"atoll/infras/llm"
	"atoll/infras/otel"
	"atoll/infras/redis"
	"atoll/infras/s3"
	"atoll/internal/events"
	"atoll/roster"
	"atoll/shared/cache"
	"atoll/transport/http"
	"atoll/transport/http/middleware"
	"atoll/transport/http/router"

	bookingRepository "atoll/internal/domains/booking/repository"
	bookingService "atoll/internal/domains/booking/service"
	gridService "atoll/internal/domains/grid/service"
	logisticsService "atoll/internal/domains/logistics/service"
	roomRepository "atoll/internal/domains/room/repository"
	roomService "atoll/internal/domains/room/service"
	staffRepository "atoll/internal/domains/staff/repository"
	staffService "atoll/internal/domains/staff/service"
	transferRepository "atoll/internal/domains/transfer/repository"
	transferService "atoll/internal/domains/transfer/service"

	bookingHandler "atoll/internal/handlers/booking"
	gridHandler "atoll/internal/handlers/grid"
	logisticsHandler "atoll/internal/handlers/logistics"
	roomHandler "atoll/internal/handlers/room"
	staffHandler "atoll/internal/handlers/staff"
	summaryHandler "atoll/internal/handlers/summary"
	transferHandler "atoll/internal/handlers/transfer"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	roster.Load,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	llm.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	events.New,
)

var repositories = wire.NewSet(
	roomRepository.New,
	staffRepository.New,
	bookingRepository.New,
	transferRepository.New,
)

var domains = wire.NewSet(
	roomService.New,
	staffService.New,
	bookingService.New,
	transferService.New,
	gridService.New,
	logisticsService.New,
	provideSummary,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	staffHandler.New,
	bookingHandler.New,
	transferHandler.New,
	gridHandler.New,
	logisticsHandler.New,
	summaryHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
