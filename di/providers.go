package di

import (
	"context"

	"atoll/config"
	"atoll/infras/llm"
	"atoll/infras/otel"
	bookingRepository "atoll/internal/domains/booking/repository"
	roomRepository "atoll/internal/domains/room/repository"
	summaryService "atoll/internal/domains/summary/service"
	"atoll/internal/events"
	"atoll/shared/cache"
)

// provideSummary builds the summary board and keeps it refreshed from store events for the life of the process.
func provideSummary(
	roomRepo roomRepository.Room,
	bookingRepo bookingRepository.Booking,
	llm llm.Client,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
	bus events.Bus,
) summaryService.Summary {
	summary := summaryService.New(roomRepo, bookingRepo, llm, cache, cfg, otel)
	summary.Start(context.Background(), bus)

	return summary
}
