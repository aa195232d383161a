package router

import (
	"atoll/internal/handlers/booking"
	"atoll/internal/handlers/grid"
	"atoll/internal/handlers/logistics"
	"atoll/internal/handlers/room"
	"atoll/internal/handlers/staff"
	"atoll/internal/handlers/summary"
	"atoll/internal/handlers/transfer"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Staff     staff.Handler
	Booking   booking.Handler
	Transfer  transfer.Handler
	Grid      grid.Handler
	Logistics logistics.Handler
	Summary   summary.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Transfer.Router(routerGroup)
		r.DomainHandlers.Grid.Router(routerGroup)
		r.DomainHandlers.Logistics.Router(routerGroup)
		r.DomainHandlers.Summary.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
