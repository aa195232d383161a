package summary

import (
	"context"
	"net/http"

	"atoll/infras/otel"
	"atoll/internal/domains/summary/service"
	"atoll/shared/constant"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Summary
	otel    otel.Otel
}

func New(service service.Summary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/summary", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSummary)
		routerGroup.Post("/refresh", handler.RefreshSummary)
	})
}

// GetSummary returns the status board text.
// @Summary Get the smart status
// @Description The latest generated summary of rooms and upcoming arrivals. Never fails; fallback text is returned instead.
// @Tags Summary
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Router /v1/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Current(ctx))
}

// RefreshSummary regenerates the status board text.
// @Summary Refresh the smart status
// @Description Summarize the current rooms and bookings now and return the board afterwards.
// @Tags Summary
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Router /v1/summary/refresh [post]
func (handler *Handler) RefreshSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshSummary")
	defer scope.End()

	res := handler.service.Refresh(context.WithoutCancel(ctx))

	scope.AddEvent("Summary refreshed")

	response.WithJSON(w, http.StatusOK, res)
}
