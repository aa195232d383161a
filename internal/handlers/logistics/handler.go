package logistics

import (
	"net/http"

	"atoll/infras/otel"
	"atoll/internal/domains/logistics/service"
	"atoll/shared"
	"atoll/shared/constant"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Logistics
	otel    otel.Otel
}

func New(service service.Logistics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/logistics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFeed)
		routerGroup.Get("/{date}", handler.GetDay)
		routerGroup.Post("/{date}/manifest", handler.ExportManifest)
	})
}

// GetFeed lists the upcoming transfers.
// @Summary Get the logistics feed
// @Description The first eight transfers in date and time order, from bookings with a transfer and speedboat bookings.
// @Tags Logistics
// @Produce json
// @Success 200 {object} response.Data[dto.FeedResponse] "Feed"
// @Failure 500 {object} response.Error
// @Router /v1/logistics [get]
func (handler *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeed")
	defer scope.End()

	feed, err := handler.service.Feed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get logistics feed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, feed)
}

// GetDay lists every transfer of a day.
// @Summary Get transfers of a day
// @Description Every transfer departing on the date, in time order.
// @Tags Logistics
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DayResponse] "Transfers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/logistics/{date} [get]
func (handler *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)

	day, err := handler.service.Day(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get transfers of the day")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, day)
}

// ExportManifest uploads the passenger manifest of a day.
// @Summary Export a speedboat manifest
// @Description Upload the transfers of the date as a JSON manifest to object storage and return its URL.
// @Tags Logistics
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param X-Staff-ID header string false "Staff member exporting the manifest"
// @Success 201 {object} response.Data[dto.ManifestResponse] "Manifest"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/logistics/{date}/manifest [post]
func (handler *Handler) ExportManifest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportManifest")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)

	manifest, err := handler.service.ExportManifest(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to export manifest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Manifest exported by " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, manifest)
}
