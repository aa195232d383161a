package grid

import (
	"net/http"

	"atoll/infras/otel"
	"atoll/internal/domains/grid/service"
	"atoll/shared/constant"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Grid
	otel    otel.Otel
}

func New(service service.Grid, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/grid", handler.GetGrid)
}

// GetGrid projects a month of room occupancy.
// @Summary Get the occupancy grid
// @Description Rooms grouped by type against every day of the month, with the speedboat row and links to the adjacent months.
// @Tags Grid
// @Produce json
// @Param month query string false "Month (YYYY-MM), the current month when omitted"
// @Success 200 {object} response.Data[dto.GridResponse] "Grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/grid [get]
func (handler *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrid")
	defer scope.End()

	month := r.URL.Query().Get(constant.RequestParamMonth)

	grid, err := handler.service.Get(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("month", month).Msg("failed to project grid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Grid projected for " + grid.Month)

	response.WithJSON(w, http.StatusOK, grid)
}
