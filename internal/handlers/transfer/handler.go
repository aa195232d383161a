package transfer

import (
	"net/http"

	"atoll/infras/otel"
	"atoll/internal/domains/transfer/model"
	"atoll/internal/domains/transfer/model/dto"
	"atoll/internal/domains/transfer/service"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/validator"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transfer
	otel    otel.Otel
}

func New(service service.Transfer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transfers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AssignTransfer)
		routerGroup.Get("/", handler.GetTransfers)
		routerGroup.Get("/options", handler.GetOptions)
	})
}

// AssignTransfer records a speedboat booking on its own.
// @Summary Assign a speedboat transfer
// @Description Snap the requested times onto the schedule, verify the staff PIN and record the transfer.
// @Description A rejected request is returned in the error detail without its PIN.
// @Tags Transfer
// @Accept json
// @Produce json
// @Param request body dto.AssignTransferRequest true "Assign Transfer Request"
// @Success 201 {object} response.Data[dto.AssignTransferResponse] "Transfer assigned"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transfers [post]
func (handler *Handler) AssignTransfer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTransfer")
	defer scope.End()

	req := dto.AssignTransferRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Assign(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign transfer")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Transfer assigned successfully by staff " + req.StaffID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTransfers lists speedboat bookings.
// @Summary Get speedboat transfers
// @Description Retrieve standalone speedboat bookings with optional filtering and pagination.
// @Tags Transfer
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Departure date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (Pending, Confirmed, Arrived, Departed, Cancelled)"
// @Success 200 {object} response.Data[dto.GetTransfersResponse] "List of transfers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transfers [get]
func (handler *Handler) GetTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransfers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	date := r.URL.Query().Get(constant.RequestParamDate)
	status := r.URL.Query().Get(model.FieldStatus)

	if err := validator.ValidateVar(date, "omitempty,date"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate date filter")

		response.WithError(w, err)

		return
	}

	transfers, err := handler.service.GetAll(ctx, queryParams, date, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transfers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transfers retrieved successfully")

	response.WithJSON(w, http.StatusOK, transfers)
}

// GetOptions lists the speedboat schedule of a day.
// @Summary Get transfer options
// @Description Departure and return times for the date, Friday schedule included, plus the available routes.
// @Tags Transfer
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), today when omitted"
// @Success 200 {object} response.Data[dto.OptionsResponse] "Schedule"
// @Failure 400 {object} response.Error
// @Router /v1/transfers/options [get]
func (handler *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptions")
	defer scope.End()

	options, err := handler.service.Options(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transfer options")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, options)
}
