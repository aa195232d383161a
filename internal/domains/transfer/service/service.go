package service

import (
	"context"
	"fmt"

	"atoll/infras/otel"
	bookingModel "atoll/internal/domains/booking/model"
	bookingRepo "atoll/internal/domains/booking/repository"
	staffService "atoll/internal/domains/staff/service"
	"atoll/internal/domains/transfer/model"
	"atoll/internal/domains/transfer/model/dto"
	"atoll/internal/domains/transfer/repository"
	"atoll/internal/events"
	"atoll/shared"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"

	"github.com/rs/zerolog/log"
)

type Transfer interface {
	Assign(ctx context.Context, req dto.AssignTransferRequest) (dto.AssignTransferResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, date, status string) (dto.GetTransfersResponse, error)
	Options(ctx context.Context, date string) (dto.OptionsResponse, error)
}

type serviceImpl struct {
	repo        repository.Transfer
	bookingRepo bookingRepo.Booking
	staff       staffService.Staff
	bus         events.Bus
	otel        otel.Otel
}

func New(repo repository.Transfer, bookingRepo bookingRepo.Booking, staff staffService.Staff, bus events.Bus, otel otel.Otel) Transfer {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		staff:       staff,
		bus:         bus,
		otel:        otel,
	}
}

// Assign records a standalone speedboat booking. Failures echo the request back without its PIN.
func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignTransferRequest) (res dto.AssignTransferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	corrections := req.Normalize()

	if err = req.Validate(); err != nil {
		return res, failure.WithDetail(err, req.Redacted()) // nolint:wrapcheck
	}

	if req.BookingID != constant.Empty {
		exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID))
		if err != nil {
			log.Error().Err(err).Str("booking", req.BookingID).Msg("failed to check if booking exists")

			return res, fmt.Errorf("failed to check if booking exists: %w", err)
		}

		if !exist {
			return res, failure.WithDetail(failure.BadRequestFromString(fmt.Sprintf("booking %s does not exist", req.BookingID)), req.Redacted()) // nolint:wrapcheck
		}
	}

	staff, err := s.staff.Authorize(ctx, req.StaffID, req.PIN)
	if err != nil {
		return res, failure.WithDetail(err, req.Redacted()) // nolint:wrapcheck
	}

	transfer := req.ToModel(staff.ID)

	if err = s.repo.Insert(ctx, transfer); err != nil {
		log.Error().Err(err).Msg("failed to create speedboat booking")

		return res, fmt.Errorf("failed to create speedboat booking: %w", err)
	}

	log.Info().
		Str("transfer", transfer.ID).
		Str("date", transfer.Date).
		Str("time", transfer.Time).
		Str("staff", staff.ID).
		Msg("speedboat booking created")

	s.bus.Publish(ctx, events.Event{Type: events.TransferCreated, EntityIDs: []string{transfer.ID}, Actor: staff.ID})

	res.Transfer.FromModel(transfer)
	res.Corrections = corrections

	if res.Corrections == nil {
		res.Corrections = []string{}
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, date, status string) (res dto.GetTransfersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if date != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: date})
	}

	if status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count speedboat bookings")

		return res, fmt.Errorf("failed to count speedboat bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get speedboat bookings")

		return res, fmt.Errorf("failed to get speedboat bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Options lists the schedule for date, today when empty.
func (s *serviceImpl) Options(ctx context.Context, date string) (res dto.OptionsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Options")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == constant.Empty {
		date = calendar.Today()
	}

	weekday, err := calendar.Weekday(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res = dto.OptionsResponse{
		Date:             date,
		Weekday:          weekday.String(),
		Departures:       model.DepartureOptions(date),
		Returns:          model.ReturnOptions(),
		Routes:           model.Routes,
		DefaultDeparture: model.DefaultDeparture,
		DefaultReturn:    model.DefaultReturn,
	}

	return res, nil
}
