package service

import (
	"context"
	"fmt"

	"atoll/infras/otel"
	bookingRepo "atoll/internal/domains/booking/repository"
	"atoll/internal/domains/grid/model"
	"atoll/internal/domains/grid/model/dto"
	roomRepo "atoll/internal/domains/room/repository"
	staffRepo "atoll/internal/domains/staff/repository"
	transferRepo "atoll/internal/domains/transfer/repository"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"
	"atoll/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Grid interface {
	Get(ctx context.Context, month string) (dto.GridResponse, error)
}

type serviceImpl struct {
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	transferRepo transferRepo.Transfer
	staffRepo    staffRepo.Staff
	otel         otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, transferRepo transferRepo.Transfer, staffRepo staffRepo.Staff, otel otel.Otel) Grid {
	return &serviceImpl{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		transferRepo: transferRepo,
		staffRepo:    staffRepo,
		otel:         otel,
	}
}

// Get projects month ("YYYY-MM"), the current month when empty.
func (s *serviceImpl) Get(ctx context.Context, month string) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()
	in := model.Input{Year: today.Year(), Month: today.Month(), Today: today}

	if month != constant.Empty {
		if in.Year, in.Month, err = calendar.ParseMonth(month); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	all := gDto.QueryParams{}
	none := gDto.FilterGroup{}

	if in.Rooms, err = s.roomRepo.GetAll(ctx, all, none); err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	if in.Bookings, err = s.bookingRepo.GetAll(ctx, all, none); err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	if in.Speedboats, err = s.transferRepo.GetAll(ctx, all, none); err != nil {
		log.Error().Err(err).Msg("failed to get speedboat bookings")

		return res, fmt.Errorf("failed to get speedboat bookings: %w", err)
	}

	if in.Staff, err = s.staffRepo.GetAll(ctx, all, none); err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	first := timezone.Date(in.Year, in.Month, 1)

	res.Grid = model.Project(in)
	res.Previous = first.AddDate(0, -1, 0).Format(constant.MonthLayout)
	res.Next = first.AddDate(0, 1, 0).Format(constant.MonthLayout)

	scope.SetAttribute("bookings", len(in.Bookings))

	return res, nil
}
