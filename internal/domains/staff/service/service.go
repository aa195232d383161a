package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"atoll/config"
	"atoll/infras/otel"
	bookingModel "atoll/internal/domains/booking/model"
	bookingRepo "atoll/internal/domains/booking/repository"
	"atoll/internal/domains/staff/model"
	"atoll/internal/domains/staff/model/dto"
	"atoll/internal/domains/staff/repository"
	transferModel "atoll/internal/domains/transfer/model"
	transferRepo "atoll/internal/domains/transfer/repository"
	"atoll/shared"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"
	"atoll/shared/password"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	GetAll(ctx context.Context) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (model.Staff, error)
	Authorize(ctx context.Context, staffID, pin string) (model.Staff, error)
}

type serviceImpl struct {
	repo         repository.Staff
	bookingRepo  bookingRepo.Booking
	transferRepo transferRepo.Transfer
	guard        *pinGuard
	otel         otel.Otel
}

func New(cfg *config.Config, repo repository.Staff, bookingRepo bookingRepo.Booking, transferRepo transferRepo.Transfer, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		transferRepo: transferRepo,
		guard:        newPINGuard(cfg.Intake.PinAttempts, time.Duration(cfg.Intake.PinWindowSeconds)*time.Second),
		otel:         otel,
	}
}

// GetAll lists staff in roster order with the number of room bookings plus speedboat bookings each recorded.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	counts := make(map[string]int, len(staff))

	for _, member := range staff {
		bookings, err := s.bookingRepo.Count(ctx, shared.FilterByID(member.ID, bookingModel.FieldStaffID))
		if err != nil {
			log.Error().Err(err).Str("staff", member.ID).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}

		transfers, err := s.transferRepo.Count(ctx, shared.FilterByID(member.ID, transferModel.FieldStaffID))
		if err != nil {
			log.Error().Err(err).Str("staff", member.ID).Msg("failed to count speedboat bookings")

			return res, fmt.Errorf("failed to count speedboat bookings: %w", err)
		}

		counts[member.ID] = bookings + transfers
	}

	res.FromModels(staff, counts)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Staff, err error) {
	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	return res, nil
}

// Authorize checks pin against the staff member's stored PIN. Failed attempts are throttled per staff member
// and calling client.
func (s *serviceImpl) Authorize(ctx context.Context, staffID, pin string) (res model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.Get(ctx, staffID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return res, failure.BadRequestFromString(fmt.Sprintf("unknown staff member %q", staffID)) // nolint:wrapcheck
		}

		return res, err
	}

	client := shared.Client(ctx)

	if s.guard.Blocked(res.ID, client) {
		log.Warn().Str("staff", res.ID).Str("client", client).Msg("PIN attempts exhausted")

		return res, failure.TooManyRequests(fmt.Sprintf(constant.ResponseErrorPINAttempts, res.Name)) // nolint:wrapcheck
	}

	if err = password.VerifyPIN(pin, res.PIN); err != nil {
		s.guard.Fail(res.ID, client)

		log.Warn().Str("staff", res.ID).Str("client", client).Msg("invalid PIN")

		return res, failure.Unauthorized(fmt.Sprintf(constant.ResponseErrorInvalidPIN, res.Name)) // nolint:wrapcheck
	}

	return res, nil
}
