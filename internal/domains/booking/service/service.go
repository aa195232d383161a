package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"atoll/config"
	"atoll/infras/otel"
	"atoll/internal/domains/booking/model"
	"atoll/internal/domains/booking/model/dto"
	"atoll/internal/domains/booking/repository"
	roomDto "atoll/internal/domains/room/model/dto"
	roomService "atoll/internal/domains/room/service"
	staffService "atoll/internal/domains/staff/service"
	transferModel "atoll/internal/domains/transfer/model"
	"atoll/internal/events"
	"atoll/shared"
	"atoll/shared/cache"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"
	"atoll/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Preview(ctx context.Context, req dto.DraftRequest) (dto.DraftResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, query dto.BookingQuery) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	// mu serializes commits so overlap warnings and room updates see every earlier booking.
	mu    sync.Mutex
	repo  repository.Booking
	rooms roomService.Room
	staff staffService.Staff
	bus   events.Bus
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
	// instance scopes cache keys to this process. The store is in memory, so another process's entries are stale.
	instance string
}

func New(
	repo repository.Booking,
	rooms roomService.Room,
	staff staffService.Staff,
	bus events.Bus,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		rooms:    rooms,
		staff:    staff,
		bus:      bus,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		instance: uuid.NewString(),
	}
}

// Preview applies the intake form to a fresh draft and reports whether it could be committed.
// It never fails on an invalid draft; the reason is carried in the draft instead.
func (s *serviceImpl) Preview(ctx context.Context, req dto.DraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := req.ToDraft()

	rooms, err := s.validate(ctx, &draft)
	if err != nil {
		if failure.GetCode(err) != http.StatusBadRequest {
			return res, err
		}

		draft.Reject(err.Error())
	} else {
		if draft.Warnings, err = s.overlaps(ctx, draft, rooms); err != nil {
			return res, err
		}

		res.Valid = true
	}

	res.Draft = draft
	res.DepartureOptions = draft.DepartureOptions()
	res.ReturnOptions = transferModel.ReturnOptions()

	return res, nil
}

// Create commits the draft as one booking per room. Nothing is stored unless every room is.
// Rejections carry the draft back in the failure detail so the form keeps its values.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := req.ToDraft()

	rooms, err := s.validate(ctx, &draft)
	if err != nil {
		draft.Reject(err.Error())

		return res, failure.WithDetail(err, draft) // nolint:wrapcheck
	}

	staff, err := s.staff.Authorize(ctx, draft.StaffID, req.PIN)
	if err != nil {
		draft.Reject(err.Error())

		return res, failure.WithDetail(err, draft) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.Warnings, err = s.overlaps(ctx, draft, rooms); err != nil {
		return res, err
	}

	now := timezone.Now()
	bookings := draft.Bookings(staff.ID, now)

	if err = s.repo.InsertBulk(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to create bookings")

		return res, fmt.Errorf("failed to create bookings: %w", err)
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	if len(bookings) > 0 && bookings[0].Covers(timezone.Today()) {
		if err = s.rooms.Occupy(ctx, draft.RoomIDs, staff.ID); err != nil {
			s.rollback(ctx, ids)

			return res, err
		}
	}

	draft.Commit()

	if err = s.cache.Clear(ctx, cacheGetAllBooking); err != nil {
		log.Error().Err(err).Msg("failed to invalidate bookings cache")
	}

	log.Info().
		Strs("bookings", ids).
		Str("guest", draft.GuestName).
		Str("staff", staff.ID).
		Int("warnings", len(draft.Warnings)).
		Msg("bookings created")

	s.bus.Publish(ctx, events.Event{Type: events.BookingCreated, EntityIDs: ids, Actor: staff.ID})

	res.FromModels(draft, bookings)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, query dto.BookingQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking,
		s.instance,
		query.Key(),
		"page="+strconv.Itoa(req.Page),
		"limit="+strconv.Itoa(req.Limit),
		"sort="+req.SortBy+" "+req.SortDir,
	)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	filter := query.Filter()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, s.instance, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

// validate checks the draft and resolves its rooms. Invalid input is a bad request failure.
func (s *serviceImpl) validate(ctx context.Context, draft *model.Draft) (map[string]roomDto.RoomResponse, error) {
	if err := draft.Validate(); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	rooms := make(map[string]roomDto.RoomResponse, len(draft.RoomIDs))

	for _, id := range draft.RoomIDs {
		room, err := s.rooms.Get(ctx, id)
		if failure.GetCode(err) == http.StatusNotFound {
			return nil, failure.BadRequestFromString(fmt.Sprintf("room %s does not exist", id)) // nolint:wrapcheck
		}

		if err != nil {
			return nil, err
		}

		rooms[id] = room
	}

	return rooms, nil
}

// overlaps describes existing bookings sharing a night with the draft. Overlaps do not block a commit.
func (s *serviceImpl) overlaps(ctx context.Context, draft model.Draft, rooms map[string]roomDto.RoomResponse) ([]string, error) {
	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorIn, Value: draft.RoomIDs},
			repository.OverlappingRange(draft.StartDate, draft.EndDate),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return nil, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	warnings := make([]string, 0, len(existing))

	for _, booking := range existing {
		warnings = append(warnings, fmt.Sprintf("Room %s is already booked for %s from %s to %s",
			rooms[booking.RoomID].Name, booking.GuestName, booking.StartDate, booking.EndDate))
	}

	return warnings, nil
}

// rollback removes bookings stored by a commit that could not finish.
func (s *serviceImpl) rollback(ctx context.Context, ids []string) {
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: ids},
	}}

	if err := s.repo.Delete(context.WithoutCancel(ctx), filter); err != nil {
		log.Error().Err(err).Strs("bookings", ids).Msg("failed to roll back bookings")
	}
}
