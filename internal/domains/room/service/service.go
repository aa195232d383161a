package service

import (
	"context"
	"fmt"
	"sync"

	"atoll/infras/otel"
	"atoll/internal/domains/room/model"
	"atoll/internal/domains/room/model/dto"
	"atoll/internal/domains/room/repository"
	"atoll/internal/events"
	"atoll/shared"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	CycleStatus(ctx context.Context, id string) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.RoomResponse, error)
	Occupy(ctx context.Context, ids []string, actor string) error
}

type serviceImpl struct {
	// mu serializes read-modify-write status changes.
	mu   sync.Mutex
	repo repository.Room
	bus  events.Bus
	otel otel.Otel
}

func New(repo repository.Room, bus events.Bus, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		bus:  bus,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) CycleStatus(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CycleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	return s.setStatus(ctx, room, room.Status.Next())
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	status := model.Status(req.Status)
	if !status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", req.Status)) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	return s.setStatus(ctx, room, status)
}

// Occupy marks every room in ids Occupied in a single update. It shares the status lock with CycleStatus and
// UpdateStatus so a concurrent toggle cannot overwrite it with a stale status.
func (s *serviceImpl) Occupy(ctx context.Context, ids []string, actor string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupy")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(ids) == 0 {
		return nil
	}

	fields := shared.TransformFields(dto.StatusUpdate{Status: model.StatusOccupied}, actor)
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: ids},
	}}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Strs("rooms", ids).Msg("failed to mark rooms occupied")

		return fmt.Errorf("failed to mark rooms occupied: %w", err)
	}

	log.Info().Strs("rooms", ids).Str("actor", actor).Msg("rooms occupied")

	s.bus.Publish(ctx, events.Event{Type: events.RoomStatusChanged, EntityIDs: ids, Actor: actor})

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, room model.Room, status model.Status) (res dto.RoomResponse, err error) {
	actor := shared.Actor(ctx)
	fields := shared.TransformFields(dto.StatusUpdate{Status: status}, actor)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(room.ID, model.FieldID)); err != nil {
		log.Error().Err(err).Str("id", room.ID).Msg("failed to update room status")

		return res, fmt.Errorf("failed to update room status: %w", err)
	}

	log.Info().
		Str("room", room.ID).
		Str("from", string(room.Status)).
		Str("to", string(status)).
		Str("actor", actor).
		Msg("room status changed")

	s.bus.Publish(ctx, events.Event{Type: events.RoomStatusChanged, EntityIDs: []string{room.ID}, Actor: actor})

	updated, err := s.get(ctx, room.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}
