package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atoll/infras/otel"
	"atoll/internal/domains/room/model"
	"atoll/roster"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	gModel "atoll/shared/model"
	gRepo "atoll/shared/repository"
	"atoll/shared/timezone"
)

type Room interface {
	InsertBulk(ctx context.Context, models []model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

// New builds the room table seeded from the roster, every room starting Ready.
func New(roster *roster.Roster, otel otel.Otel) (Room, error) {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.FieldID, otel),
		otel:       otel,
	}

	now := timezone.Now()
	rooms := make([]model.Room, 0, len(roster.Rooms))

	for _, room := range roster.Rooms {
		roomType := model.Type(room.Type)
		if !roomType.Valid() {
			return nil, fmt.Errorf("failed to seed rooms: room %s has unknown type %q", room.ID, room.Type)
		}

		rooms = append(rooms, model.Room{
			ID:       room.ID,
			Name:     room.Name,
			Type:     roomType,
			Status:   model.StatusReady,
			Metadata: gModel.NewMetadata(constant.ActorSystem, now),
		})
	}

	if err := repo.InsertBulk(context.Background(), rooms); err != nil {
		return nil, fmt.Errorf("failed to seed rooms: %w", err)
	}

	return repo, nil
}
