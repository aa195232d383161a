package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atoll/infras/otel"
	"atoll/internal/domains/staff/model"
	"atoll/roster"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	gModel "atoll/shared/model"
	gRepo "atoll/shared/repository"
	"atoll/shared/timezone"
)

type Staff interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Staff, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	otel otel.Otel
}

// New builds the staff table from the roster, in roster order.
func New(roster *roster.Roster, otel otel.Otel) (Staff, error) {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.FieldID, otel),
		otel:       otel,
	}

	now := timezone.Now()
	staff := make([]model.Staff, len(roster.Staff))

	for i, member := range roster.Staff {
		staff[i] = model.Staff{
			ID:       member.ID,
			Name:     member.Name,
			PIN:      member.Secret(),
			Palette:  member.Palette,
			Metadata: gModel.NewMetadata(constant.ActorSystem, now),
		}
	}

	if err := repo.InsertBulk(context.Background(), staff); err != nil {
		return nil, fmt.Errorf("failed to seed staff: %w", err)
	}

	return repo, nil
}
