package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atoll/infras/otel"
	"atoll/internal/domains/transfer/model"
	gDto "atoll/shared/dto"
	gRepo "atoll/shared/repository"
)

type Transfer interface {
	Insert(ctx context.Context, model model.SpeedboatBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.SpeedboatBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.SpeedboatBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SpeedboatBooking]
	otel otel.Otel
}

func New(otel otel.Otel) Transfer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SpeedboatBooking](model.EntityName, model.FieldID, otel),
		otel:       otel,
	}
}
