package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atoll/infras/otel"
	"atoll/internal/domains/booking/model"
	gDto "atoll/shared/dto"
	gRepo "atoll/shared/repository"
)

type Booking interface {
	InsertBulk(ctx context.Context, models []model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.FieldID, otel),
		otel:       otel,
	}
}

// OverlappingRange matches bookings whose inclusive range shares a day with [start, end].
func OverlappingRange(start, end string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStartDate, Operator: gDto.FilterOperatorLessEq, Value: end},
			gDto.Filter{Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreaterEq, Value: start},
		},
	}
}
