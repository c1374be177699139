package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/internal/domains/conflict/model"
	gDto "roster/shared/dto"
	gRepo "roster/shared/repository"
)

type Conflict interface {
	Insert(ctx context.Context, model model.BookingConflict) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingConflict, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingConflict, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ListUnresolved(ctx context.Context, params gDto.QueryParams, userID string) ([]model.BookingConflict, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingConflict]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Conflict {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingConflict](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListUnresolved(ctx context.Context, params gDto.QueryParams, userID string) ([]model.BookingConflict, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResolved,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	if userID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldConflictDate
		params.SortDir = gDto.SortDirAsc
	}

	return r.Repository.GetAll(ctx, params, filter) // nolint:wrapcheck
}
