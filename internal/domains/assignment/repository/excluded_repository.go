package repository

//go:generate go run go.uber.org/mock/mockgen -source=./excluded_repository.go -destination=../mocks/excluded_repository_mock.go -package=mocks

import (
	"context"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/internal/domains/assignment/model"
	gDto "roster/shared/dto"
	gRepo "roster/shared/repository"
)

type AssignmentExcludedDate interface {
	Insert(ctx context.Context, model model.AssignmentExcludedDate) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AssignmentExcludedDate, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetForAssignment(ctx context.Context, assignmentID string) ([]model.AssignmentExcludedDate, error)
}

type excludedRepositoryImpl struct {
	gRepo.Repository[model.AssignmentExcludedDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewExcludedDate(db *postgres.Connection, otel otel.Otel) AssignmentExcludedDate {
	return &excludedRepositoryImpl{
		Repository: gRepo.NewRepository[model.AssignmentExcludedDate](model.ExcludedDateEntityName, model.ExcludedDateTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *excludedRepositoryImpl) GetForAssignment(ctx context.Context, assignmentID string) ([]model.AssignmentExcludedDate, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldExcludedDate,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldExcludedDateAssignmentID,
				Operator: gDto.FilterOperatorEq,
				Value:    assignmentID,
				Table:    model.ExcludedDateTableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
