package repository

//go:generate go run go.uber.org/mock/mockgen -source=./history_repository.go -destination=../mocks/history_repository_mock.go -package=mocks

import (
	"context"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/internal/domains/assignment/model"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	gRepo "roster/shared/repository"
)

// BookingStatusHistory is append-only: no update or delete operations exist.
type BookingStatusHistory interface {
	Insert(ctx context.Context, model model.BookingStatusHistory) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingStatusHistory, error)
	GetForAssignment(ctx context.Context, assignmentID string) ([]model.BookingStatusHistory, error)
}

type historyRepositoryImpl struct {
	gRepo.Repository[model.BookingStatusHistory]
	db   *postgres.Connection
	otel otel.Otel
}

func NewHistory(db *postgres.Connection, otel otel.Otel) BookingStatusHistory {
	return &historyRepositoryImpl{
		Repository: gRepo.NewRepository[model.BookingStatusHistory](model.HistoryEntityName, model.HistoryTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *historyRepositoryImpl) GetForAssignment(ctx context.Context, assignmentID string) ([]model.BookingStatusHistory, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHistoryAssignmentID,
				Operator: gDto.FilterOperatorEq,
				Value:    assignmentID,
				Table:    model.HistoryTableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
