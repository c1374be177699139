package repository

//go:generate go run go.uber.org/mock/mockgen -source=./day_repository.go -destination=../mocks/day_repository_mock.go -package=mocks

import (
	"context"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/internal/domains/assignment/model"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	gRepo "roster/shared/repository"
)

type AssignmentDay interface {
	InsertBulk(ctx context.Context, models []model.AssignmentDay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AssignmentDay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AssignmentDay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetForAssignment(ctx context.Context, assignmentID string) ([]model.AssignmentDay, error)
	GetForUserInRange(ctx context.Context, userID, startISO, endISO, excludeAssignmentID string) ([]model.AssignmentDay, error)
	GetInRange(ctx context.Context, startISO, endISO string) ([]model.AssignmentDay, error)
}

type dayRepositoryImpl struct {
	gRepo.Repository[model.AssignmentDay]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDay(db *postgres.Connection, otel otel.Otel) AssignmentDay {
	return &dayRepositoryImpl{
		Repository: gRepo.NewRepository[model.AssignmentDay](model.DayEntityName, model.DayTableName, model.FieldDayID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForAssignment returns an assignment's day records ordered by work date.
func (repo *dayRepositoryImpl) GetForAssignment(ctx context.Context, assignmentID string) ([]model.AssignmentDay, error) {
	params := gDto.QueryParams{
		SortBy:  model.DayTableName + "." + model.FieldWorkDate,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDayAssignmentID,
				Operator: gDto.FilterOperatorEq,
				Value:    assignmentID,
				Table:    model.DayTableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// GetForUserInRange returns every day scheduled for the user inside the
// inclusive [startISO, endISO] window, across all of their assignments.
// A non-empty excludeAssignmentID leaves that assignment's own days out,
// which edit flows use to avoid flagging self-overlap.
func (repo *dayRepositoryImpl) GetForUserInRange(ctx context.Context, userID, startISO, endISO, excludeAssignmentID string) ([]model.AssignmentDay, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.DayEntityName+".GetForUserInRange")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "work_date_from",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startISO,
				Table:    model.DayTableName,
			},
			gDto.Filter{
				ArgName:  "work_date_to",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    endISO,
				Table:    model.DayTableName,
			},
		},
	}

	if excludeAssignmentID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "exclude_assignment_id",
			Field:    model.FieldDayAssignmentID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeAssignmentID,
			Table:    model.DayTableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.DayTableName + "." + model.FieldWorkDate,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// GetInRange returns every scheduled day inside the inclusive
// [startISO, endISO] window, across all users and assignments.
func (repo *dayRepositoryImpl) GetInRange(ctx context.Context, startISO, endISO string) ([]model.AssignmentDay, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.DayEntityName+".GetInRange")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "work_date_from",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startISO,
				Table:    model.DayTableName,
			},
			gDto.Filter{
				ArgName:  "work_date_to",
				Field:    model.FieldWorkDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    endISO,
				Table:    model.DayTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.DayTableName + "." + model.FieldWorkDate,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
