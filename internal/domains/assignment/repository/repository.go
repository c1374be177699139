package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/internal/domains/assignment/model"
	"roster/shared"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/logger"
	gRepo "roster/shared/repository"

	"github.com/rs/zerolog/log"
)

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Assignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteCascade(ctx context.Context, assignmentID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Assignment]
	dayRepo      gRepo.Repository[model.AssignmentDay]
	excludedRepo gRepo.Repository[model.AssignmentExcludedDate]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Assignment](model.EntityName, model.TableName, model.FieldID, db, otel),
		dayRepo:      gRepo.NewRepository[model.AssignmentDay](model.DayEntityName, model.DayTableName, model.FieldDayID, db, otel),
		excludedRepo: gRepo.NewRepository[model.AssignmentExcludedDate](model.ExcludedDateEntityName, model.ExcludedDateTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

// DeleteCascade removes an assignment together with its days and excluded
// dates in one transaction. Status history and resolved conflict records
// are left untouched as a permanent audit trail.
func (repo *repositoryImpl) DeleteCascade(ctx context.Context, assignmentID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.DeleteCascade")
	defer scope.End()

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback assignment cascade delete")
			}
		}
	}()

	childFilter := shared.FilterByID(assignmentID, model.FieldDayAssignmentID, model.DayTableName)
	if err = repo.dayRepo.DeleteTx(ctx, tx, childFilter); err != nil {
		return fmt.Errorf("failed to delete assignment days: %w", err)
	}

	excludedFilter := shared.FilterByID(assignmentID, model.FieldExcludedDateAssignmentID, model.ExcludedDateTableName)
	if err = repo.excludedRepo.DeleteTx(ctx, tx, excludedFilter); err != nil {
		return fmt.Errorf("failed to delete assignment excluded dates: %w", err)
	}

	if err = repo.Repository.DeleteTx(ctx, tx, shared.FilterByID(assignmentID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit assignment cascade delete: %w", err)
	}

	return nil
}
