package service

import (
	"context"
	"fmt"
	"roster/config"
	"roster/infras/otel"
	assignmentService "roster/internal/domains/assignment/service"
	"roster/internal/domains/conflict/model"
	"roster/internal/domains/conflict/model/dto"
	"roster/internal/domains/conflict/repository"
	"roster/shared"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/failure"
	"roster/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Conflict interface {
	Check(ctx context.Context, req dto.CheckRequest) (dto.CheckResult, error)
	Record(ctx context.Context, req dto.RecordConflictRequest) (dto.ConflictResponse, error)
	Override(ctx context.Context, id string, req dto.OverrideConflictRequest) error
	ListUnresolved(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetConflictsResponse, error)
}

type serviceImpl struct {
	repo          repository.Conflict
	assignmentSvc assignmentService.Assignment
	cfg           *config.Config
	otel          otel.Otel
}

func New(repo repository.Conflict, assignmentSvc assignmentService.Assignment, cfg *config.Config, otel otel.Otel) Conflict {
	return &serviceImpl{
		repo:          repo,
		assignmentSvc: assignmentSvc,
		cfg:           cfg,
		otel:          otel,
	}
}

// Check reports every day inside the candidate range on which the user is
// already booked, across both storage shapes: stored day records and
// legacy assignments occupying their project span minus excluded dates.
// It is a read-only advisory query: detection never blocks a booking,
// and the check-then-create window is accepted with a database unique
// index as the backstop.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckRequest) (res dto.CheckResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.StartDate > req.EndDate {
		return res, failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	days, err := s.assignmentSvc.DaysForUser(ctx, req.UserID, req.StartDate, req.EndDate, req.ExcludeAssignmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked days for user")

		return res, fmt.Errorf("failed to get booked days for user: %w", err)
	}

	res.Conflicts = make([]dto.ConflictingDay, len(days))
	for i, day := range days {
		res.Conflicts[i] = dto.ConflictingDay{
			AssignmentID: day.AssignmentID,
			ProjectID:    day.ProjectID,
			ProjectName:  day.ProjectName,
			ConflictDate: day.WorkDate,
		}
	}

	res.HasConflicts = len(res.Conflicts) > 0

	return res, nil
}

// Record persists a detected clash so it can be reviewed and overridden
// later.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordConflictRequest) (res dto.ConflictResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	conflict := req.ToModel(user)
	if err = s.repo.Insert(ctx, conflict); err != nil {
		log.Error().Err(err).Msg("failed to record conflict")

		return res, fmt.Errorf("failed to record conflict: %w", err)
	}

	res.FromModel(conflict)

	return res, nil
}

// Override accepts a recorded clash. The row is marked resolved and
// stamped with the reason, actor, and time; it is never deleted.
func (s *serviceImpl) Override(ctx context.Context, id string, req dto.OverrideConflictRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Override")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if conflict exists")

		return fmt.Errorf("failed to check if conflict exists: %w", err)
	}

	if !exist {
		return failure.NotFound("conflict not found") // nolint:wrapcheck
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		model.FieldResolved:       true,
		model.FieldOverrideReason: req.Reason,
		model.FieldOverrideBy:     user,
		model.FieldOverrideAt:     now,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to override conflict")

		return fmt.Errorf("failed to override conflict: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListUnresolved(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetConflictsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUnresolved")
	defer scope.End()
	defer scope.TraceIfError(err)

	conflicts, err := s.repo.ListUnresolved(ctx, params, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list unresolved conflicts")

		return res, fmt.Errorf("failed to list unresolved conflicts: %w", err)
	}

	res.FromModels(conflicts)

	return res, nil
}
