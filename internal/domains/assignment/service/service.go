package service

import (
	"context"
	"fmt"
	"roster/config"
	"roster/infras/kafka"
	"roster/infras/otel"
	"roster/internal/domains/assignment/model"
	"roster/internal/domains/assignment/model/dto"
	"roster/internal/domains/assignment/repository"
	projectModel "roster/internal/domains/project/model"
	projectRepo "roster/internal/domains/project/repository"
	"roster/shared"
	"roster/shared/cache"
	"roster/shared/calendar"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/failure"
	"roster/shared/timezone"
	"slices"
	"sort"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAssignment    = "assignment:get"
	cacheGetAllAssignment = "assignment:gets"
	cacheCountAssignment  = "assignment:count"
	cacheSchedule         = "schedule"
)

type Assignment interface {
	Create(ctx context.Context, req dto.CreateAssignmentRequest) (dto.AssignmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAssignmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AssignmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAssignmentRequest, id string) error
	Delete(ctx context.Context, id string) error
	CycleStatus(ctx context.Context, id string, note *string) (dto.CycleStatusResponse, error)
	GetHistory(ctx context.Context, id string) (dto.GetStatusHistoryResponse, error)
	AddDays(ctx context.Context, assignmentID string, req dto.AddDaysRequest) error
	UpdateDay(ctx context.Context, dayID string, req dto.UpdateDayRequest) error
	RemoveDays(ctx context.Context, req dto.RemoveDaysRequest) error
	ActiveDates(ctx context.Context, assignmentID string) ([]string, error)
	DaysForUser(ctx context.Context, userID, startISO, endISO, excludeAssignmentID string) ([]model.AssignmentDay, error)
}

type serviceImpl struct {
	repo         repository.Assignment
	dayRepo      repository.AssignmentDay
	excludedRepo repository.AssignmentExcludedDate
	historyRepo  repository.BookingStatusHistory
	projectRepo  projectRepo.Project
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Assignment,
	dayRepo repository.AssignmentDay,
	excludedRepo repository.AssignmentExcludedDate,
	historyRepo repository.BookingStatusHistory,
	projectRepo projectRepo.Project,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Assignment {
	return &serviceImpl{
		repo:         repo,
		dayRepo:      dayRepo,
		excludedRepo: excludedRepo,
		historyRepo:  historyRepo,
		projectRepo:  projectRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

// Create inserts a new assignment. It does not run conflict detection;
// checking is the caller's responsibility before invoking create, which
// keeps this operation low-level and composable.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAssignmentRequest) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	projectExists, err := s.projectRepo.Exist(ctx, shared.FilterByID(req.ProjectID, projectModel.FieldID, projectModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if project exists")

		return res, fmt.Errorf("failed to check if project exists: %w", err)
	}

	if !projectExists {
		return res, failure.BadRequestFromString("project does not exist") // nolint:wrapcheck
	}

	assignment := req.ToModel(user)

	if err = s.repo.Insert(ctx, assignment); err != nil {
		log.Error().Err(err).Msg("failed to create assignment")

		return res, fmt.Errorf("failed to create assignment: %w", err)
	}

	res.FromModel(assignment)

	s.invalidate(ctx, assignment.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAssignment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for assignments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assignments")

		return res, fmt.Errorf("failed to count assignments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignments")

		return res, fmt.Errorf("failed to get assignments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save assignments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAssignment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assignments")

		return res, fmt.Errorf("failed to count assignments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save assignment count to cache")
		}
	}()

	return res, nil
}

// Get returns the assignment together with its day records and legacy
// excluded dates.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAssignment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for assignment")

		return res, nil
	}

	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return res, err
	}

	days, err := s.dayRepo.GetForAssignment(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment days")

		return res, fmt.Errorf("failed to get assignment days: %w", err)
	}

	excluded, err := s.excludedRepo.GetForAssignment(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment excluded dates")

		return res, fmt.Errorf("failed to get assignment excluded dates: %w", err)
	}

	res.FromModel(assignment)
	res.WithDays(days)
	res.WithExcludedDates(excluded)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save assignment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAssignmentRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if assignment exists")

		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("assignment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update assignment")

		return fmt.Errorf("failed to update assignment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete cascades to days and excluded dates. Status history and resolved
// conflicts survive as a permanent audit trail.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if assignment exists")

		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("assignment not found") // nolint:wrapcheck
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete assignment")

		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// CycleStatus advances the booking status one step along the cycle and
// appends a history row recording the transition and its actor.
func (s *serviceImpl) CycleStatus(ctx context.Context, id string, note *string) (res dto.CycleStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CycleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return res, err
	}

	oldStatus := assignment.BookingStatus
	newStatus := model.NextStatus(oldStatus)

	updatedFields := map[string]any{
		model.FieldBookingStatus: newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	history := dto.NewHistoryModel(id, oldStatus, newStatus, note, user)
	if err = s.historyRepo.Insert(ctx, history); err != nil {
		log.Error().Err(err).Msg("failed to append booking status history")

		return res, fmt.Errorf("failed to append booking status history: %w", err)
	}

	s.publishStatusEvent(ctx, assignment, oldStatus, newStatus, user)
	s.invalidate(ctx, id)

	return dto.CycleStatusResponse{ID: id, OldStatus: oldStatus, NewStatus: newStatus}, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, id string) (res dto.GetStatusHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	history, err := s.historyRepo.GetForAssignment(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking status history")

		return res, fmt.Errorf("failed to get booking status history: %w", err)
	}

	res.FromModels(history)

	return res, nil
}

// AddDays validates and inserts a batch of day records. The whole batch
// fails when any day is malformed or already scheduled; nothing is
// partially applied. The unique index on (assignment_id, work_date) is the
// backstop against concurrent duplicate inserts.
func (s *serviceImpl) AddDays(ctx context.Context, assignmentID string, req dto.AddDaysRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddDays")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getAssignment(ctx, assignmentID); err != nil {
		return err
	}

	seen := make(map[string]bool, len(req.Days))

	for _, day := range req.Days {
		if day.StartTime >= day.EndTime {
			return failure.BadRequestFromString(fmt.Sprintf("start_time must be before end_time on %s", day.WorkDate)) // nolint:wrapcheck
		}

		if seen[day.WorkDate] {
			return failure.BadRequestFromString(fmt.Sprintf("duplicate date %s in batch", day.WorkDate)) // nolint:wrapcheck
		}

		seen[day.WorkDate] = true
	}

	existing, err := s.dayRepo.GetForAssignment(ctx, assignmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get existing assignment days")

		return fmt.Errorf("failed to get existing assignment days: %w", err)
	}

	for _, day := range existing {
		if seen[day.WorkDate] {
			return failure.BadRequestFromString(fmt.Sprintf("date %s already scheduled for this assignment", day.WorkDate)) // nolint:wrapcheck
		}
	}

	days := make([]model.AssignmentDay, len(req.Days))
	for i, day := range req.Days {
		days[i] = day.ToModel(assignmentID, user)
	}

	if err = s.dayRepo.InsertBulk(ctx, days); err != nil {
		log.Error().Err(err).Msg("failed to insert assignment days")

		return fmt.Errorf("failed to insert assignment days: %w", err)
	}

	s.invalidate(ctx, assignmentID)

	return nil
}

// UpdateDay adjusts a single day's times. It does not re-check conflicts
// against other assignments; re-validation on edit is the caller's
// explicit responsibility, mirroring create.
func (s *serviceImpl) UpdateDay(ctx context.Context, dayID string, req dto.UpdateDayRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.StartTime >= req.EndTime {
		return failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(dayID, model.FieldDayID, model.DayTableName)

	day, err := s.dayRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment day")

		return fmt.Errorf("failed to get assignment day: %w", err)
	}

	if day.ID == constant.Empty {
		return failure.NotFound("assignment day not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStartTime:     req.StartTime,
		model.FieldEndTime:       req.EndTime,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.dayRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update assignment day")

		return fmt.Errorf("failed to update assignment day: %w", err)
	}

	s.invalidate(ctx, day.AssignmentID)

	return nil
}

// RemoveDays deletes the given day records. Ids that no longer exist are
// ignored rather than treated as errors.
func (s *serviceImpl) RemoveDays(ctx context.Context, req dto.RemoveDaysRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveDays")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDayID,
				Operator: gDto.FilterOperatorIn,
				Value:    req.DayIDs,
				Table:    model.DayTableName,
			},
		},
	}

	days, err := s.dayRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment days")

		return fmt.Errorf("failed to get assignment days: %w", err)
	}

	if len(days) == 0 {
		return nil
	}

	if err = s.dayRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove assignment days")

		return fmt.Errorf("failed to remove assignment days: %w", err)
	}

	invalidated := make(map[string]bool, len(days))
	for _, day := range days {
		if invalidated[day.AssignmentID] {
			continue
		}

		invalidated[day.AssignmentID] = true
		s.invalidate(ctx, day.AssignmentID)
	}

	return nil
}

// ActiveDates returns the dates an assignment actually occupies. Day-level
// records are authoritative when present; otherwise the legacy overlay
// applies: the project span minus excluded dates.
func (s *serviceImpl) ActiveDates(ctx context.Context, assignmentID string) (dates []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	days, err := s.dayRepo.GetForAssignment(ctx, assignmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment days")

		return nil, fmt.Errorf("failed to get assignment days: %w", err)
	}

	if len(days) > 0 {
		dates = make([]string, len(days))
		for i, day := range days {
			dates[i] = day.WorkDate
		}

		return dates, nil
	}

	assignment, err := s.getAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	return s.legacyDates(ctx, assignment)
}

// legacyDates resolves a legacy-shape assignment's occupancy: the project
// span minus its excluded dates.
func (s *serviceImpl) legacyDates(ctx context.Context, assignment model.Assignment) ([]string, error) {
	if assignment.ProjectStartDate == nil || assignment.ProjectEndDate == nil {
		return nil, nil
	}

	excluded, err := s.excludedRepo.GetForAssignment(ctx, assignment.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment excluded dates")

		return nil, fmt.Errorf("failed to get assignment excluded dates: %w", err)
	}

	excludedDates := make([]string, len(excluded))
	for i, ex := range excluded {
		excludedDates[i] = ex.ExcludedDate
	}

	var dates []string

	for _, date := range calendar.GetDateRange(*assignment.ProjectStartDate, *assignment.ProjectEndDate) {
		if !slices.Contains(excludedDates, date) {
			dates = append(dates, date)
		}
	}

	return dates, nil
}

// DaysForUser returns the user's occupied days inside [startISO, endISO]
// across both storage shapes: stored day records plus synthetic days for
// legacy assignments, whose occupancy is the project span minus excluded
// dates. Synthetic days carry no times. Results are ordered by work date.
func (s *serviceImpl) DaysForUser(ctx context.Context, userID, startISO, endISO, excludeAssignmentID string) (days []model.AssignmentDay, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DaysForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	days, err = s.dayRepo.GetForUserInRange(ctx, userID, startISO, endISO, excludeAssignmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked days for user")

		return nil, fmt.Errorf("failed to get booked days for user: %w", err)
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	assignments, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignments for user")

		return nil, fmt.Errorf("failed to get assignments for user: %w", err)
	}

	for _, assignment := range assignments {
		if assignment.ID == excludeAssignmentID {
			continue
		}

		stored, err := s.dayRepo.GetForAssignment(ctx, assignment.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get assignment days")

			return nil, fmt.Errorf("failed to get assignment days: %w", err)
		}

		// Day records are authoritative; the range query above already
		// covered this assignment.
		if len(stored) > 0 {
			continue
		}

		legacy, err := s.legacyDates(ctx, assignment)
		if err != nil {
			return nil, err
		}

		for _, date := range legacy {
			if !calendar.IsDateInRange(date, startISO, endISO) {
				continue
			}

			days = append(days, model.AssignmentDay{
				AssignmentID: assignment.ID,
				WorkDate:     date,
				ProjectID:    assignment.ProjectID,
				ProjectName:  assignment.ProjectName,
			})
		}
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].WorkDate != days[j].WorkDate {
			return days[i].WorkDate < days[j].WorkDate
		}

		return days[i].StartTime < days[j].StartTime
	})

	return days, nil
}

func (s *serviceImpl) getAssignment(ctx context.Context, id string) (model.Assignment, error) {
	assignment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment")

		return assignment, fmt.Errorf("failed to get assignment: %w", err)
	}

	if assignment.ID == constant.Empty {
		return assignment, failure.NotFound("assignment not found") // nolint:wrapcheck
	}

	return assignment, nil
}

func (s *serviceImpl) publishStatusEvent(ctx context.Context, assignment model.Assignment, oldStatus, newStatus, user string) {
	topic := s.cfg.Kafka.Topic.AssignmentStatus
	if topic == constant.Empty {
		return
	}

	event := dto.StatusEvent{
		AssignmentID: assignment.ID,
		ProjectID:    assignment.ProjectID,
		UserID:       assignment.UserID,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ChangedBy:    user,
		ChangedAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: assignment.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish status event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAssignment, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete assignment from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAssignment)
		shared.InvalidateCaches(c, s.cache, cacheCountAssignment)
		shared.InvalidateCaches(c, s.cache, cacheSchedule)
	}()
}
