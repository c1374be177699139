package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"roster/config"
	"roster/infras/otel"
	assignmentModel "roster/internal/domains/assignment/model"
	assignmentRepo "roster/internal/domains/assignment/repository"
	assignmentService "roster/internal/domains/assignment/service"
	projectModel "roster/internal/domains/project/model"
	projectRepo "roster/internal/domains/project/repository"
	"roster/internal/domains/schedule/model/dto"
	"roster/shared"
	"roster/shared/cache"
	"roster/shared/calendar"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheMonthView = "schedule:month"
	cacheGantt     = "schedule:gantt"
)

// Schedule projects stored assignments onto calendar-shaped views. It
// never mutates anything; all write paths live with the assignment
// domain.
type Schedule interface {
	MonthView(ctx context.Context, year int, month time.Month) (dto.MonthViewResponse, error)
	WeekView(ctx context.Context, dateISO string) (dto.WeekViewResponse, error)
	UserSchedule(ctx context.Context, userID, startISO, endISO string) (dto.UserScheduleResponse, error)
	ProjectGantt(ctx context.Context, projectID string) (dto.GanttResponse, error)
}

type serviceImpl struct {
	dayRepo           assignmentRepo.AssignmentDay
	assignmentRepo    assignmentRepo.Assignment
	assignmentService assignmentService.Assignment
	projectRepo       projectRepo.Project
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(
	dayRepo assignmentRepo.AssignmentDay,
	assignmentRepo assignmentRepo.Assignment,
	assignmentService assignmentService.Assignment,
	projectRepo projectRepo.Project,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		dayRepo:           dayRepo,
		assignmentRepo:    assignmentRepo,
		assignmentService: assignmentService,
		projectRepo:       projectRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

func (s *serviceImpl) gridOptions() calendar.GridOptions {
	return calendar.GridOptions{IncludeWeekends: s.cfg.App.Schedule.IncludeWeekends}
}

// MonthView returns the month grid with every booked slot mapped onto its
// date. The grid spans whole weeks, so cells from the surrounding months
// are included.
func (s *serviceImpl) MonthView(ctx context.Context, year int, month time.Month) (res dto.MonthViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthView")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheMonthView, strconv.Itoa(year), strconv.Itoa(int(month)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for month view")

		return res, nil
	}

	grid := calendar.GetCalendarDays(year, month, s.gridOptions())
	if len(grid) == 0 {
		return res, failure.BadRequestFromString("invalid year or month") // nolint:wrapcheck
	}

	days, err := s.dayRepo.GetInRange(ctx, grid[0], grid[len(grid)-1])
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled days")

		return res, fmt.Errorf("failed to get scheduled days: %w", err)
	}

	res = dto.MonthViewResponse{
		Year:  year,
		Month: int(month),
		Days:  dto.FillDays(grid, days),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save month view to cache")
		}
	}()

	return res, nil
}

// WeekView returns the week containing dateISO with booked slots mapped
// onto each date.
func (s *serviceImpl) WeekView(ctx context.Context, dateISO string) (res dto.WeekViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WeekView")
	defer scope.End()
	defer scope.TraceIfError(err)

	grid := calendar.GetWeekViewDays(dateISO, s.gridOptions())
	if len(grid) == 0 {
		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	days, err := s.dayRepo.GetInRange(ctx, grid[0], grid[len(grid)-1])
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled days")

		return res, fmt.Errorf("failed to get scheduled days: %w", err)
	}

	res.Days = dto.FillDays(grid, days)

	return res, nil
}

// UserSchedule returns the user's occupied dates inside the window,
// legacy-shape assignments included. A date booked by more than one
// assignment is flagged as a conflict.
func (s *serviceImpl) UserSchedule(ctx context.Context, userID, startISO, endISO string) (res dto.UserScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UserSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if startISO > endISO {
		return res, failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	days, err := s.assignmentService.DaysForUser(ctx, userID, startISO, endISO, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user schedule")

		return res, fmt.Errorf("failed to get user schedule: %w", err)
	}

	res = dto.UserScheduleResponse{
		UserID:    userID,
		StartDate: startISO,
		EndDate:   endISO,
		Days:      groupUserDays(days),
	}

	return res, nil
}

// groupUserDays folds the sorted day rows into per-date cells. Rows arrive
// ordered by work date, so one pass suffices.
func groupUserDays(days []assignmentModel.AssignmentDay) []dto.UserScheduleDay {
	var res []dto.UserScheduleDay

	dates := make([]string, 0, len(days))
	byDate := make(map[string][]assignmentModel.AssignmentDay, len(days))

	for _, day := range days {
		if _, ok := byDate[day.WorkDate]; !ok {
			dates = append(dates, day.WorkDate)
		}

		byDate[day.WorkDate] = append(byDate[day.WorkDate], day)
	}

	for _, date := range dates {
		cell := dto.UserScheduleDay{
			Date:        date,
			HasConflict: len(byDate[date]) > 1,
		}

		filled := dto.FillDays([]string{date}, byDate[date])
		cell.Entries = filled[0].Entries

		res = append(res, cell)
	}

	return res
}

// ProjectGantt renders one timeline row per assignment on the project,
// with each row's active dates folded into maximal consecutive blocks.
func (s *serviceImpl) ProjectGantt(ctx context.Context, projectID string) (res dto.GanttResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProjectGantt")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGantt, projectID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project gantt")

		return res, nil
	}

	project, err := s.projectRepo.Get(ctx, shared.FilterByID(projectID, projectModel.FieldID, projectModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty {
		return res, failure.NotFound("project not found") // nolint:wrapcheck
	}

	assignments, err := s.assignmentRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(projectID, assignmentModel.FieldProjectID, assignmentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project assignments")

		return res, fmt.Errorf("failed to get project assignments: %w", err)
	}

	res = dto.GanttResponse{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Rows:        make([]dto.GanttRow, 0, len(assignments)),
	}

	for _, assignment := range assignments {
		dates, err := s.assignmentService.ActiveDates(ctx, assignment.ID)
		if err != nil {
			return res, err
		}

		row := dto.GanttRow{
			AssignmentID:  assignment.ID,
			UserID:        assignment.UserID,
			BookingStatus: assignment.BookingStatus,
		}

		for _, block := range calendar.GroupConsecutive(dates) {
			row.Blocks = append(row.Blocks, dto.GanttBlock{
				StartDate: block[0],
				EndDate:   block[len(block)-1],
				Days:      len(block),
			})
		}

		res.Rows = append(res.Rows, row)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project gantt to cache")
		}
	}()

	return res, nil
}
