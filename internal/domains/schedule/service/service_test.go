package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roster/config"
	kafkaMocks "roster/infras/kafka/mocks"
	"roster/infras/otel/mocks"
	assignmentMocks "roster/internal/domains/assignment/mocks"
	assignmentModel "roster/internal/domains/assignment/model"
	assignmentService "roster/internal/domains/assignment/service"
	projectMocks "roster/internal/domains/project/mocks"
	projectModel "roster/internal/domains/project/model"
	"roster/internal/domains/schedule/service"
	cacheMocks "roster/shared/cache/mocks"
)

type scheduleMocks struct {
	dayRepo        *assignmentMocks.MockAssignmentDay
	assignmentRepo *assignmentMocks.MockAssignment
	excludedRepo   *assignmentMocks.MockAssignmentExcludedDate
	projectRepo    *projectMocks.MockProject
	cache          *cacheMocks.MockRedisCache
}

// newSchedule wires the real assignment service over mocked repositories so
// gantt rows exercise the actual active-date resolution.
func newSchedule(ctrl *gomock.Controller) (service.Schedule, scheduleMocks) {
	m := scheduleMocks{
		dayRepo:        assignmentMocks.NewMockAssignmentDay(ctrl),
		assignmentRepo: assignmentMocks.NewMockAssignment(ctrl),
		excludedRepo:   assignmentMocks.NewMockAssignmentExcludedDate(ctrl),
		projectRepo:    projectMocks.NewMockProject(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	historyRepo := assignmentMocks.NewMockBookingStatusHistory(ctrl)
	kafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Schedule.IncludeWeekends = true

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	assignmentSvc := assignmentService.New(
		m.assignmentRepo, m.dayRepo, m.excludedRepo, historyRepo, m.projectRepo,
		cfg, m.cache, mocks.NewOtel(), kafka,
	)

	svc := service.New(m.dayRepo, m.assignmentRepo, assignmentSvc, m.projectRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestScheduleService_MonthView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSchedule(ctrl)

	t.Run("cache hit", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.MonthView(context.Background(), 2024, time.January)

		assert.NoError(t, err)
	})

	t.Run("grid spans whole weeks and slots land on their dates", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		// January 2024 runs Monday the 1st through Wednesday the 31st, so
		// the grid ends on Sunday February the 4th.
		m.dayRepo.EXPECT().
			GetInRange(gomock.Any(), "2024-01-01", "2024-02-04").
			Return([]assignmentModel.AssignmentDay{
				{ID: "day-1", AssignmentID: "assignment-1", WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "17:00"},
			}, nil)

		res, err := svc.MonthView(context.Background(), 2024, time.January)

		assert.NoError(t, err)
		assert.Equal(t, 2024, res.Year)
		assert.Equal(t, 1, res.Month)
		assert.Len(t, res.Days, 35)

		var booked int
		for _, day := range res.Days {
			if day.Date == "2024-01-15" {
				booked = len(day.Entries)
			}
		}

		assert.Equal(t, 1, booked)
	})

	t.Run("repository error", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.dayRepo.EXPECT().
			GetInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.MonthView(context.Background(), 2024, time.January)

		assert.Error(t, err)
	})
}

func TestScheduleService_WeekView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSchedule(ctrl)

	t.Run("week containing the date", func(t *testing.T) {
		m.dayRepo.EXPECT().
			GetInRange(gomock.Any(), "2024-01-15", "2024-01-21").
			Return(nil, nil)

		res, err := svc.WeekView(context.Background(), "2024-01-17")

		assert.NoError(t, err)
		assert.Len(t, res.Days, 7)
		assert.Equal(t, "2024-01-15", res.Days[0].Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.WeekView(context.Background(), "not-a-date")

		assert.Error(t, err)
	})
}

func TestScheduleService_UserSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSchedule(ctrl)

	t.Run("double booked date flagged as conflict", func(t *testing.T) {
		m.dayRepo.EXPECT().
			GetForUserInRange(gomock.Any(), "user-1", "2024-01-10", "2024-01-20", "").
			Return([]assignmentModel.AssignmentDay{
				{ID: "day-1", AssignmentID: "assignment-1", WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "13:00"},
				{ID: "day-2", AssignmentID: "assignment-2", WorkDate: "2024-01-15", StartTime: "13:00", EndTime: "17:00"},
				{ID: "day-3", AssignmentID: "assignment-1", WorkDate: "2024-01-16", StartTime: "09:00", EndTime: "17:00"},
			}, nil)

		m.assignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.UserSchedule(context.Background(), "user-1", "2024-01-10", "2024-01-20")

		assert.NoError(t, err)
		assert.Len(t, res.Days, 2)
		assert.True(t, res.Days[0].HasConflict)
		assert.Len(t, res.Days[0].Entries, 2)
		assert.False(t, res.Days[1].HasConflict)
	})

	t.Run("assignment without day records still occupies its span", func(t *testing.T) {
		spanStart := "2024-01-10"
		spanEnd := "2024-01-20"

		m.dayRepo.EXPECT().
			GetForUserInRange(gomock.Any(), "user-1", "2024-01-12", "2024-01-14", "").
			Return(nil, nil)

		m.assignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]assignmentModel.Assignment{
				{
					ID:               "assignment-1",
					UserID:           "user-1",
					ProjectID:        "project-1",
					ProjectName:      "Apollo",
					ProjectStartDate: &spanStart,
					ProjectEndDate:   &spanEnd,
				},
			}, nil)

		m.dayRepo.EXPECT().
			GetForAssignment(gomock.Any(), "assignment-1").
			Return(nil, nil)

		m.excludedRepo.EXPECT().
			GetForAssignment(gomock.Any(), "assignment-1").
			Return([]assignmentModel.AssignmentExcludedDate{
				{AssignmentID: "assignment-1", ExcludedDate: "2024-01-13"},
			}, nil)

		res, err := svc.UserSchedule(context.Background(), "user-1", "2024-01-12", "2024-01-14")

		assert.NoError(t, err)
		assert.Len(t, res.Days, 2)
		assert.Equal(t, "2024-01-12", res.Days[0].Date)
		assert.Equal(t, "2024-01-14", res.Days[1].Date)
		assert.Equal(t, "Apollo", res.Days[0].Entries[0].ProjectName)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := svc.UserSchedule(context.Background(), "user-1", "2024-01-20", "2024-01-10")

		assert.Error(t, err)
	})
}

func TestScheduleService_ProjectGantt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSchedule(ctrl)

	t.Run("active dates fold into consecutive blocks", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.projectRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(projectModel.Project{ID: "project-1", Name: "Apollo"}, nil)

		m.assignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]assignmentModel.Assignment{
				{ID: "assignment-1", ProjectID: "project-1", UserID: "user-1", BookingStatus: assignmentModel.StatusConfirmed},
			}, nil)

		m.dayRepo.EXPECT().
			GetForAssignment(gomock.Any(), "assignment-1").
			Return([]assignmentModel.AssignmentDay{
				{WorkDate: "2024-01-15"},
				{WorkDate: "2024-01-16"},
				{WorkDate: "2024-01-17"},
				{WorkDate: "2024-01-20"},
				{WorkDate: "2024-01-21"},
			}, nil)

		res, err := svc.ProjectGantt(context.Background(), "project-1")

		assert.NoError(t, err)
		assert.Equal(t, "Apollo", res.ProjectName)
		assert.Len(t, res.Rows, 1)

		row := res.Rows[0]
		assert.Equal(t, assignmentModel.StatusConfirmed, row.BookingStatus)
		assert.Len(t, row.Blocks, 2)
		assert.Equal(t, "2024-01-15", row.Blocks[0].StartDate)
		assert.Equal(t, "2024-01-17", row.Blocks[0].EndDate)
		assert.Equal(t, 3, row.Blocks[0].Days)
		assert.Equal(t, "2024-01-20", row.Blocks[1].StartDate)
		assert.Equal(t, "2024-01-21", row.Blocks[1].EndDate)
		assert.Equal(t, 2, row.Blocks[1].Days)
	})

	t.Run("project not found", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.projectRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(projectModel.Project{}, nil)

		_, err := svc.ProjectGantt(context.Background(), "missing")

		assert.Error(t, err)
	})
}
