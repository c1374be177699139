package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roster/config"
	kafkaMocks "roster/infras/kafka/mocks"
	"roster/infras/otel/mocks"
	assignmentMocks "roster/internal/domains/assignment/mocks"
	assignmentModel "roster/internal/domains/assignment/model"
	assignmentService "roster/internal/domains/assignment/service"
	conflictMocks "roster/internal/domains/conflict/mocks"
	"roster/internal/domains/conflict/model"
	"roster/internal/domains/conflict/model/dto"
	"roster/internal/domains/conflict/service"
	projectMocks "roster/internal/domains/project/mocks"
	cacheMocks "roster/shared/cache/mocks"
	"roster/shared/constant"
	gDto "roster/shared/dto"
)

type conflictServiceMocks struct {
	repo           *conflictMocks.MockConflict
	dayRepo        *assignmentMocks.MockAssignmentDay
	assignmentRepo *assignmentMocks.MockAssignment
	excludedRepo   *assignmentMocks.MockAssignmentExcludedDate
}

// newConflict wires the real assignment service over mocked repositories so
// the detector sees both storage shapes the way production does.
func newConflict(ctrl *gomock.Controller) (service.Conflict, conflictServiceMocks) {
	m := conflictServiceMocks{
		repo:           conflictMocks.NewMockConflict(ctrl),
		dayRepo:        assignmentMocks.NewMockAssignmentDay(ctrl),
		assignmentRepo: assignmentMocks.NewMockAssignment(ctrl),
		excludedRepo:   assignmentMocks.NewMockAssignmentExcludedDate(ctrl),
	}

	historyRepo := assignmentMocks.NewMockBookingStatusHistory(ctrl)
	projectRepo := projectMocks.NewMockProject(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	kafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	assignmentSvc := assignmentService.New(
		m.assignmentRepo, m.dayRepo, m.excludedRepo, historyRepo, projectRepo,
		cfg, cache, mocks.NewOtel(), kafka,
	)

	svc := service.New(m.repo, assignmentSvc, cfg, mocks.NewOtel())

	return svc, m
}

func TestConflictService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConflict(ctrl)

	noAssignments := func() {
		m.assignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
	}

	tests := []struct {
		name          string
		req           dto.CheckRequest
		setupMock     func()
		wantErr       bool
		wantConflicts int
	}{
		{
			name: "busy days reported as conflicts",
			req: dto.CheckRequest{
				UserID:    "user-1",
				StartDate: "2024-01-10",
				EndDate:   "2024-01-20",
			},
			setupMock: func() {
				m.dayRepo.EXPECT().
					GetForUserInRange(gomock.Any(), "user-1", "2024-01-10", "2024-01-20", "").
					Return([]assignmentModel.AssignmentDay{
						{AssignmentID: "assignment-1", ProjectID: "project-1", ProjectName: "Apollo", WorkDate: "2024-01-15"},
						{AssignmentID: "assignment-1", ProjectID: "project-1", ProjectName: "Apollo", WorkDate: "2024-01-16"},
					}, nil)
				noAssignments()
			},
			wantErr:       false,
			wantConflicts: 2,
		},
		{
			name: "free range reports no conflicts",
			req: dto.CheckRequest{
				UserID:    "user-1",
				StartDate: "2024-02-01",
				EndDate:   "2024-02-05",
			},
			setupMock: func() {
				m.dayRepo.EXPECT().
					GetForUserInRange(gomock.Any(), "user-1", "2024-02-01", "2024-02-05", "").
					Return(nil, nil)
				noAssignments()
			},
			wantErr:       false,
			wantConflicts: 0,
		},
		{
			name: "excluded assignment skipped entirely",
			req: dto.CheckRequest{
				UserID:              "user-1",
				StartDate:           "2024-01-10",
				EndDate:             "2024-01-20",
				ExcludeAssignmentID: "assignment-1",
			},
			setupMock: func() {
				m.dayRepo.EXPECT().
					GetForUserInRange(gomock.Any(), "user-1", "2024-01-10", "2024-01-20", "assignment-1").
					Return(nil, nil)
				m.assignmentRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]assignmentModel.Assignment{
						{ID: "assignment-1", UserID: "user-1", ProjectID: "project-1"},
					}, nil)
			},
			wantErr:       false,
			wantConflicts: 0,
		},
		{
			name: "inverted range rejected",
			req: dto.CheckRequest{
				UserID:    "user-1",
				StartDate: "2024-01-20",
				EndDate:   "2024-01-10",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CheckRequest{
				UserID:    "user-1",
				StartDate: "2024-01-10",
				EndDate:   "2024-01-20",
			},
			setupMock: func() {
				m.dayRepo.EXPECT().
					GetForUserInRange(gomock.Any(), "user-1", "2024-01-10", "2024-01-20", "").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Check(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Conflicts, tt.wantConflicts)
			assert.Equal(t, tt.wantConflicts > 0, res.HasConflicts)
		})
	}
}

func TestConflictService_CheckLegacyAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConflict(ctrl)

	spanStart := "2024-01-10"
	spanEnd := "2024-01-20"

	// No day records exist, so occupancy comes from the project span minus
	// the excluded date.
	m.dayRepo.EXPECT().
		GetForUserInRange(gomock.Any(), "user-1", "2024-01-12", "2024-01-18", "").
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
			{AssignmentID: "assignment-1", ExcludedDate: "2024-01-15"},
		}, nil)

	res, err := svc.Check(context.Background(), dto.CheckRequest{
		UserID:    "user-1",
		StartDate: "2024-01-12",
		EndDate:   "2024-01-18",
	})

	assert.NoError(t, err)
	assert.True(t, res.HasConflicts)
	// 12th through 18th minus the excluded 15th.
	assert.Len(t, res.Conflicts, 6)
	assert.Equal(t, "2024-01-12", res.Conflicts[0].ConflictDate)
	assert.Equal(t, "Apollo", res.Conflicts[0].ProjectName)

	for _, conflict := range res.Conflicts {
		assert.NotEqual(t, "2024-01-15", conflict.ConflictDate)
	}
}

func TestConflictService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConflict(ctrl)

	req := dto.RecordConflictRequest{
		UserID:             "user-1",
		FirstAssignmentID:  "assignment-1",
		SecondAssignmentID: "assignment-2",
		ConflictDate:       "2024-01-15",
	}

	t.Run("successful record", func(t *testing.T) {
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c model.BookingConflict) error {
				assert.False(t, c.Resolved)
				assert.Equal(t, "2024-01-15", c.ConflictDate)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Record(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "user-1", res.UserID)
	})

	t.Run("repository error", func(t *testing.T) {
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Record(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestConflictService_Override(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConflict(ctrl)

	req := dto.OverrideConflictRequest{Reason: "client signed off on the double booking"}

	t.Run("marks the conflict resolved without deleting it", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldResolved])
				assert.Equal(t, req.Reason, fields[model.FieldOverrideReason])
				assert.Equal(t, "test-user-id", fields[model.FieldOverrideBy])

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Override(ctx, "conflict-1", req)

		assert.NoError(t, err)
	})

	t.Run("conflict not found", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Override(context.Background(), "missing", req)

		assert.Error(t, err)
	})
}

func TestConflictService_ListUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newConflict(ctrl)

	t.Run("no filter", func(t *testing.T) {
		m.repo.EXPECT().
			ListUnresolved(gomock.Any(), gomock.Any(), "").
			Return([]model.BookingConflict{
				{ID: "conflict-1", UserID: "user-1", ConflictDate: "2024-01-15"},
			}, nil)

		res, err := svc.ListUnresolved(context.Background(), gDto.QueryParams{}, "")

		assert.NoError(t, err)
		assert.Len(t, res.Conflicts, 1)
		assert.Equal(t, "conflict-1", res.Conflicts[0].ID)
	})

	t.Run("user filter reaches the repository", func(t *testing.T) {
		m.repo.EXPECT().
			ListUnresolved(gomock.Any(), gomock.Any(), "user-2").
			Return(nil, nil)

		res, err := svc.ListUnresolved(context.Background(), gDto.QueryParams{}, "user-2")

		assert.NoError(t, err)
		assert.Empty(t, res.Conflicts)
	})
}
