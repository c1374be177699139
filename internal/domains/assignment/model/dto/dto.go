package dto

import (
	"roster/internal/domains/assignment/model"
	"roster/shared"
	gDto "roster/shared/dto"
	gModel "roster/shared/model"
	"roster/shared/timezone"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	ProjectID     string  `json:"project_id"     validate:"required"`
	UserID        string  `json:"user_id"        validate:"required"`
	BookingStatus string  `json:"booking_status" validate:"omitempty,oneof=tentative pending_confirmation confirmed"`
	Notes         *string `json:"notes"          validate:"omitempty"`
}

func (c *CreateAssignmentRequest) ToModel(user string) model.Assignment {
	status := model.StatusTentative
	if c.BookingStatus != "" {
		status = c.BookingStatus
	}

	return model.Assignment{
		ID:            uuid.NewString(),
		ProjectID:     c.ProjectID,
		UserID:        c.UserID,
		BookingStatus: status,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAssignmentRequest struct {
	Notes *string `db:"notes" json:"notes" validate:"omitempty"`
}

type DayInput struct {
	WorkDate  string `json:"work_date"  validate:"required,isodate"`
	StartTime string `json:"start_time" validate:"required,walltime"`
	EndTime   string `json:"end_time"   validate:"required,walltime"`
}

func (d *DayInput) ToModel(assignmentID, user string) model.AssignmentDay {
	return model.AssignmentDay{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		WorkDate:     d.WorkDate,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AddDaysRequest struct {
	Days []DayInput `json:"days" validate:"required,min=1,dive"`
}

type UpdateDayRequest struct {
	StartTime string `json:"start_time" validate:"required,walltime"`
	EndTime   string `json:"end_time"   validate:"required,walltime"`
}

type RemoveDaysRequest struct {
	DayIDs []string `json:"day_ids" validate:"required,min=1"`
}

type DayResponse struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	WorkDate     string `json:"work_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

func (r *DayResponse) FromModel(model model.AssignmentDay) {
	r.ID = model.ID
	r.AssignmentID = model.AssignmentID
	r.WorkDate = model.WorkDate
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
}

type AssignmentResponse struct {
	ID               string        `json:"id"`
	ProjectID        string        `json:"project_id"`
	ProjectName      string        `json:"project_name"`
	ProjectStartDate *string       `json:"project_start_date"`
	ProjectEndDate   *string       `json:"project_end_date"`
	UserID           string        `json:"user_id"`
	BookingStatus    string        `json:"booking_status"`
	Notes            *string       `json:"notes"`
	Days             []DayResponse `json:"days,omitempty"`
	ExcludedDates    []string      `json:"excluded_dates,omitempty"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(model model.Assignment) {
	r.ID = model.ID
	r.ProjectID = model.ProjectID
	r.ProjectName = model.ProjectName
	r.ProjectStartDate = model.ProjectStartDate
	r.ProjectEndDate = model.ProjectEndDate
	r.UserID = model.UserID
	r.BookingStatus = model.BookingStatus
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func (r *AssignmentResponse) WithDays(days []model.AssignmentDay) {
	r.Days = make([]DayResponse, len(days))
	for i, day := range days {
		r.Days[i].FromModel(day)
	}
}

func (r *AssignmentResponse) WithExcludedDates(excluded []model.AssignmentExcludedDate) {
	r.ExcludedDates = make([]string, len(excluded))
	for i, ex := range excluded {
		r.ExcludedDates[i] = ex.ExcludedDate
	}
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.Assignment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Assignments = make([]AssignmentResponse, len(models))
	for i, mod := range models {
		r.Assignments[i].FromModel(mod)
	}
}

type CycleStatusRequest struct {
	Note *string `json:"note" validate:"omitempty"`
}

type CycleStatusResponse struct {
	ID        string `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

func NewHistoryModel(assignmentID, oldStatus, newStatus string, note *string, user string) model.BookingStatusHistory {
	return model.BookingStatusHistory{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		Note:         note,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type StatusHistoryResponse struct {
	ID           string  `json:"id"`
	AssignmentID string  `json:"assignment_id"`
	OldStatus    string  `json:"old_status"`
	NewStatus    string  `json:"new_status"`
	Note         *string `json:"note"`
	gDto.Metadata
}

func (r *StatusHistoryResponse) FromModel(model model.BookingStatusHistory) {
	r.ID = model.ID
	r.AssignmentID = model.AssignmentID
	r.OldStatus = model.OldStatus
	r.NewStatus = model.NewStatus
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetStatusHistoryResponse struct {
	History []StatusHistoryResponse `json:"history"`
}

func (r *GetStatusHistoryResponse) FromModels(models []model.BookingStatusHistory) {
	r.History = make([]StatusHistoryResponse, len(models))
	for i, mod := range models {
		r.History[i].FromModel(mod)
	}
}

// StatusEvent is the payload published on every booking status transition;
// the signage companion display consumes this feed.
type StatusEvent struct {
	AssignmentID string `json:"assignment_id"`
	ProjectID    string `json:"project_id"`
	UserID       string `json:"user_id"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ChangedBy    string `json:"changed_by"`
	ChangedAt    string `json:"changed_at"`
}
