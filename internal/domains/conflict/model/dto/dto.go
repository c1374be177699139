package dto

import (
	"roster/internal/domains/conflict/model"
	gModel "roster/shared/model"
	"roster/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CheckRequest struct {
	UserID              string `json:"user_id"               validate:"required"`
	StartDate           string `json:"start_date"            validate:"required,isodate"`
	EndDate             string `json:"end_date"              validate:"required,isodate"`
	ExcludeAssignmentID string `json:"exclude_assignment_id" validate:"omitempty"`
}

// ConflictingDay describes one already-booked day found inside the
// candidate range.
type ConflictingDay struct {
	AssignmentID string `json:"assignment_id"`
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	ConflictDate string `json:"conflict_date"`
}

type CheckResult struct {
	HasConflicts bool             `json:"has_conflicts"`
	Conflicts    []ConflictingDay `json:"conflicts"`
}

type RecordConflictRequest struct {
	UserID             string `json:"user_id"              validate:"required"`
	FirstAssignmentID  string `json:"first_assignment_id"  validate:"required"`
	SecondAssignmentID string `json:"second_assignment_id" validate:"required"`
	ConflictDate       string `json:"conflict_date"        validate:"required,isodate"`
}

func (r *RecordConflictRequest) ToModel(user string) model.BookingConflict {
	return model.BookingConflict{
		ID:                 uuid.NewString(),
		UserID:             r.UserID,
		FirstAssignmentID:  r.FirstAssignmentID,
		SecondAssignmentID: r.SecondAssignmentID,
		ConflictDate:       r.ConflictDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type OverrideConflictRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type ConflictResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	FirstAssignmentID  string     `json:"first_assignment_id"`
	SecondAssignmentID string     `json:"second_assignment_id"`
	ConflictDate       string     `json:"conflict_date"`
	Resolved           bool       `json:"resolved"`
	OverrideReason     *string    `json:"override_reason,omitempty"`
	OverrideBy         *string    `json:"override_by,omitempty"`
	OverrideAt         *time.Time `json:"override_at,omitempty"`
}

func (r *ConflictResponse) FromModel(model model.BookingConflict) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstAssignmentID = model.FirstAssignmentID
	r.SecondAssignmentID = model.SecondAssignmentID
	r.ConflictDate = model.ConflictDate
	r.Resolved = model.Resolved
	r.OverrideReason = model.OverrideReason
	r.OverrideBy = model.OverrideBy
	r.OverrideAt = model.OverrideAt
}

type GetConflictsResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
}

func (r *GetConflictsResponse) FromModels(models []model.BookingConflict) {
	r.Conflicts = make([]ConflictResponse, len(models))
	for i, m := range models {
		r.Conflicts[i].FromModel(m)
	}
}
