package model

import (
	"time"

	"roster/shared/model"
)

const (
	TableName  = "booking_conflicts"
	EntityName = "booking_conflict"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldFirstAssignmentID  = "first_assignment_id"
	FieldSecondAssignmentID = "second_assignment_id"
	FieldConflictDate       = "conflict_date"
	FieldResolved           = "resolved"
	FieldOverrideReason     = "override_reason"
	FieldOverrideBy         = "override_by"
	FieldOverrideAt         = "override_at"
)

// BookingConflict records a detected double-booking of one resource on one
// date. Overriding marks the record resolved and stamps who accepted the
// clash and why; the row itself is kept for audit.
type BookingConflict struct {
	ID                 string     `db:"id"`
	UserID             string     `db:"user_id"`
	FirstAssignmentID  string     `db:"first_assignment_id"`
	SecondAssignmentID string     `db:"second_assignment_id"`
	ConflictDate       string     `db:"conflict_date"`
	Resolved           bool       `db:"resolved"`
	OverrideReason     *string    `db:"override_reason"`
	OverrideBy         *string    `db:"override_by"`
	OverrideAt         *time.Time `db:"override_at"`
	model.Metadata
}
