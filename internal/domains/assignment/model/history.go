package model

import "roster/shared/model"

const (
	HistoryTableName  = "booking_status_history"
	HistoryEntityName = "booking_status_history"

	FieldHistoryAssignmentID = "assignment_id"
	FieldOldStatus           = "old_status"
	FieldNewStatus           = "new_status"
)

// BookingStatusHistory is the append-only audit trail of status
// transitions. Rows are never mutated or deleted, and they outlive their
// assignment.
type BookingStatusHistory struct {
	ID           string  `db:"id"`
	AssignmentID string  `db:"assignment_id"`
	OldStatus    string  `db:"old_status"`
	NewStatus    string  `db:"new_status"`
	Note         *string `db:"note"`
	model.Metadata
}
