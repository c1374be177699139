package model

import "roster/shared/model"

const (
	ExcludedDateTableName  = "assignment_excluded_dates"
	ExcludedDateEntityName = "assignment_excluded_date"

	FieldExcludedDateAssignmentID = "assignment_id"
	FieldExcludedDate             = "excluded_date"
)

// AssignmentExcludedDate marks a date within the project span as not
// worked. Legacy overlay: it only applies to assignments that carry no
// day-level records.
type AssignmentExcludedDate struct {
	ID           string `db:"id"`
	AssignmentID string `db:"assignment_id"`
	ExcludedDate string `db:"excluded_date"`
	model.Metadata
}
