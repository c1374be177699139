package model

import "roster/shared/model"

const (
	DayTableName  = "assignment_days"
	DayEntityName = "assignment_day"

	FieldDayID           = "id"
	FieldDayAssignmentID = "assignment_id"
	FieldWorkDate        = "work_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
)

// AssignmentDay is one calendar day of scheduled work under an assignment.
// Dates and times are stored as plain ISO strings (no zone ambiguity); ISO
// dates compare lexicographically, so range filters stay ordinary string
// comparisons.
type AssignmentDay struct {
	ID           string `db:"id"`
	AssignmentID string `db:"assignment_id"`
	WorkDate     string `db:"work_date"`
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`

	UserID        string `db:"user_id"        table:"assignments"`
	ProjectID     string `db:"project_id"     table:"assignments"`
	BookingStatus string `db:"booking_status" table:"assignments"`
	ProjectName   string `db:"project_name"   table:"projects" column:"name"`

	model.Metadata
}

func (AssignmentDay) GetJoinQuery() string {
	return "LEFT JOIN assignments ON assignment_days.assignment_id = assignments.id " +
		"LEFT JOIN projects ON assignments.project_id = projects.id"
}
