package model

import "roster/shared/model"

const (
	TableName  = "assignments"
	EntityName = "assignment"

	FieldID            = "id"
	FieldProjectID     = "project_id"
	FieldUserID        = "user_id"
	FieldBookingStatus = "booking_status"
	FieldNotes         = "notes"
)

// Booking status cycle: tentative -> pending_confirmation -> confirmed -> tentative.
const (
	StatusTentative           = "tentative"
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
)

// NextStatus advances the booking status one step along the cycle.
// Unknown input resets to tentative.
func NextStatus(current string) string {
	switch current {
	case StatusTentative:
		return StatusPendingConfirmation
	case StatusPendingConfirmation:
		return StatusConfirmed
	default:
		return StatusTentative
	}
}

// Assignment binds one person to one project for a bounded period.
type Assignment struct {
	ID            string  `db:"id"`
	ProjectID     string  `db:"project_id"`
	UserID        string  `db:"user_id"`
	BookingStatus string  `db:"booking_status"`
	Notes         *string `db:"notes"`

	ProjectName      string  `db:"project_name"       table:"projects" column:"name"`
	ProjectStartDate *string `db:"project_start_date" table:"projects" column:"start_date"`
	ProjectEndDate   *string `db:"project_end_date"   table:"projects" column:"end_date"`

	model.Metadata
}

func (Assignment) GetJoinQuery() string {
	return "LEFT JOIN projects ON assignments.project_id = projects.id"
}
