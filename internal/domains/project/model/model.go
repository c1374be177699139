package model

import "roster/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID         = "id"
	FieldName       = "name"
	FieldClientName = "client_name"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldStatus     = "status"
	FieldNotes      = "notes"
	FieldActive     = "active"
)

const (
	StatusPlanned   = "planned"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Project supplies the authoritative date span that bounds what day-level
// assignments are permissible.
type Project struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	ClientName *string `db:"client_name"`
	StartDate  *string `db:"start_date"`
	EndDate    *string `db:"end_date"`
	Status     string  `db:"status"`
	Notes      *string `db:"notes"`
	Active     bool    `db:"active"`
	model.Metadata
}
