package dto

import (
	"roster/internal/domains/project/model"
	"roster/shared"
	"roster/shared/calendar"
	gDto "roster/shared/dto"
	gModel "roster/shared/model"
	"roster/shared/timezone"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name       string  `json:"name"        validate:"required,max=150"`
	ClientName *string `json:"client_name" validate:"omitempty,max=150"`
	StartDate  *string `json:"start_date"  validate:"omitempty,isodate"`
	EndDate    *string `json:"end_date"    validate:"omitempty,isodate"`
	Status     string  `json:"status"      validate:"omitempty,oneof=planned active completed"`
	Notes      *string `json:"notes"       validate:"omitempty"`
}

func (c *CreateProjectRequest) ToModel(user string) model.Project {
	status := model.StatusPlanned
	if c.Status != "" {
		status = c.Status
	}

	return model.Project{
		ID:         uuid.NewString(),
		Name:       c.Name,
		ClientName: c.ClientName,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Status:     status,
		Notes:      c.Notes,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProjectRequest struct {
	Name       string  `db:"name"        json:"name"        validate:"omitempty,max=150"`
	ClientName *string `db:"client_name" json:"client_name" validate:"omitempty,max=150"`
	StartDate  *string `db:"start_date"  json:"start_date"  validate:"omitempty,isodate"`
	EndDate    *string `db:"end_date"    json:"end_date"    validate:"omitempty,isodate"`
	Status     string  `db:"status"      json:"status"      validate:"omitempty,oneof=planned active completed"`
	Notes      *string `db:"notes"       json:"notes"       validate:"omitempty"`
}

type ProjectResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ClientName   *string `json:"client_name"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
	Active       bool    `json:"active"`
	DurationDays int     `json:"duration_days"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Name = model.Name
	r.ClientName = model.ClientName
	r.StartDate = model.StartDate
	r.EndDate = model.EndDate
	r.Status = model.Status
	r.Notes = model.Notes
	r.Active = model.Active

	start, end := "", ""
	if model.StartDate != nil {
		start = *model.StartDate
	}

	if model.EndDate != nil {
		end = *model.EndDate
	}

	r.DurationDays = calendar.GetProjectDuration(start, end)
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
