package dto

import (
	assignmentModel "roster/internal/domains/assignment/model"
)

// ScheduleEntry is one booked slot as it appears on a calendar cell.
type ScheduleEntry struct {
	AssignmentID  string `json:"assignment_id"`
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
	UserID        string `json:"user_id"`
	BookingStatus string `json:"booking_status"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

func entryFromDay(day assignmentModel.AssignmentDay) ScheduleEntry {
	return ScheduleEntry{
		AssignmentID:  day.AssignmentID,
		ProjectID:     day.ProjectID,
		ProjectName:   day.ProjectName,
		UserID:        day.UserID,
		BookingStatus: day.BookingStatus,
		StartTime:     day.StartTime,
		EndTime:       day.EndTime,
	}
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []ScheduleEntry `json:"entries"`
}

type MonthViewResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type WeekViewResponse struct {
	Days []CalendarDay `json:"days"`
}

// FillDays maps the booked slots onto the grid dates. Every grid date gets
// a cell, empty dates included.
func FillDays(grid []string, days []assignmentModel.AssignmentDay) []CalendarDay {
	byDate := make(map[string][]ScheduleEntry, len(days))
	for _, day := range days {
		byDate[day.WorkDate] = append(byDate[day.WorkDate], entryFromDay(day))
	}

	res := make([]CalendarDay, len(grid))
	for i, date := range grid {
		res[i] = CalendarDay{Date: date, Entries: byDate[date]}
	}

	return res
}

// UserScheduleDay is one occupied date in a user's schedule. HasConflict
// is set when more than one assignment books the user on that date.
type UserScheduleDay struct {
	Date        string          `json:"date"`
	HasConflict bool            `json:"has_conflict"`
	Entries     []ScheduleEntry `json:"entries"`
}

type UserScheduleResponse struct {
	UserID    string            `json:"user_id"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []UserScheduleDay `json:"days"`
}

// GanttBlock is a maximal run of consecutive scheduled dates, rendered as
// one bar on a timeline.
type GanttBlock struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type GanttRow struct {
	AssignmentID  string       `json:"assignment_id"`
	UserID        string       `json:"user_id"`
	BookingStatus string       `json:"booking_status"`
	Blocks        []GanttBlock `json:"blocks"`
}

type GanttResponse struct {
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Rows        []GanttRow `json:"rows"`
}
