package calendar

import (
	"sort"
	"time"
)

const (
	// ISODateLayout is the canonical wire format for calendar dates.
	ISODateLayout = "2006-01-02"

	daysPerWeek = 7
)

// GridOptions controls the shape of the day grids produced by the
// grid builders. IncludeWeekends false restricts grids to Mon-Fri.
type GridOptions struct {
	IncludeWeekends bool
}

// ToISODate formats a time as a YYYY-MM-DD date string.
func ToISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// FromISODate parses a YYYY-MM-DD date string into a UTC midnight time.
// Inverse of ToISODate for any valid calendar date.
func FromISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

// IsDateInRange reports whether date falls within [start, end], both ends
// inclusive. Empty bounds mean the range is undefined and nothing is in it.
func IsDateInRange(dateISO, startISO, endISO string) bool {
	if startISO == "" || endISO == "" {
		return false
	}

	date, err := FromISODate(dateISO)
	if err != nil {
		return false
	}

	start, err := FromISODate(startISO)
	if err != nil {
		return false
	}

	end, err := FromISODate(endISO)
	if err != nil {
		return false
	}

	return !date.Before(start) && !date.After(end)
}

// DoRangesOverlap reports whether two inclusive date ranges intersect.
// Touching ranges (end of A equals start of B) count as overlapping.
func DoRangesOverlap(startA, endA, startB, endB string) bool {
	sa, err := FromISODate(startA)
	if err != nil {
		return false
	}

	ea, err := FromISODate(endA)
	if err != nil {
		return false
	}

	sb, err := FromISODate(startB)
	if err != nil {
		return false
	}

	eb, err := FromISODate(endB)
	if err != nil {
		return false
	}

	return !sa.After(eb) && !sb.After(ea)
}

// GetDateRange returns every calendar day from start to end inclusive, in
// ascending order. A single-element slice when start equals end, nil when
// the bounds are malformed or inverted.
func GetDateRange(startISO, endISO string) []string {
	start, err := FromISODate(startISO)
	if err != nil {
		return nil
	}

	end, err := FromISODate(endISO)
	if err != nil {
		return nil
	}

	if start.After(end) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, ToISODate(d))
	}

	return dates
}

// GetProjectDuration returns the inclusive day count of a date span,
// or 0 when either bound is missing.
func GetProjectDuration(startISO, endISO string) int {
	if startISO == "" || endISO == "" {
		return 0
	}

	start, err := FromISODate(startISO)
	if err != nil {
		return 0
	}

	end, err := FromISODate(endISO)
	if err != nil {
		return 0
	}

	if start.After(end) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}

// GetCalendarDays returns the day grid for a month view: every date from
// the Monday of the week containing the 1st through the Sunday of the week
// containing the last day of the month.
func GetCalendarDays(year int, month time.Month, opts GridOptions) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := startOfWeek(first)
	gridEnd := startOfWeek(last).AddDate(0, 0, daysPerWeek-1)

	var days []string

	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		if !opts.IncludeWeekends && isWeekend(d) {
			continue
		}

		days = append(days, ToISODate(d))
	}

	return days
}

// GetWeekViewDays returns the days of the week containing the given date.
func GetWeekViewDays(dateISO string, opts GridOptions) []string {
	date, err := FromISODate(dateISO)
	if err != nil {
		return nil
	}

	start := startOfWeek(date)

	var days []string

	for i := range daysPerWeek {
		d := start.AddDate(0, 0, i)
		if !opts.IncludeWeekends && isWeekend(d) {
			continue
		}

		days = append(days, ToISODate(d))
	}

	return days
}

// GetWeeksInRange partitions the weeks touched by [start, end] into
// week-sized day slices, Monday first.
func GetWeeksInRange(startISO, endISO string, opts GridOptions) [][]string {
	start, err := FromISODate(startISO)
	if err != nil {
		return nil
	}

	end, err := FromISODate(endISO)
	if err != nil {
		return nil
	}

	if start.After(end) {
		return nil
	}

	var weeks [][]string

	for ws := startOfWeek(start); !ws.After(end); ws = ws.AddDate(0, 0, daysPerWeek) {
		var week []string

		for i := range daysPerWeek {
			d := ws.AddDate(0, 0, i)
			if !opts.IncludeWeekends && isWeekend(d) {
				continue
			}

			week = append(week, ToISODate(d))
		}

		weeks = append(weeks, week)
	}

	return weeks
}

// GroupConsecutive sorts the given dates and groups them into maximal runs
// of consecutive calendar days. A gap of even one day starts a new run.
// Duplicate dates collapse into their run. Identical date sets always yield
// the identical partition regardless of input order.
func GroupConsecutive(datesISO []string) [][]string {
	parsed := make([]time.Time, 0, len(datesISO))

	for _, s := range datesISO {
		d, err := FromISODate(s)
		if err != nil {
			continue
		}

		parsed = append(parsed, d)
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	var runs [][]string

	for i, d := range parsed {
		if i > 0 && d.Equal(parsed[i-1]) {
			continue
		}

		if i > 0 && d.Equal(parsed[i-1].AddDate(0, 0, 1)) {
			runs[len(runs)-1] = append(runs[len(runs)-1], ToISODate(d))

			continue
		}

		runs = append(runs, []string{ToISODate(d)})
	}

	return runs
}

func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % daysPerWeek // Monday = 0

	return t.AddDate(0, 0, -offset)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
