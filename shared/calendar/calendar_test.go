package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"roster/shared/calendar"
)

func TestISODateRoundTrip(t *testing.T) {
	dates := []string{
		"2024-01-01",
		"2024-02-29",
		"2024-12-31",
		"1999-06-15",
		"2030-10-05",
	}

	for _, iso := range dates {
		t.Run(iso, func(t *testing.T) {
			parsed, err := calendar.FromISODate(iso)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			if got := calendar.ToISODate(parsed); got != iso {
				t.Errorf("round trip mismatch: expected %s, got %s", iso, got)
			}
		})
	}
}

func TestFromISODateInvalid(t *testing.T) {
	invalid := []string{"", "2024-13-01", "2024-02-30", "15/01/2024", "not-a-date"}

	for _, input := range invalid {
		if _, err := calendar.FromISODate(input); err == nil {
			t.Errorf("expected parse error for %q", input)
		}
	}
}

func TestIsDateInRange(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		end      string
		expected bool
	}{
		{
			name:     "inside range",
			date:     "2024-01-12",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: true,
		},
		{
			name:     "on start bound",
			date:     "2024-01-10",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: true,
		},
		{
			name:     "on end bound",
			date:     "2024-01-15",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: true,
		},
		{
			name:     "before range",
			date:     "2024-01-09",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: false,
		},
		{
			name:     "after range",
			date:     "2024-01-16",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: false,
		},
		{
			name:     "empty start bound",
			date:     "2024-01-12",
			start:    "",
			end:      "2024-01-15",
			expected: false,
		},
		{
			name:     "empty end bound",
			date:     "2024-01-12",
			start:    "2024-01-10",
			end:      "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.IsDateInRange(tt.date, tt.start, tt.end); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDoRangesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		startA   string
		endA     string
		startB   string
		endB     string
		expected bool
	}{
		{
			name:     "clear overlap",
			startA:   "2024-01-10",
			endA:     "2024-01-15",
			startB:   "2024-01-12",
			endB:     "2024-01-20",
			expected: true,
		},
		{
			name:     "touching ranges overlap",
			startA:   "2024-01-10",
			endA:     "2024-01-15",
			startB:   "2024-01-15",
			endB:     "2024-01-20",
			expected: true,
		},
		{
			name:     "contained range",
			startA:   "2024-01-01",
			endA:     "2024-01-31",
			startB:   "2024-01-10",
			endB:     "2024-01-12",
			expected: true,
		},
		{
			name:     "disjoint ranges",
			startA:   "2024-01-10",
			endA:     "2024-01-15",
			startB:   "2024-01-16",
			endB:     "2024-01-20",
			expected: false,
		},
		{
			name:     "malformed bound",
			startA:   "2024-01-10",
			endA:     "garbage",
			startB:   "2024-01-12",
			endB:     "2024-01-20",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.DoRangesOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}

			// overlap is symmetric
			mirrored := calendar.DoRangesOverlap(tt.startB, tt.endB, tt.startA, tt.endA)
			if mirrored != got {
				t.Errorf("overlap not symmetric: %v vs %v", got, mirrored)
			}
		})
	}
}

func TestGetDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{
			name:     "multi day range",
			start:    "2024-01-30",
			end:      "2024-02-02",
			expected: []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name:     "single day when start equals end",
			start:    "2024-01-10",
			end:      "2024-01-10",
			expected: []string{"2024-01-10"},
		},
		{
			name:     "inverted bounds",
			start:    "2024-01-15",
			end:      "2024-01-10",
			expected: nil,
		},
		{
			name:     "malformed start",
			start:    "bad",
			end:      "2024-01-10",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.GetDateRange(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGetProjectDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{
			name:     "inclusive day count",
			start:    "2024-01-10",
			end:      "2024-01-15",
			expected: 6,
		},
		{
			name:     "single day",
			start:    "2024-01-10",
			end:      "2024-01-10",
			expected: 1,
		},
		{
			name:     "missing start",
			start:    "",
			end:      "2024-01-15",
			expected: 0,
		},
		{
			name:     "missing end",
			start:    "2024-01-10",
			end:      "",
			expected: 0,
		},
		{
			name:     "spans a month boundary",
			start:    "2024-02-28",
			end:      "2024-03-02",
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.GetProjectDuration(tt.start, tt.end); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}

			if got := calendar.GetProjectDuration(tt.start, tt.end); got < 0 {
				t.Errorf("duration must never be negative, got %d", got)
			}
		})
	}
}

func TestGetCalendarDays(t *testing.T) {
	// January 2024: the 1st is a Monday, the 31st a Wednesday.
	all := calendar.GetCalendarDays(2024, time.January, calendar.GridOptions{IncludeWeekends: true})

	if len(all)%7 != 0 {
		t.Errorf("expected whole weeks, got %d days", len(all))
	}

	if all[0] != "2024-01-01" {
		t.Errorf("expected grid to start on 2024-01-01, got %s", all[0])
	}

	if all[len(all)-1] != "2024-02-04" {
		t.Errorf("expected grid to end on 2024-02-04, got %s", all[len(all)-1])
	}

	weekdays := calendar.GetCalendarDays(2024, time.January, calendar.GridOptions{})
	for _, iso := range weekdays {
		d, err := calendar.FromISODate(iso)
		if err != nil {
			t.Fatalf("grid produced malformed date %q", iso)
		}

		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Errorf("weekday-only grid contains weekend day %s", iso)
		}
	}
}

func TestGetWeekViewDays(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	week := calendar.GetWeekViewDays("2024-01-10", calendar.GridOptions{IncludeWeekends: true})

	expected := []string{
		"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11",
		"2024-01-12", "2024-01-13", "2024-01-14",
	}
	if !reflect.DeepEqual(week, expected) {
		t.Errorf("expected %v, got %v", expected, week)
	}

	workweek := calendar.GetWeekViewDays("2024-01-10", calendar.GridOptions{})
	if len(workweek) != 5 {
		t.Errorf("expected 5 weekdays, got %d", len(workweek))
	}
}

func TestGetWeeksInRange(t *testing.T) {
	weeks := calendar.GetWeeksInRange("2024-01-10", "2024-01-22", calendar.GridOptions{IncludeWeekends: true})

	if len(weeks) != 3 {
		t.Fatalf("expected 3 weeks, got %d", len(weeks))
	}

	for i, week := range weeks {
		if len(week) != 7 {
			t.Errorf("week %d: expected 7 days, got %d", i, len(week))
		}
	}

	if weeks[0][0] != "2024-01-08" {
		t.Errorf("expected first week to start on 2024-01-08, got %s", weeks[0][0])
	}
}

func TestGroupConsecutive(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected [][]string
	}{
		{
			name:  "two blocks split by a gap",
			input: []string{"2024-01-15", "2024-01-16", "2024-01-17", "2024-01-20", "2024-01-21"},
			expected: [][]string{
				{"2024-01-15", "2024-01-16", "2024-01-17"},
				{"2024-01-20", "2024-01-21"},
			},
		},
		{
			name:  "unsorted input yields identical partition",
			input: []string{"2024-01-21", "2024-01-16", "2024-01-20", "2024-01-15", "2024-01-17"},
			expected: [][]string{
				{"2024-01-15", "2024-01-16", "2024-01-17"},
				{"2024-01-20", "2024-01-21"},
			},
		},
		{
			name:     "single date",
			input:    []string{"2024-01-15"},
			expected: [][]string{{"2024-01-15"}},
		},
		{
			name:     "duplicates collapse",
			input:    []string{"2024-01-15", "2024-01-15", "2024-01-16"},
			expected: [][]string{{"2024-01-15", "2024-01-16"}},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.GroupConsecutive(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
