package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/jayparimi/beyond-january/internal/domain"
)

// MonthRequest carries everything needed to build one month grid. Goals and
// Checkins are the viewer's rows as fetched; filtering to a single goal is the
// caller's job.
type MonthRequest struct {
	Year      int
	Month     time.Month
	Today     string // viewer's current day; "" disables pending marking
	WeekStart time.Weekday
	Location  *time.Location // converts goal archive timestamps to days
	Goals     []domain.Goal
	Checkins  []domain.CheckIn
}

// MonthGrid is the review-page model for one calendar month.
type MonthGrid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	DaysInMonth   int       `json:"days_in_month"`
	LeadingOffset int       `json:"leading_offset"`
	WeekStart     string    `json:"week_start"`
	Cells         []DayCell `json:"cells"`
}

// DayCell aggregates one day of the month. Statuses maps goal ID to one of
// done, skipped, missed or unrecorded for every goal expected that day.
// Pending days (after the viewer's today) carry no statuses or counts.
type DayCell struct {
	Day        string            `json:"day"`
	Weekday    string            `json:"weekday"`
	Pending    bool              `json:"pending"`
	Statuses   map[string]string `json:"statuses,omitempty"`
	Done       int               `json:"done"`
	Skipped    int               `json:"skipped"`
	Missed     int               `json:"missed"`
	Unrecorded int               `json:"unrecorded"`
	Completion float64           `json:"completion"`
}

type goalSpan struct {
	id       string
	startDay string
	endDay   string // inclusive last expected day, "" = open
}

// BuildMonth aggregates goals and check-in rows into the month grid in a
// single pass over days and rows.
func BuildMonth(req MonthRequest) (*MonthGrid, error) {
	if req.Year < 1 || req.Year > 9999 {
		return nil, fmt.Errorf("calendar: year %d out of range", req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("calendar: month %d out of range", req.Month)
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	firstDay := domain.FormatDay(first)
	lastDay := fmt.Sprintf("%04d-%02d-%02d", req.Year, int(req.Month), daysInMonth)

	spans := make([]goalSpan, 0, len(req.Goals))
	for _, g := range req.Goals {
		span := goalSpan{id: g.ID, startDay: g.StartDay}
		if g.IsArchived() && g.ArchivedAt != nil {
			span.endDay = domain.FormatDay(g.ArchivedAt.In(loc))
		}
		spans = append(spans, span)
	}

	// day → goal → status, month rows only
	recorded := make(map[string]map[string]domain.CheckinStatus)
	for _, c := range req.Checkins {
		if c.Day < firstDay || c.Day > lastDay {
			continue
		}
		byGoal, ok := recorded[c.Day]
		if !ok {
			byGoal = make(map[string]domain.CheckinStatus)
			recorded[c.Day] = byGoal
		}
		byGoal[c.GoalID] = c.Status
	}

	grid := &MonthGrid{
		Year:          req.Year,
		Month:         int(req.Month),
		DaysInMonth:   daysInMonth,
		LeadingOffset: (int(first.Weekday()) - int(req.WeekStart) + 7) % 7,
		WeekStart:     strings.ToLower(req.WeekStart.String()),
		Cells:         make([]DayCell, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(req.Year, req.Month, d, 0, 0, 0, 0, time.UTC)
		day := domain.FormatDay(date)
		cell := DayCell{
			Day:     day,
			Weekday: strings.ToLower(date.Weekday().String()),
		}
		if req.Today != "" && day > req.Today {
			cell.Pending = true
			grid.Cells = append(grid.Cells, cell)
			continue
		}

		byGoal := recorded[day]
		for _, span := range spans {
			if day < span.startDay {
				continue
			}
			if span.endDay != "" && day > span.endDay {
				continue
			}
			if cell.Statuses == nil {
				cell.Statuses = make(map[string]string)
			}
			status, ok := byGoal[span.id]
			if !ok {
				cell.Statuses[span.id] = "unrecorded"
				cell.Unrecorded++
				continue
			}
			cell.Statuses[span.id] = string(status)
			switch status {
			case domain.CheckinDone:
				cell.Done++
			case domain.CheckinSkipped:
				cell.Skipped++
			case domain.CheckinMissed:
				cell.Missed++
			}
		}

		// Skipped days are excused, so they leave the denominator.
		if due := cell.Done + cell.Missed + cell.Unrecorded; due > 0 {
			cell.Completion = float64(cell.Done) / float64(due)
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid, nil
}
