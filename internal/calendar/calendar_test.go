package calendar

import (
	"testing"
	"time"

	"github.com/jayparimi/beyond-january/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildMonthMetadata(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		weekStart  time.Weekday
		wantDays   int
		wantOffset int
	}{
		{name: "january monday start", year: 2026, month: time.January, weekStart: time.Monday, wantDays: 31, wantOffset: 3},
		{name: "january sunday start", year: 2026, month: time.January, weekStart: time.Sunday, wantDays: 31, wantOffset: 4},
		{name: "plain february", year: 2026, month: time.February, weekStart: time.Monday, wantDays: 28, wantOffset: 6},
		{name: "leap february", year: 2024, month: time.February, weekStart: time.Monday, wantDays: 29, wantOffset: 3},
		{name: "thirty day month", year: 2026, month: time.April, weekStart: time.Monday, wantDays: 30, wantOffset: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := BuildMonth(MonthRequest{Year: tc.year, Month: tc.month, WeekStart: tc.weekStart})
			if err != nil {
				t.Fatalf("BuildMonth() error = %v", err)
			}
			if grid.DaysInMonth != tc.wantDays {
				t.Fatalf("DaysInMonth = %d, want %d", grid.DaysInMonth, tc.wantDays)
			}
			if grid.LeadingOffset != tc.wantOffset {
				t.Fatalf("LeadingOffset = %d, want %d", grid.LeadingOffset, tc.wantOffset)
			}
			if len(grid.Cells) != tc.wantDays {
				t.Fatalf("len(Cells) = %d, want %d", len(grid.Cells), tc.wantDays)
			}
		})
	}
}

func TestBuildMonthValidation(t *testing.T) {
	if _, err := BuildMonth(MonthRequest{Year: 2026, Month: 0}); err == nil {
		t.Fatal("BuildMonth() with month 0 = nil error, want error")
	}
	if _, err := BuildMonth(MonthRequest{Year: 2026, Month: 13}); err == nil {
		t.Fatal("BuildMonth() with month 13 = nil error, want error")
	}
	if _, err := BuildMonth(MonthRequest{Year: 0, Month: time.May}); err == nil {
		t.Fatal("BuildMonth() with year 0 = nil error, want error")
	}
}

func TestBuildMonthAggregation(t *testing.T) {
	archivedAt := time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)
	goals := []domain.Goal{
		{ID: "g1", StartDay: "2026-01-01", Status: domain.GoalStatusActive},
		{ID: "g2", StartDay: "2026-01-10", Status: domain.GoalStatusActive},
		{ID: "g3", StartDay: "2026-01-01", Status: domain.GoalStatusArchived, ArchivedAt: timePtr(archivedAt)},
	}
	checkins := []domain.CheckIn{
		{GoalID: "g1", Day: "2026-01-02", Status: domain.CheckinDone},
		{GoalID: "g3", Day: "2026-01-02", Status: domain.CheckinDone},
		{GoalID: "g1", Day: "2026-01-03", Status: domain.CheckinDone},
		{GoalID: "g3", Day: "2026-01-03", Status: domain.CheckinSkipped},
		{GoalID: "g1", Day: "2026-01-05", Status: domain.CheckinSkipped},
		{GoalID: "g1", Day: "2026-01-10", Status: domain.CheckinDone},
		{GoalID: "g2", Day: "2026-01-10", Status: domain.CheckinMissed},
		{GoalID: "g1", Day: "2025-12-31", Status: domain.CheckinDone},
		{GoalID: "g1", Day: "2026-02-01", Status: domain.CheckinDone},
	}

	grid, err := BuildMonth(MonthRequest{
		Year:      2026,
		Month:     time.January,
		Today:     "2026-01-20",
		WeekStart: time.Monday,
		Location:  time.UTC,
		Goals:     goals,
		Checkins:  checkins,
	})
	if err != nil {
		t.Fatalf("BuildMonth() error = %v", err)
	}

	cell := func(day int) DayCell { return grid.Cells[day-1] }

	first := cell(1)
	if first.Weekday != "thursday" {
		t.Fatalf("cell 1 weekday = %q, want %q", first.Weekday, "thursday")
	}
	if first.Unrecorded != 2 || first.Statuses["g1"] != "unrecorded" || first.Statuses["g3"] != "unrecorded" {
		t.Fatalf("cell 1 = %+v, want g1 and g3 unrecorded", first)
	}
	if first.Completion != 0 {
		t.Fatalf("cell 1 completion = %v, want 0", first.Completion)
	}

	second := cell(2)
	if second.Done != 2 || second.Completion != 1 {
		t.Fatalf("cell 2 = %+v, want two done and full completion", second)
	}

	// A skipped goal leaves the completion denominator.
	third := cell(3)
	if third.Done != 1 || third.Skipped != 1 || third.Completion != 1 {
		t.Fatalf("cell 3 = %+v, want done=1 skipped=1 completion=1", third)
	}

	// g3 was archived at 14:00 on the 5th, so it still counts that day.
	fifth := cell(5)
	if fifth.Statuses["g1"] != "skipped" || fifth.Statuses["g3"] != "unrecorded" {
		t.Fatalf("cell 5 statuses = %v, want g1 skipped, g3 unrecorded", fifth.Statuses)
	}
	if fifth.Completion != 0 {
		t.Fatalf("cell 5 completion = %v, want 0", fifth.Completion)
	}

	sixth := cell(6)
	if _, ok := sixth.Statuses["g3"]; ok {
		t.Fatalf("cell 6 statuses = %v, archived g3 should be excluded", sixth.Statuses)
	}

	// g2 starts on the 10th.
	ninth := cell(9)
	if _, ok := ninth.Statuses["g2"]; ok {
		t.Fatalf("cell 9 statuses = %v, g2 has not started yet", ninth.Statuses)
	}
	tenth := cell(10)
	if tenth.Statuses["g1"] != "done" || tenth.Statuses["g2"] != "missed" {
		t.Fatalf("cell 10 statuses = %v, want g1 done, g2 missed", tenth.Statuses)
	}
	if tenth.Completion != 0.5 {
		t.Fatalf("cell 10 completion = %v, want 0.5", tenth.Completion)
	}

	today := cell(20)
	if today.Pending {
		t.Fatal("cell 20 marked pending, but it is today")
	}
	future := cell(21)
	if !future.Pending || future.Statuses != nil || future.Done+future.Missed+future.Unrecorded != 0 {
		t.Fatalf("cell 21 = %+v, want empty pending cell", future)
	}
	if !cell(31).Pending {
		t.Fatal("cell 31 not pending, want pending")
	}
}

func TestBuildMonthWithoutToday(t *testing.T) {
	grid, err := BuildMonth(MonthRequest{
		Year:      2026,
		Month:     time.January,
		WeekStart: time.Monday,
		Goals:     []domain.Goal{{ID: "g1", StartDay: "2026-01-01", Status: domain.GoalStatusActive}},
	})
	if err != nil {
		t.Fatalf("BuildMonth() error = %v", err)
	}
	last := grid.Cells[len(grid.Cells)-1]
	if last.Pending {
		t.Fatal("cell 31 pending without a today cutoff")
	}
	if last.Statuses["g1"] != "unrecorded" {
		t.Fatalf("cell 31 statuses = %v, want g1 unrecorded", last.Statuses)
	}
}
