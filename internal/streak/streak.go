package streak

import (
	"github.com/jayparimi/beyond-january/internal/domain"
)

// Summary holds the consistency figures for one goal. Rate30 is the done rate
// over the trailing 30 days; skipped days leave the denominator entirely.
type Summary struct {
	Current int     `json:"current"`
	Longest int     `json:"longest"`
	Rate30  float64 `json:"rate_30"`
}

// Compute derives the streak figures from a goal's check-in rows. startDay and
// today are calendar days in the owner's timezone; rows may arrive in any
// order. A day with no row is unrecorded and breaks streaks, except today,
// which is still pending. A skipped day preserves a streak without extending
// it.
func Compute(startDay, today string, rows []domain.CheckIn) Summary {
	byDay := make(map[string]domain.CheckinStatus, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r.Status
	}
	return Summary{
		Current: current(byDay, startDay, today),
		Longest: longest(byDay, startDay, today),
		Rate30:  rate30(byDay, startDay, today),
	}
}

func current(byDay map[string]domain.CheckinStatus, startDay, today string) int {
	start, err := domain.ParseDay(startDay)
	if err != nil {
		return 0
	}
	cursor, err := domain.ParseDay(today)
	if err != nil || startDay > today {
		return 0
	}
	// An unrecorded today is still pending, so the walk starts yesterday.
	if _, ok := byDay[today]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	count := 0
	for !cursor.Before(start) {
		switch byDay[domain.FormatDay(cursor)] {
		case domain.CheckinDone:
			count++
		case domain.CheckinSkipped:
			// preserved, not extended
		default:
			return count
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func longest(byDay map[string]domain.CheckinStatus, startDay, today string) int {
	start, err := domain.ParseDay(startDay)
	if err != nil {
		return 0
	}
	end, err := domain.ParseDay(today)
	if err != nil || startDay > today {
		return 0
	}
	best, run := 0, 0
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		day := domain.FormatDay(cursor)
		status, ok := byDay[day]
		if !ok {
			if day == today {
				break
			}
			run = 0
			continue
		}
		switch status {
		case domain.CheckinDone:
			run++
			if run > best {
				best = run
			}
		case domain.CheckinSkipped:
			// bridges the run
		default:
			run = 0
		}
	}
	return best
}

func rate30(byDay map[string]domain.CheckinStatus, startDay, today string) float64 {
	end, err := domain.ParseDay(today)
	if err != nil || startDay > today {
		return 0
	}
	windowStart := domain.FormatDay(end.AddDate(0, 0, -29))
	if startDay > windowStart {
		windowStart = startDay
	}
	cursor, err := domain.ParseDay(windowStart)
	if err != nil {
		return 0
	}
	done, due := 0, 0
	for ; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		day := domain.FormatDay(cursor)
		status, ok := byDay[day]
		if !ok {
			if day != today {
				due++
			}
			continue
		}
		switch status {
		case domain.CheckinDone:
			done++
			due++
		case domain.CheckinMissed:
			due++
		}
	}
	if due == 0 {
		return 0
	}
	return float64(done) / float64(due)
}
