package domain

import "time"

// CheckinStatus enumerates the tri-state daily outcome. A day with no row is
// unrecorded, which is distinct from missed.
type CheckinStatus string

const (
	CheckinDone    CheckinStatus = "done"
	CheckinSkipped CheckinStatus = "skipped"
	CheckinMissed  CheckinStatus = "missed"
)

// ParseCheckinStatus validates a status string received over the wire.
func ParseCheckinStatus(s string) (CheckinStatus, error) {
	switch CheckinStatus(s) {
	case CheckinDone, CheckinSkipped, CheckinMissed:
		return CheckinStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// CheckIn records one goal's outcome for one calendar day in the owner's
// timezone.
type CheckIn struct {
	ID        string
	GoalID    string
	UserID    string
	Day       string
	Status    CheckinStatus
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayLayout is the canonical calendar-day format shared by the API, the
// database and the landing counter.
const DayLayout = "2006-01-02"

// ParseDay validates a strict zero-padded YYYY-MM-DD calendar day. The length
// check rejects the unpadded forms time.Parse would otherwise accept.
func ParseDay(s string) (time.Time, error) {
	if len(s) != len(DayLayout) {
		return time.Time{}, ErrInvalidDay
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return t, nil
}

// FormatDay renders t's calendar day in the canonical format.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
