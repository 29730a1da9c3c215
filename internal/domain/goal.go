package domain

import "time"

// GoalStatus enumerates goal lifecycle states.
type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusArchived GoalStatus = "archived"
)

// GoalTemplate is a curated catalog entry users can start a goal from.
type GoalTemplate struct {
	ID          string
	Slug        string
	Title       string
	Category    string
	Description string
	Emoji       string
	SortOrder   int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Goal is one habit a user tracks with daily check-ins.
type Goal struct {
	ID         string
	UserID     string
	TemplateID *string
	Title      string
	Category   string
	Emoji      string
	StartDay   string
	Status     GoalStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ArchivedAt *time.Time
}

// IsArchived reports whether the goal no longer accepts check-ins.
func (g Goal) IsArchived() bool {
	return g.Status == GoalStatusArchived
}
