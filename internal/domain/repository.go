package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	UpsertByGoogleSub(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) (*User, error)
}

// TemplateRepository serves the goal template catalog.
type TemplateRepository interface {
	ListActive(ctx context.Context, category string) ([]GoalTemplate, error)
	GetByID(ctx context.Context, id string) (*GoalTemplate, error)
	UpsertBySlug(ctx context.Context, tpl *GoalTemplate) (*GoalTemplate, error)
}

// GoalRepository defines persistence for user goals. All reads are scoped to
// the owning user; a foreign goal is indistinguishable from a missing one.
type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) (*Goal, error)
	GetByID(ctx context.Context, userID, goalID string) (*Goal, error)
	ListByUser(ctx context.Context, userID string, status GoalStatus) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) (*Goal, error)
	Archive(ctx context.Context, userID, goalID string) error
}

// CheckinRepository defines persistence for daily check-ins.
type CheckinRepository interface {
	Upsert(ctx context.Context, checkin *CheckIn) (*CheckIn, error)
	Delete(ctx context.Context, userID, goalID, day string) error
	ListRange(ctx context.Context, userID, fromDay, toDay string) ([]CheckIn, error)
	ListByGoal(ctx context.Context, userID, goalID string) ([]CheckIn, error)
}

// ExportRepository defines persistence for export jobs. ClaimNext returns
// nil without error when the queue is empty.
type ExportRepository interface {
	Create(ctx context.Context, job *ExportJob) (*ExportJob, error)
	GetByID(ctx context.Context, userID, jobID string) (*ExportJob, error)
	ClaimNext(ctx context.Context) (*ExportJob, error)
	Finish(ctx context.Context, jobID string, status ExportStatus, storageKey, errMsg string) error
}

// AnalyticsRepository maintains the per-day rollup counters. RecomputeDay is
// idempotent so the worker can re-run it for the same day without drift.
type AnalyticsRepository interface {
	RecomputeDay(ctx context.Context, day string) (*AnalyticsDaily, error)
	Summary(ctx context.Context) (*StatsSummary, error)
}
