package domain

import "time"

// AnalyticsDaily stores aggregated activity counters for a specific UTC day.
type AnalyticsDaily struct {
	Day             string
	CheckinsDone    int
	CheckinsSkipped int
	CheckinsMissed  int
	GoalsCreated    int
	NewUsers        int
	ExportsFinished int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatsSummary carries the landing page totals.
type StatsSummary struct {
	TotalUsers    int64
	ActiveGoals   int64
	CheckinsToday int64
	CheckinsTotal int64
}
