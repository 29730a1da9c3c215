package repo

import (
	"context"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
)

// AnalyticsRepositoryPG implements domain.AnalyticsRepository backed by PostgreSQL.
type AnalyticsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAnalyticsRepository creates a new AnalyticsRepositoryPG.
func NewAnalyticsRepository(sql infra.SQLExecutor) *AnalyticsRepositoryPG {
	return &AnalyticsRepositoryPG{sql: sql}
}

// RecomputeDay rebuilds the rollup row for one UTC day from the source tables
// and returns it. Re-running for the same day converges to the same counters.
func (r *AnalyticsRepositoryPG) RecomputeDay(ctx context.Context, day string) (*domain.AnalyticsDaily, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QRecomputeAnalyticsDay, day)
	var a domain.AnalyticsDaily
	if err := row.Scan(
		&a.Day,
		&a.CheckinsDone,
		&a.CheckinsSkipped,
		&a.CheckinsMissed,
		&a.GoalsCreated,
		&a.NewUsers,
		&a.ExportsFinished,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Summary returns the landing-page totals in one aggregate query.
func (r *AnalyticsRepositoryPG) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QStatsSummary)
	var s domain.StatsSummary
	if err := row.Scan(&s.TotalUsers, &s.ActiveGoals, &s.CheckinsToday, &s.CheckinsTotal); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ domain.AnalyticsRepository = (*AnalyticsRepositoryPG)(nil)
