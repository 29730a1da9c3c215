package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
)

// CheckinRepositoryPG implements domain.CheckinRepository backed by PostgreSQL.
type CheckinRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCheckinRepository creates a new CheckinRepositoryPG.
func NewCheckinRepository(sql infra.SQLExecutor) *CheckinRepositoryPG {
	return &CheckinRepositoryPG{sql: sql}
}

// Upsert writes one day's status for a goal, replacing any earlier entry.
func (r *CheckinRepositoryPG) Upsert(ctx context.Context, checkin *domain.CheckIn) (*domain.CheckIn, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertCheckin,
		checkin.GoalID,
		checkin.UserID,
		checkin.Day,
		string(checkin.Status),
		checkin.Note,
	)
	return scanCheckin(row)
}

// Delete clears a day back to unrecorded. Deleting an absent entry is a no-op.
func (r *CheckinRepositoryPG) Delete(ctx context.Context, userID, goalID, day string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteCheckin, goalID, userID, day)
	return err
}

// ListRange returns the user's check-ins between fromDay and toDay inclusive.
// An empty bound leaves that side open.
func (r *CheckinRepositoryPG) ListRange(ctx context.Context, userID, fromDay, toDay string) ([]domain.CheckIn, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCheckinsRange, userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

// ListByGoal returns every check-in recorded for one goal.
func (r *CheckinRepositoryPG) ListByGoal(ctx context.Context, userID, goalID string) ([]domain.CheckIn, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCheckinsByGoal, userID, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

func collectCheckins(rows pgx.Rows) ([]domain.CheckIn, error) {
	var out []domain.CheckIn
	for rows.Next() {
		checkin, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCheckin(row pgx.Row) (*domain.CheckIn, error) {
	var c domain.CheckIn
	var status string
	if err := row.Scan(&c.ID, &c.GoalID, &c.UserID, &c.Day, &status, &c.Note, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c.Status = domain.CheckinStatus(status)
	return &c, nil
}

var _ domain.CheckinRepository = (*CheckinRepositoryPG)(nil)
