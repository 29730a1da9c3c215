package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
)

// GoalRepositoryPG implements domain.GoalRepository backed by PostgreSQL.
type GoalRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewGoalRepository creates a new GoalRepositoryPG.
func NewGoalRepository(sql infra.SQLExecutor) *GoalRepositoryPG {
	return &GoalRepositoryPG{sql: sql}
}

// Create inserts a goal and returns the stored row.
func (r *GoalRepositoryPG) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	templateID := ""
	if goal.TemplateID != nil {
		templateID = *goal.TemplateID
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertGoal,
		goal.UserID,
		templateID,
		goal.Title,
		goal.Category,
		goal.Emoji,
		goal.StartDay,
	)
	return scanGoal(row)
}

// GetByID fetches one goal scoped to its owner.
func (r *GoalRepositoryPG) GetByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectGoalByID, goalID, userID)
	return scanGoal(row)
}

// ListByUser returns the user's goals, optionally filtered by status.
func (r *GoalRepositoryPG) ListByUser(ctx context.Context, userID string, status domain.GoalStatus) ([]domain.Goal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListGoalsByUser, userID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the editable goal fields.
func (r *GoalRepositoryPG) Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateGoal,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Category,
		goal.Emoji,
	)
	return scanGoal(row)
}

// Archive soft-archives an active goal. Archiving an already archived goal is
// a no-op; a missing or foreign goal reports ErrNotFound.
func (r *GoalRepositoryPG) Archive(ctx context.Context, userID, goalID string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QArchiveGoal, goalID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	_, err = r.GetByID(ctx, userID, goalID)
	return err
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	var status string
	if err := row.Scan(&g.ID, &g.UserID, &g.TemplateID, &g.Title, &g.Category, &g.Emoji, &g.StartDay, &status, &g.CreatedAt, &g.UpdatedAt, &g.ArchivedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	g.Status = domain.GoalStatus(status)
	return &g, nil
}

var _ domain.GoalRepository = (*GoalRepositoryPG)(nil)
