package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
)

// TemplateRepositoryPG implements domain.TemplateRepository backed by PostgreSQL.
type TemplateRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTemplateRepository creates a new TemplateRepositoryPG.
func NewTemplateRepository(sql infra.SQLExecutor) *TemplateRepositoryPG {
	return &TemplateRepositoryPG{sql: sql}
}

// ListActive returns active templates, optionally filtered to one category.
func (r *TemplateRepositoryPG) ListActive(ctx context.Context, category string) ([]domain.GoalTemplate, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListActiveTemplates, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GoalTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a template by UUID.
func (r *TemplateRepositoryPG) GetByID(ctx context.Context, id string) (*domain.GoalTemplate, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectTemplateByID, id)
	return scanTemplate(row)
}

// UpsertBySlug inserts or updates a template keyed by its slug.
func (r *TemplateRepositoryPG) UpsertBySlug(ctx context.Context, tpl *domain.GoalTemplate) (*domain.GoalTemplate, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertTemplateBySlug,
		tpl.Slug,
		tpl.Title,
		tpl.Category,
		tpl.Description,
		tpl.Emoji,
		tpl.SortOrder,
		tpl.Active,
	)
	return scanTemplate(row)
}

func scanTemplate(row pgx.Row) (*domain.GoalTemplate, error) {
	var t domain.GoalTemplate
	if err := row.Scan(&t.ID, &t.Slug, &t.Title, &t.Category, &t.Description, &t.Emoji, &t.SortOrder, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

var _ domain.TemplateRepository = (*TemplateRepositoryPG)(nil)
