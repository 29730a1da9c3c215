package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
)

// ExportRepositoryPG implements domain.ExportRepository backed by PostgreSQL.
type ExportRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewExportRepository creates a new ExportRepositoryPG.
func NewExportRepository(sql infra.SQLExecutor) *ExportRepositoryPG {
	return &ExportRepositoryPG{sql: sql}
}

// Create queues a new export job.
func (r *ExportRepositoryPG) Create(ctx context.Context, job *domain.ExportJob) (*domain.ExportJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertExportJob,
		job.UserID,
		string(job.Format),
		job.FromDay,
		job.ToDay,
	)
	return scanExportJob(row)
}

// GetByID fetches one job scoped to its owner.
func (r *ExportRepositoryPG) GetByID(ctx context.Context, userID, jobID string) (*domain.ExportJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectExportJob, jobID, userID)
	return scanExportJob(row)
}

// ClaimNext atomically claims the oldest queued job and flips it to RUNNING.
// It returns nil without error when the queue is empty.
func (r *ExportRepositoryPG) ClaimNext(ctx context.Context) (*domain.ExportJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QClaimExportJob)
	job, err := scanExportJob(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Finish records a job's terminal status with its storage key or error text.
func (r *ExportRepositoryPG) Finish(ctx context.Context, jobID string, status domain.ExportStatus, storageKey, errMsg string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QFinishExportJob, jobID, string(status), storageKey, errMsg)
	return err
}

func scanExportJob(row pgx.Row) (*domain.ExportJob, error) {
	var j domain.ExportJob
	var format, status string
	if err := row.Scan(&j.ID, &j.UserID, &format, &j.FromDay, &j.ToDay, &status, &j.StorageKey, &j.ErrorMessage, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	j.Format = domain.ExportFormat(format)
	j.Status = domain.ExportStatus(status)
	return &j, nil
}

var _ domain.ExportRepository = (*ExportRepositoryPG)(nil)
