package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
)

type exportCreateRequest struct {
	Format string `json:"format"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type exportJobDTO struct {
	ID        string    `json:"id"`
	Format    string    `json:"format"`
	Status    string    `json:"status"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func exportFromDomain(job domain.ExportJob) exportJobDTO {
	return exportJobDTO{
		ID:        job.ID,
		Format:    string(job.Format),
		Status:    string(job.Status),
		From:      job.FromDay,
		To:        job.ToDay,
		Error:     job.ErrorMessage,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

// ExportsCreate queues a check-in history export for the worker. An empty
// from/to leaves that side of the window unbounded.
func (a *App) ExportsCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req exportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	format, err := domain.ParseExportFormat(req.Format)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "format must be csv or zip")
		return
	}
	for _, day := range []string{req.From, req.To} {
		if day == "" {
			continue
		}
		if _, err := domain.ParseDay(day); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "from/to must be YYYY-MM-DD")
			return
		}
	}
	if req.From != "" && req.To != "" && req.To < req.From {
		a.error(w, http.StatusBadRequest, "bad_request", "to must not precede from")
		return
	}
	job, err := a.Exports.Create(r.Context(), &domain.ExportJob{
		UserID:  userID,
		Format:  format,
		FromDay: req.From,
		ToDay:   req.To,
	})
	if err != nil {
		a.domainError(w, err, "failed to queue export")
		return
	}
	a.json(w, http.StatusAccepted, exportFromDomain(*job))
}

func (a *App) ExportStatus(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	job, err := a.Exports.GetByID(r.Context(), userID, chi.URLParam(r, "job_id"))
	if err != nil {
		a.domainError(w, err, "failed to load export")
		return
	}
	a.json(w, http.StatusOK, exportFromDomain(*job))
}

// ExportDownload streams the produced artifact. Until the job reaches
// SUCCEEDED the file does not exist, so the endpoint reports not found.
func (a *App) ExportDownload(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	job, err := a.Exports.GetByID(r.Context(), userID, chi.URLParam(r, "job_id"))
	if err != nil {
		a.domainError(w, err, "failed to load export")
		return
	}
	key, err := job.Artifact()
	if err != nil {
		a.domainError(w, err, "failed to load export")
		return
	}
	if a.Store == nil {
		a.error(w, http.StatusInternalServerError, "internal", "storage not configured")
		return
	}
	file, err := a.Store.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.error(w, http.StatusNotFound, "not_found", "export file missing")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("open export file failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to open export")
		return
	}
	defer file.Close()

	contentType := "text/csv; charset=utf-8"
	if job.Format == domain.ExportFormatZip {
		contentType = "application/zip"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=checkins-%s.%s", job.ID, job.Format))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		a.Logger.Warn().Err(err).Str("job_id", job.ID).Msg("export download interrupted")
	}
}
