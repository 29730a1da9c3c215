package domain

import (
	"fmt"
	"time"
)

// ExportFormat enumerates supported export artifact formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatZip ExportFormat = "zip"
)

// ParseExportFormat validates a format string received over the wire.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case ExportFormatCSV, ExportFormatZip:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ExportStatus enumerates export job lifecycle states as persisted.
type ExportStatus string

const (
	ExportStatusQueued    ExportStatus = "QUEUED"
	ExportStatusRunning   ExportStatus = "RUNNING"
	ExportStatusSucceeded ExportStatus = "SUCCEEDED"
	ExportStatusFailed    ExportStatus = "FAILED"
)

// ExportJob tracks one requested check-in history export through the worker.
// FromDay and ToDay bound the exported window; empty means unbounded on that
// side.
type ExportJob struct {
	ID           string
	UserID       string
	Format       ExportFormat
	FromDay      string
	ToDay        string
	Status       ExportStatus
	StorageKey   string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Artifact returns the storage key of the finished artifact, or
// ErrExportNotReady while the job is still short of SUCCEEDED.
func (j ExportJob) Artifact() (string, error) {
	if j.Status != ExportStatusSucceeded || j.StorageKey == "" {
		return "", ErrExportNotReady
	}
	return j.StorageKey, nil
}
