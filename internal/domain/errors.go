package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidStatus  = errors.New("invalid check-in status")
	ErrInvalidDay     = errors.New("invalid day")
	ErrGoalArchived   = errors.New("goal archived")
	ErrExportNotReady = errors.New("export not ready")
)
