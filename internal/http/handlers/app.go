package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jayparimi/beyond-january/internal/adapter/repo"
	"github.com/jayparimi/beyond-january/internal/catalog"
	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/middleware"
	"github.com/jayparimi/beyond-january/internal/pulse"
	"github.com/jayparimi/beyond-january/internal/storage"
)

// GoogleTokenVerifier validates a Google ID token and returns its claims.
type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (map[string]any, error)
}

// TimezoneSource guesses an IANA timezone for a client IP.
type TimezoneSource interface {
	TimeZone(ip string) (string, error)
}

// App is the handler container. Fields are exported so tests can assemble a
// partial App around fakes.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Users     domain.UserRepository
	Templates domain.TemplateRepository
	Goals     domain.GoalRepository
	Checkins  domain.CheckinRepository
	Exports   domain.ExportRepository
	Analytics domain.AnalyticsRepository

	GoogleVerifier GoogleTokenVerifier
	Catalog        *catalog.Loader
	Pulse          pulse.Counter
	Timezones      TimezoneSource
	Store          *storage.FileStore
	JWTSecret      string
}

// NewApp wires the repositories over the shared SQL executor. The remaining
// collaborators are assigned by the caller.
func NewApp(cfg *infra.Config, logger infra.Logger, sql infra.SQLExecutor) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Users:     repo.NewUserRepository(sql),
		Templates: repo.NewTemplateRepository(sql),
		Goals:     repo.NewGoalRepository(sql),
		Checkins:  repo.NewCheckinRepository(sql),
		Exports:   repo.NewExportRepository(sql),
		Analytics: repo.NewAnalyticsRepository(sql),
		JWTSecret: cfg.JWTSecret,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errcode, msg string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": errcode, "message": msg}})
}

// domainError maps repository sentinels onto HTTP responses. fallback is the
// message used for unexpected errors, which are also logged.
func (a *App) domainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "not yours")
	case errors.Is(err, domain.ErrInvalidDay), errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrGoalArchived):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrExportNotReady):
		a.error(w, http.StatusNotFound, "not_ready", "export has not finished")
	default:
		a.Logger.Error().Err(err).Msg(fallback)
		a.error(w, http.StatusInternalServerError, "internal", fallback)
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// resolveLocation picks the viewer's timezone: an explicit tz query param or
// X-Timezone header wins and must be a valid IANA name, then the profile
// timezone, then a GeoIP guess for the client IP, then UTC.
func (a *App) resolveLocation(r *http.Request, profileTZ string) (*time.Location, error) {
	name := r.URL.Query().Get("tz")
	if name == "" {
		name = r.Header.Get("X-Timezone")
	}
	if name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q", name)
		}
		return loc, nil
	}
	if profileTZ != "" {
		if loc, err := time.LoadLocation(profileTZ); err == nil {
			return loc, nil
		}
	}
	if a.Timezones != nil {
		if name, err := a.Timezones.TimeZone(middleware.ClientIP(r)); err == nil && name != "" {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc, nil
			}
		}
	}
	return time.UTC, nil
}
