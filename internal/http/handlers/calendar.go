package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jayparimi/beyond-january/internal/calendar"
	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/domain/jsoncfg"
)

// CalendarMonth renders the month review grid. Without a goal_id filter every
// goal counts, including goals archived mid-month for the days they were
// still active.
func (a *App) CalendarMonth(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid month")
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.domainError(w, err, "failed to load profile")
		return
	}
	loc, err := a.resolveLocation(r, user.Timezone)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	var goals []domain.Goal
	if goalID := r.URL.Query().Get("goal_id"); goalID != "" {
		goal, err := a.Goals.GetByID(r.Context(), userID, goalID)
		if err != nil {
			a.domainError(w, err, "failed to load goal")
			return
		}
		goals = []domain.Goal{*goal}
	} else {
		goals, err = a.Goals.ListByUser(r.Context(), userID, "")
		if err != nil {
			a.domainError(w, err, "failed to load goals")
			return
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	rows, err := a.Checkins.ListRange(r.Context(), userID, domain.FormatDay(first), domain.FormatDay(first.AddDate(0, 1, -1)))
	if err != nil {
		a.domainError(w, err, "failed to load check-ins")
		return
	}

	grid, err := calendar.BuildMonth(calendar.MonthRequest{
		Year:      year,
		Month:     time.Month(month),
		Today:     domain.FormatDay(time.Now().In(loc)),
		WeekStart: jsoncfg.DecodePrefs(user.Properties).WeekStartWeekday(),
		Location:  loc,
		Goals:     goals,
		Checkins:  rows,
	})
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, grid)
}
