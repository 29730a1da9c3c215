package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/middleware"
	"github.com/jayparimi/beyond-january/internal/streak"
)

type streakResponse struct {
	GoalID string `json:"goal_id"`
	streak.Summary
}

// GoalStreak computes the goal's consistency figures as of today in the
// viewer's timezone.
func (a *App) GoalStreak(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	goalID := chi.URLParam(r, "goal_id")
	goal, err := a.Goals.GetByID(r.Context(), userID, goalID)
	if err != nil {
		a.domainError(w, err, "failed to load goal")
		return
	}
	loc, err := a.resolveLocation(r, middleware.TimezoneFromContext(r.Context()))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	rows, err := a.Checkins.ListByGoal(r.Context(), userID, goalID)
	if err != nil {
		a.domainError(w, err, "failed to load check-ins")
		return
	}
	today := domain.FormatDay(time.Now().In(loc))
	a.json(w, http.StatusOK, streakResponse{
		GoalID:  goal.ID,
		Summary: streak.Compute(goal.StartDay, today, rows),
	})
}
