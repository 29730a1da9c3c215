package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/metrics"
	"github.com/jayparimi/beyond-january/internal/middleware"
)

// maxCheckinRangeDays caps GET /v1/checkins windows at a leap year.
const maxCheckinRangeDays = 366

type checkinPutRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type checkinDTO struct {
	GoalID    string    `json:"goal_id"`
	Day       string    `json:"day"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func checkinFromDomain(c domain.CheckIn) checkinDTO {
	return checkinDTO{
		GoalID:    c.GoalID,
		Day:       c.Day,
		Status:    string(c.Status),
		Note:      c.Note,
		UpdatedAt: c.UpdatedAt,
	}
}

// CheckinPut records or revises one day's outcome for a goal. The day must
// fall between the goal's start day and today in the viewer's timezone.
func (a *App) CheckinPut(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	goalID := chi.URLParam(r, "goal_id")
	day := chi.URLParam(r, "day")
	if _, err := domain.ParseDay(day); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "day must be YYYY-MM-DD")
		return
	}
	var req checkinPutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	status, err := domain.ParseCheckinStatus(req.Status)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "status must be done, skipped or missed")
		return
	}
	goal, err := a.Goals.GetByID(r.Context(), userID, goalID)
	if err != nil {
		a.domainError(w, err, "failed to load goal")
		return
	}
	if goal.IsArchived() {
		a.error(w, http.StatusBadRequest, "bad_request", "goal is archived")
		return
	}
	if day < goal.StartDay {
		a.error(w, http.StatusBadRequest, "bad_request", "day is before the goal started")
		return
	}
	loc, err := a.resolveLocation(r, middleware.TimezoneFromContext(r.Context()))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if today := domain.FormatDay(time.Now().In(loc)); day > today {
		a.error(w, http.StatusBadRequest, "bad_request", "cannot record a future day")
		return
	}
	saved, err := a.Checkins.Upsert(r.Context(), &domain.CheckIn{
		GoalID: goalID,
		UserID: userID,
		Day:    day,
		Status: status,
		Note:   req.Note,
	})
	if err != nil {
		a.domainError(w, err, "failed to save check-in")
		return
	}
	metrics.CheckinsRecorded.WithLabelValues(string(status)).Inc()
	a.json(w, http.StatusOK, checkinFromDomain(*saved))
}

// CheckinDelete clears a day back to unrecorded. Deleting a day that has no
// entry succeeds quietly.
func (a *App) CheckinDelete(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	goalID := chi.URLParam(r, "goal_id")
	day := chi.URLParam(r, "day")
	if _, err := domain.ParseDay(day); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "day must be YYYY-MM-DD")
		return
	}
	if _, err := a.Goals.GetByID(r.Context(), userID, goalID); err != nil {
		a.domainError(w, err, "failed to load goal")
		return
	}
	if err := a.Checkins.Delete(r.Context(), userID, goalID, day); err != nil {
		a.domainError(w, err, "failed to clear check-in")
		return
	}
	metrics.CheckinsCleared.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// CheckinsRange returns the viewer's raw rows for an inclusive day window.
func (a *App) CheckinsRange(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	fromDate, err := domain.ParseDay(from)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "from must be YYYY-MM-DD")
		return
	}
	toDate, err := domain.ParseDay(to)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "to must be YYYY-MM-DD")
		return
	}
	if to < from {
		a.error(w, http.StatusBadRequest, "bad_request", "to must not precede from")
		return
	}
	if days := int(toDate.Sub(fromDate)/(24*time.Hour)) + 1; days > maxCheckinRangeDays {
		a.error(w, http.StatusBadRequest, "bad_request", "range must cover at most 366 days")
		return
	}
	rows, err := a.Checkins.ListRange(r.Context(), userID, from, to)
	if err != nil {
		a.domainError(w, err, "failed to load check-ins")
		return
	}
	items := make([]checkinDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, checkinFromDomain(row))
	}
	a.json(w, http.StatusOK, map[string]any{"from": from, "to": to, "items": items})
}
