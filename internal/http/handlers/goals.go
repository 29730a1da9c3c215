package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/middleware"
)

type goalCreateRequest struct {
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Emoji      string `json:"emoji"`
	StartDay   string `json:"start_day"`
}

type goalDTO struct {
	ID         string     `json:"id"`
	TemplateID *string    `json:"template_id,omitempty"`
	Title      string     `json:"title"`
	Category   string     `json:"category,omitempty"`
	Emoji      string     `json:"emoji,omitempty"`
	StartDay   string     `json:"start_day"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

func goalFromDomain(g domain.Goal) goalDTO {
	return goalDTO{
		ID:         g.ID,
		TemplateID: g.TemplateID,
		Title:      g.Title,
		Category:   g.Category,
		Emoji:      g.Emoji,
		StartDay:   g.StartDay,
		Status:     string(g.Status),
		CreatedAt:  g.CreatedAt,
		ArchivedAt: g.ArchivedAt,
	}
}

// GoalsCreate starts a new goal, either from a catalog template or free-form.
// Template fields seed the goal; explicit request fields win over them.
func (a *App) GoalsCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req goalCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	goal := domain.Goal{
		UserID:   userID,
		Title:    strings.TrimSpace(req.Title),
		Category: strings.TrimSpace(req.Category),
		Emoji:    strings.TrimSpace(req.Emoji),
	}
	if req.TemplateID != "" {
		tpl, err := a.Templates.GetByID(r.Context(), req.TemplateID)
		if err != nil {
			a.domainError(w, err, "failed to load template")
			return
		}
		goal.TemplateID = &tpl.ID
		if goal.Title == "" {
			goal.Title = tpl.Title
		}
		if goal.Category == "" {
			goal.Category = tpl.Category
		}
		if goal.Emoji == "" {
			goal.Emoji = tpl.Emoji
		}
	}
	if goal.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title or template_id required")
		return
	}
	if req.StartDay != "" {
		if _, err := domain.ParseDay(req.StartDay); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "start_day must be YYYY-MM-DD")
			return
		}
		goal.StartDay = req.StartDay
	} else {
		loc, err := a.resolveLocation(r, middleware.TimezoneFromContext(r.Context()))
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		goal.StartDay = domain.FormatDay(time.Now().In(loc))
	}
	created, err := a.Goals.Create(r.Context(), &goal)
	if err != nil {
		a.domainError(w, err, "failed to create goal")
		return
	}
	a.json(w, http.StatusCreated, goalFromDomain(*created))
}

func (a *App) GoalsList(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var status domain.GoalStatus
	switch r.URL.Query().Get("status") {
	case "", "active":
		status = domain.GoalStatusActive
	case "archived":
		status = domain.GoalStatusArchived
	case "all":
		status = ""
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "status must be active, archived or all")
		return
	}
	goals, err := a.Goals.ListByUser(r.Context(), userID, status)
	if err != nil {
		a.domainError(w, err, "failed to load goals")
		return
	}
	items := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalFromDomain(g))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type goalUpdateRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Emoji    *string `json:"emoji"`
}

func (a *App) GoalsUpdate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	goalID := chi.URLParam(r, "goal_id")
	var req goalUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	goal, err := a.Goals.GetByID(r.Context(), userID, goalID)
	if err != nil {
		a.domainError(w, err, "failed to load goal")
		return
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "title cannot be empty")
			return
		}
		goal.Title = title
	}
	if req.Category != nil {
		goal.Category = strings.TrimSpace(*req.Category)
	}
	if req.Emoji != nil {
		goal.Emoji = strings.TrimSpace(*req.Emoji)
	}
	updated, err := a.Goals.Update(r.Context(), goal)
	if err != nil {
		a.domainError(w, err, "failed to update goal")
		return
	}
	a.json(w, http.StatusOK, goalFromDomain(*updated))
}

// GoalsArchive soft-archives a goal; history stays readable and repeating the
// call is a no-op.
func (a *App) GoalsArchive(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	goalID := chi.URLParam(r, "goal_id")
	if err := a.Goals.Archive(r.Context(), userID, goalID); err != nil {
		a.domainError(w, err, "failed to archive goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type todayItemDTO struct {
	Goal   goalDTO `json:"goal"`
	Status string  `json:"status"`
	Note   string  `json:"note,omitempty"`
}

// GoalsToday is the check-in page model: every active goal joined with its
// status for today in the viewer's timezone. Goals starting in the future are
// left out until their day arrives.
func (a *App) GoalsToday(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	loc, err := a.resolveLocation(r, middleware.TimezoneFromContext(r.Context()))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	today := domain.FormatDay(time.Now().In(loc))
	goals, err := a.Goals.ListByUser(r.Context(), userID, domain.GoalStatusActive)
	if err != nil {
		a.domainError(w, err, "failed to load goals")
		return
	}
	rows, err := a.Checkins.ListRange(r.Context(), userID, today, today)
	if err != nil {
		a.domainError(w, err, "failed to load check-ins")
		return
	}
	byGoal := make(map[string]domain.CheckIn, len(rows))
	for _, row := range rows {
		byGoal[row.GoalID] = row
	}
	items := make([]todayItemDTO, 0, len(goals))
	for _, g := range goals {
		if g.StartDay > today {
			continue
		}
		item := todayItemDTO{Goal: goalFromDomain(g), Status: "unrecorded"}
		if row, ok := byGoal[g.ID]; ok {
			item.Status = string(row.Status)
			item.Note = row.Note
		}
		items = append(items, item)
	}
	a.json(w, http.StatusOK, map[string]any{"day": today, "items": items})
}
