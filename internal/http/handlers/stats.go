package handlers

import "net/http"

// StatsSummary serves the public landing totals from one aggregate query.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Analytics.Summary(r.Context())
	if err != nil {
		a.domainError(w, err, "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_users":    summary.TotalUsers,
		"active_goals":   summary.ActiveGoals,
		"checkins_today": summary.CheckinsToday,
		"checkins_total": summary.CheckinsTotal,
	})
}
