package handlers

import "net/http"

// Health is the liveness probe. It reports ok as long as the process serves.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
