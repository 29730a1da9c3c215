package handlers

import (
	"net/http"
	"time"

	"github.com/jayparimi/beyond-january/internal/metrics"
	"github.com/jayparimi/beyond-january/internal/middleware"
	"github.com/jayparimi/beyond-january/internal/pulse"
)

type pulseResponse struct {
	Day            string `json:"day"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Count          int    `json:"count"`
	MinGapSeconds  int    `json:"min_gap_seconds"`
	MaxGapSeconds  int    `json:"max_gap_seconds"`
}

// PulseToday evaluates the deterministic landing counter for the viewer's
// local day. Anyone asking in the same timezone at the same second sees the
// same count, and the count resets at that timezone's midnight.
func (a *App) PulseToday(w http.ResponseWriter, r *http.Request) {
	loc, err := a.resolveLocation(r, middleware.TimezoneFromContext(r.Context()))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	now := time.Now().In(loc)
	day := pulse.DayKey(now)
	elapsed := pulse.ElapsedSeconds(now)
	metrics.PulseRequests.Inc()
	a.json(w, http.StatusOK, pulseResponse{
		Day:            day,
		ElapsedSeconds: elapsed,
		Count:          a.Pulse.Count(day, elapsed),
		MinGapSeconds:  a.Pulse.MinGap(),
		MaxGapSeconds:  a.Pulse.MaxGap(),
	})
}
