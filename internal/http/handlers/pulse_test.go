package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/pulse"
)

type pulseBodyDTO struct {
	Day            string `json:"day"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Count          int    `json:"count"`
	MinGapSeconds  int    `json:"min_gap_seconds"`
	MaxGapSeconds  int    `json:"max_gap_seconds"`
}

func TestPulseTodayIntegration(t *testing.T) {
	runner := newFakeSQLRunner()
	app, router := newTestApp(runner)
	counter, err := pulse.New(10, 90)
	if err != nil {
		t.Fatalf("pulse.New(10, 90) error: %v", err)
	}
	app.Pulse = counter

	req := httptest.NewRequest(http.MethodGet, "/v1/pulse/today", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("pulse status = %d, want %d: %s", res.Code, http.StatusOK, res.Body.String())
	}
	var body pulseBodyDTO
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode pulse: %v", err)
	}
	if _, err := domain.ParseDay(body.Day); err != nil {
		t.Fatalf("pulse day = %q, want YYYY-MM-DD", body.Day)
	}
	if body.MinGapSeconds != 10 || body.MaxGapSeconds != 90 {
		t.Fatalf("gap bounds = %d..%d, want 10..90", body.MinGapSeconds, body.MaxGapSeconds)
	}
	if body.ElapsedSeconds < 0 {
		t.Fatalf("elapsed = %d, want >= 0", body.ElapsedSeconds)
	}
	// The counter is deterministic, so replaying the reported day and elapsed
	// seconds must reproduce the reported count.
	if got := counter.Count(body.Day, body.ElapsedSeconds); got != body.Count {
		t.Fatalf("Count(%q, %d) = %d, want %d", body.Day, body.ElapsedSeconds, got, body.Count)
	}

	tokyoReq := httptest.NewRequest(http.MethodGet, "/v1/pulse/today?tz=Asia/Tokyo", nil)
	tokyoRes := httptest.NewRecorder()
	router.ServeHTTP(tokyoRes, tokyoReq)
	if tokyoRes.Code != http.StatusOK {
		t.Fatalf("pulse tz status = %d, want %d", tokyoRes.Code, http.StatusOK)
	}

	badReq := httptest.NewRequest(http.MethodGet, "/v1/pulse/today?tz=Not/AZone", nil)
	badRes := httptest.NewRecorder()
	router.ServeHTTP(badRes, badReq)
	if badRes.Code != http.StatusBadRequest {
		t.Fatalf("pulse bad tz status = %d, want %d", badRes.Code, http.StatusBadRequest)
	}
}
