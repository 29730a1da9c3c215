package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/export"
	"github.com/jayparimi/beyond-january/internal/sqlinline"
	"github.com/jayparimi/beyond-january/internal/storage"

	"github.com/google/uuid"
)

func TestExportFlowIntegration(t *testing.T) {
	ctx := context.Background()
	runner := newFakeSQLRunner()
	userID := uuid.NewString()
	runner.addUser(userID, "UTC")
	goalID := runner.addGoal(userID, "Evening stretch", "2026-01-01")
	runner.addCheckin(goalID, userID, "2026-01-02", "done", "felt great")
	runner.addCheckin(goalID, userID, "2026-01-03", "missed", "")

	app, router := newTestApp(runner)
	fileStore, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	app.Store = fileStore
	token := newToken(t, "test-secret", userID)

	createBody := `{"format":"csv","from":"2026-01-01","to":"2026-01-31"}`
	createReq := httptest.NewRequest(http.MethodPost, "/v1/exports", strings.NewReader(createBody))
	createReq.Header.Set("Content-Type", "application/json")
	createReq.Header.Set("Authorization", "Bearer "+token)
	createRes := httptest.NewRecorder()
	router.ServeHTTP(createRes, createReq)
	if createRes.Code != http.StatusAccepted {
		t.Fatalf("create export status = %d, want %d: %s", createRes.Code, http.StatusAccepted, createRes.Body.String())
	}
	var job exportJobResponseDTO
	if err := json.Unmarshal(createRes.Body.Bytes(), &job); err != nil {
		t.Fatalf("decode export job: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected job id in response")
	}
	if job.Status != "QUEUED" {
		t.Fatalf("job status = %s, want %s", job.Status, "QUEUED")
	}
	if job.Format != "csv" {
		t.Fatalf("job format = %s, want %s", job.Format, "csv")
	}

	statusReq := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID, nil)
	statusReq.Header.Set("Authorization", "Bearer "+token)
	statusRes := httptest.NewRecorder()
	router.ServeHTTP(statusRes, statusReq)
	if statusRes.Code != http.StatusOK {
		t.Fatalf("job status code = %d, want %d", statusRes.Code, http.StatusOK)
	}

	earlyDownload := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID+"/download", nil)
	earlyDownload.Header.Set("Authorization", "Bearer "+token)
	earlyRes := httptest.NewRecorder()
	router.ServeHTTP(earlyRes, earlyDownload)
	if earlyRes.Code != http.StatusNotFound {
		t.Fatalf("early download status = %d, want %d", earlyRes.Code, http.StatusNotFound)
	}
	var envelope errorResponseDTO
	if err := json.Unmarshal(earlyRes.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "not_ready" {
		t.Fatalf("early download code = %s, want %s", envelope.Error.Code, "not_ready")
	}

	otherToken := newToken(t, "test-secret", uuid.NewString())
	foreignReq := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID, nil)
	foreignReq.Header.Set("Authorization", "Bearer "+otherToken)
	foreignRes := httptest.NewRecorder()
	router.ServeHTTP(foreignRes, foreignReq)
	if foreignRes.Code != http.StatusNotFound {
		t.Fatalf("foreign job status = %d, want %d", foreignRes.Code, http.StatusNotFound)
	}

	// Simulate worker consumption for the queued job.
	claimRow := runner.QueryRow(ctx, sqlinline.QClaimExportJob)
	var (
		claimedID  string
		claimedFor string
		format     string
		fromDay    string
		toDay      string
		status     string
		storageKey string
		errMsg     string
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := claimRow.Scan(&claimedID, &claimedFor, &format, &fromDay, &toDay, &status, &storageKey, &errMsg, &createdAt, &updatedAt); err != nil {
		t.Fatalf("claim job scan: %v", err)
	}
	if claimedID != job.ID {
		t.Fatalf("claimed job = %s, want %s", claimedID, job.ID)
	}
	if status != "RUNNING" {
		t.Fatalf("claimed status = %s, want %s", status, "RUNNING")
	}

	goals := []domain.Goal{{ID: goalID, UserID: userID, Title: "Evening stretch", StartDay: "2026-01-01", Status: domain.GoalStatusActive}}
	checkins := []domain.CheckIn{
		{GoalID: goalID, UserID: userID, Day: "2026-01-02", Status: domain.CheckinDone, Note: "felt great"},
		{GoalID: goalID, UserID: userID, Day: "2026-01-03", Status: domain.CheckinMissed},
	}
	content, err := export.RenderCSV(goals, checkins)
	if err != nil {
		t.Fatalf("render csv: %v", err)
	}
	key := fmt.Sprintf("exports/%s.csv", job.ID)
	if _, err := fileStore.Write(ctx, key, content); err != nil {
		t.Fatalf("write export file: %v", err)
	}
	if _, err := runner.Exec(ctx, sqlinline.QFinishExportJob, job.ID, "SUCCEEDED", key, ""); err != nil {
		t.Fatalf("finish job: %v", err)
	}

	stored := runner.getJob(job.ID)
	if stored == nil {
		t.Fatalf("job not found in runner state")
	}
	if stored.Status != "SUCCEEDED" {
		t.Fatalf("stored status = %s, want %s", stored.Status, "SUCCEEDED")
	}

	download := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID+"/download", nil)
	download.Header.Set("Authorization", "Bearer "+token)
	downloadRes := httptest.NewRecorder()
	router.ServeHTTP(downloadRes, download)
	if downloadRes.Code != http.StatusOK {
		t.Fatalf("download status = %d, want %d: %s", downloadRes.Code, http.StatusOK, downloadRes.Body.String())
	}
	if ct := downloadRes.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("download content type = %s, want text/csv", ct)
	}
	if cd := downloadRes.Header().Get("Content-Disposition"); !strings.Contains(cd, job.ID) {
		t.Fatalf("content disposition = %q, want filename with job id", cd)
	}
	if downloadRes.Body.String() != string(content) {
		t.Fatalf("download body = %q, want rendered csv", downloadRes.Body.String())
	}
	if !strings.Contains(downloadRes.Body.String(), "Evening stretch") {
		t.Fatalf("csv body missing goal title: %q", downloadRes.Body.String())
	}
}

func TestExportCreateValidation(t *testing.T) {
	runner := newFakeSQLRunner()
	userID := uuid.NewString()
	runner.addUser(userID, "UTC")

	_, router := newTestApp(runner)
	token := newToken(t, "test-secret", userID)

	cases := []struct {
		name string
		body string
	}{
		{"unknown format", `{"format":"xlsx"}`},
		{"bad from day", `{"format":"csv","from":"January 1"}`},
		{"inverted range", `{"format":"csv","from":"2026-02-01","to":"2026-01-01"}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/exports", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		if res.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want %d", tc.name, res.Code, http.StatusBadRequest)
		}
	}
}

type exportJobResponseDTO struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Status string `json:"status"`
	From   string `json:"from"`
	To     string `json:"to"`
}
