package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jayparimi/beyond-january/internal/adapter/repo"
	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/export"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/metrics"
	"github.com/jayparimi/beyond-january/internal/storage"
	"github.com/jayparimi/beyond-january/pkg/zip"
)

type exportWorker struct {
	ctx          context.Context
	logger       infra.Logger
	exports      domain.ExportRepository
	goals        domain.GoalRepository
	checkins     domain.CheckinRepository
	analytics    domain.AnalyticsRepository
	store        *storage.FileStore
	pollInterval time.Duration
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	storagePath := cfg.StoragePath
	if !filepath.IsAbs(storagePath) {
		if abs, err := filepath.Abs(storagePath); err == nil {
			storagePath = abs
		}
	}
	fileStore, err := storage.NewFileStore(storagePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to configure storage")
	}

	worker := &exportWorker{
		ctx:          ctx,
		logger:       logger,
		exports:      repo.NewExportRepository(runner),
		goals:        repo.NewGoalRepository(runner),
		checkins:     repo.NewCheckinRepository(runner),
		analytics:    repo.NewAnalyticsRepository(runner),
		store:        fileStore,
		pollInterval: cfg.WorkerPollInterval,
	}

	go worker.RunRollups(cfg.RollupInterval)

	if err := worker.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

// Run drains the export queue, sleeping between polls when it is empty.
func (w *exportWorker) Run() error {
	w.logger.Info().Msg("worker: started")
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		job, err := w.exports.ClaimNext(w.ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("worker: failed to claim job")
			w.sleep()
			continue
		}
		if job == nil {
			w.sleep()
			continue
		}

		w.handleJob(job)
	}
}

func (w *exportWorker) sleep() {
	select {
	case <-w.ctx.Done():
	case <-time.After(w.pollInterval):
	}
}

func (w *exportWorker) handleJob(job *domain.ExportJob) {
	w.logger.Info().Str("job_id", job.ID).Str("format", string(job.Format)).Msg("worker: picked job")

	key, err := w.render(job)
	outcome := string(domain.ExportStatusSucceeded)
	if err != nil {
		outcome = string(domain.ExportStatusFailed)
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: job failed")
		if finishErr := w.exports.Finish(w.ctx, job.ID, domain.ExportStatusFailed, "", err.Error()); finishErr != nil {
			w.logger.Error().Err(finishErr).Str("job_id", job.ID).Msg("worker: finish failed")
		}
	} else {
		if finishErr := w.exports.Finish(w.ctx, job.ID, domain.ExportStatusSucceeded, key, ""); finishErr != nil {
			w.logger.Error().Err(finishErr).Str("job_id", job.ID).Msg("worker: finish failed")
		}
	}
	metrics.ExportJobsFinished.WithLabelValues(outcome).Inc()
}

// render produces the export artifact and returns its storage key. Goals of
// every status are included so archived history still exports.
func (w *exportWorker) render(job *domain.ExportJob) (string, error) {
	goals, err := w.goals.ListByUser(w.ctx, job.UserID, "")
	if err != nil {
		return "", fmt.Errorf("list goals: %w", err)
	}
	checkins, err := w.checkins.ListRange(w.ctx, job.UserID, job.FromDay, job.ToDay)
	if err != nil {
		return "", fmt.Errorf("list checkins: %w", err)
	}

	var data []byte
	switch job.Format {
	case domain.ExportFormatCSV:
		data, err = export.RenderCSV(goals, checkins)
	case domain.ExportFormatZip:
		var files []export.File
		files, err = export.RenderPerGoal(goals, checkins)
		if err == nil {
			entries := make([]zip.Entry, 0, len(files))
			for _, f := range files {
				entries = append(entries, zip.Entry{Name: f.Name, Data: f.Data})
			}
			data, err = zip.Archive(entries)
		}
	default:
		return "", fmt.Errorf("unsupported export format %q", job.Format)
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", job.Format, err)
	}

	key := fmt.Sprintf("exports/%s.%s", job.ID, job.Format)
	if _, err := w.store.Write(w.ctx, key, data); err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}
	return key, nil
}

// RunRollups recomputes the daily analytics counters on a fixed interval.
// Today and yesterday are refreshed each pass so late check-ins near midnight
// still land in the right bucket.
func (w *exportWorker) RunRollups(interval time.Duration) {
	w.recomputeRecent()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.recomputeRecent()
		}
	}
}

func (w *exportWorker) recomputeRecent() {
	now := time.Now().UTC()
	for _, day := range []string{domain.FormatDay(now), domain.FormatDay(now.AddDate(0, 0, -1))} {
		if _, err := w.analytics.RecomputeDay(w.ctx, day); err != nil {
			w.logger.Error().Err(err).Str("day", day).Msg("worker: rollup failed")
		}
	}
	metrics.RollupRuns.Inc()
}
