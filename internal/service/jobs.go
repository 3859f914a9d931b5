package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"channel_importer/internal/domain"
	"channel_importer/internal/progress"
)

type JobRunnerConfig struct {
	// Budget is the wall-clock limit of a sweep.
	Budget           time.Duration
	VideosPerChannel int
}

// JobRunner runs imports in the background and records them as jobs.
type JobRunner struct {
	importer ChannelImporter
	channels ChannelStore
	jobs     JobStore
	notifier Notifier
	logger   *slog.Logger
	config   JobRunnerConfig
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewJobRunner(
	importer ChannelImporter,
	channels ChannelStore,
	jobs JobStore,
	notifier Notifier,
	logger *slog.Logger,
	cfg JobRunnerConfig,
) *JobRunner {
	return &JobRunner{
		importer: importer,
		channels: channels,
		jobs:     jobs,
		notifier: notifier,
		logger:   logger.With("component", "jobs"),
		config:   cfg,
		now:      time.Now,
	}
}

// StartChannel creates a job for req and runs the import in the background.
// The import outlives ctx; it is bound only by req.Deadline.
func (r *JobRunner) StartChannel(ctx context.Context, req domain.ImportRequest) (string, error) {
	handle := req.Handle
	job := &domain.ImportJob{
		ID:            uuid.NewString(),
		Kind:          domain.JobKindChannel,
		ChannelHandle: &handle,
		Status:        domain.JobRunning,
		StartedAt:     r.now().UTC(),
	}

	if err := r.jobs.Create(ctx, job); err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}

	bgCtx := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.runChannel(bgCtx, job, req)
	}()

	return job.ID, nil
}

func (r *JobRunner) runChannel(ctx context.Context, job *domain.ImportJob, req domain.ImportRequest) {
	logger := r.logger.With("job_id", job.ID, "handle", req.Handle)
	start := r.now()

	m := domain.JobMetrics{JobID: job.ID, Kind: job.Kind, Status: domain.JobRunning}
	r.notify(ctx, logger, r.notifier.JobStarted, m)

	sink := progress.Multi(progress.NewJobSink(r.jobs, job.ID), progress.NewLogSink(logger))
	result, err := r.importer.Import(ctx, req, sink)

	m.Elapsed = r.now().Sub(start)
	m.Status = domain.JobCompleted
	errMsg := ""
	switch {
	case err != nil:
		m.Status = domain.JobFailed
		m.Errors++
		errMsg = err.Error()
	case result.Partial:
		m.Status = domain.JobPartial
	}
	if result != nil {
		m.ChannelsTouched = 1
		m.VideosImported = result.VideosImported
		m.TranscriptsDownloaded = result.TranscriptsDownloaded
		m.Errors += result.Errors
	}

	if ferr := r.jobs.Finish(ctx, job.ID, m.Status, errMsg); ferr != nil {
		logger.Error("failed to finish job", "error", ferr)
	}
	r.notify(ctx, logger, r.notifier.JobCompleted, m)
}

// Sweep imports every active channel within the configured budget and
// returns aggregated metrics. Channels not reached before the budget runs
// out are picked up by the next sweep.
func (r *JobRunner) Sweep(ctx context.Context) (*domain.JobMetrics, error) {
	start := r.now()
	deadline := start.Add(r.config.Budget)

	job := &domain.ImportJob{
		ID:        uuid.NewString(),
		Kind:      domain.JobKindSweep,
		Status:    domain.JobRunning,
		StartedAt: start.UTC(),
	}
	if err := r.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	logger := r.logger.With("job_id", job.ID)
	m := &domain.JobMetrics{JobID: job.ID, Kind: job.Kind, Status: domain.JobRunning}
	r.notify(ctx, logger, r.notifier.JobStarted, *m)

	err := r.sweep(ctx, job.ID, deadline, m, logger)

	m.Elapsed = r.now().Sub(start)
	errMsg := ""
	if err != nil {
		m.Status = domain.JobFailed
		errMsg = err.Error()
	}

	if ferr := r.jobs.Finish(ctx, job.ID, m.Status, errMsg); ferr != nil {
		logger.Error("failed to finish job", "error", ferr)
	}
	r.notify(ctx, logger, r.notifier.JobCompleted, *m)

	logger.Info("sweep finished",
		"status", m.Status,
		"channels", m.ChannelsTouched,
		"imported", m.VideosImported,
		"transcripts", m.TranscriptsDownloaded,
		"errors", m.Errors,
		"elapsed", m.Elapsed,
	)

	return m, err
}

func (r *JobRunner) sweep(ctx context.Context, jobID string, deadline time.Time, m *domain.JobMetrics, logger *slog.Logger) error {
	channels, err := r.channels.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active channels: %w", err)
	}

	sink := progress.Multi(progress.NewJobSink(r.jobs, jobID), progress.NewLogSink(logger))
	m.Status = domain.JobCompleted

	for _, ch := range channels {
		if !r.now().Before(deadline) {
			m.Status = domain.JobPartial
			logger.Info("sweep budget exhausted", "remaining_from", ch.SourceHandle)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		handle := ch.SourceHandle
		if handle == "" {
			handle = ch.SourceChannelID
		}

		result, err := r.importer.Import(ctx, domain.ImportRequest{
			Handle:   handle,
			TenantID: ch.TenantID,
			Limit:    r.config.VideosPerChannel,
			Deadline: deadline,
		}, sink)
		if err != nil {
			if errors.Is(err, domain.ErrLocked) {
				logger.Info("channel import already running, skipping", "handle", handle)
				continue
			}
			m.Errors++
			logger.Warn("channel import failed", "handle", handle, "error", err)
			continue
		}

		m.ChannelsTouched++
		m.VideosImported += result.VideosImported
		m.TranscriptsDownloaded += result.TranscriptsDownloaded
		m.Errors += result.Errors

		if result.Partial {
			m.Status = domain.JobPartial
			return nil
		}
	}

	return nil
}

// Run implements scheduler.Runner.
func (r *JobRunner) Run(ctx context.Context) error {
	_, err := r.Sweep(ctx)
	return err
}

// Wait blocks until all background imports have finished.
func (r *JobRunner) Wait() {
	r.wg.Wait()
}

func (r *JobRunner) notify(ctx context.Context, logger *slog.Logger, fn func(context.Context, domain.JobMetrics) error, m domain.JobMetrics) {
	if err := fn(ctx, m); err != nil {
		logger.Warn("job notification failed", "status", m.Status, "error", err)
	}
}
