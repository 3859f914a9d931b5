package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"channel_importer/internal/domain"
)

type ReconcilerConfig struct {
	BatchSize int
	// Expiry is how long a transcript job may stay pending before it is
	// given up on.
	Expiry time.Duration
}

// TranscriptReconciler completes asynchronous transcript jobs: it polls the
// transcript service for pending jobs and stores the finished transcripts.
type TranscriptReconciler struct {
	pending TranscriptJobStore
	poller  TranscriptJobPoller
	videos  VideoStore
	search  SearchIndex
	writer  *transcriptWriter
	logger  *slog.Logger
	config  ReconcilerConfig
	now     func() time.Time
}

func NewTranscriptReconciler(
	pending TranscriptJobStore,
	poller TranscriptJobPoller,
	videos VideoStore,
	transcripts TranscriptStore,
	search SearchIndex,
	txManager TransactionManager,
	quality QualityPolicy,
	logger *slog.Logger,
	cfg ReconcilerConfig,
) *TranscriptReconciler {
	if quality == nil {
		quality = DefaultQualityPolicy()
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 50
	}
	if cfg.Expiry == 0 {
		cfg.Expiry = 24 * time.Hour
	}

	return &TranscriptReconciler{
		pending: pending,
		poller:  poller,
		videos:  videos,
		search:  search,
		writer: &transcriptWriter{
			txManager:   txManager,
			transcripts: transcripts,
			videos:      videos,
			quality:     quality,
		},
		logger: logger.With("component", "reconciler"),
		config: cfg,
		now:    time.Now,
	}
}

// Run processes one batch of pending jobs.
func (r *TranscriptReconciler) Run(ctx context.Context) error {
	jobs, err := r.pending.ListPending(ctx, r.config.BatchSize)
	if err != nil {
		return fmt.Errorf("list pending transcript jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	var touched []int64
	completed := 0
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		videoID, err := r.reconcile(ctx, job)
		if err != nil {
			r.logger.Warn("transcript job not reconciled",
				"job_id", job.JobID,
				"external_id", job.ExternalID,
				"error", err,
			)
			continue
		}
		if videoID != 0 {
			touched = append(touched, videoID)
			completed++
		}
	}

	if len(touched) > 0 {
		if err := r.search.Refresh(ctx, touched); err != nil {
			r.logger.Error("search index refresh failed", "videos", len(touched), "error", err)
		}
	}

	r.logger.Info("transcript jobs reconciled", "pending", len(jobs), "completed", completed)
	return nil
}

// reconcile returns the ID of the video whose transcript was written, or 0
// when the job is still pending or ended without a transcript.
func (r *TranscriptReconciler) reconcile(ctx context.Context, job domain.TranscriptJob) (int64, error) {
	if r.now().Sub(job.CreatedAt) > r.config.Expiry {
		return 0, r.pending.MarkFinished(ctx, job.ID, domain.TranscriptJobExpired, "job expired")
	}

	status, segments, err := r.poller.JobStatus(ctx, job.JobID)
	if err != nil {
		return 0, fmt.Errorf("poll job: %w", err)
	}

	switch status {
	case domain.TranscriptJobPending:
		return 0, nil
	case domain.TranscriptJobFailed:
		return 0, r.pending.MarkFinished(ctx, job.ID, domain.TranscriptJobFailed, "transcript generation failed")
	}

	if len(segments) == 0 {
		return 0, r.pending.MarkFinished(ctx, job.ID, domain.TranscriptJobFailed, "empty transcript")
	}

	video, err := r.videos.GetByExternalID(ctx, job.ExternalID)
	if err != nil {
		return 0, fmt.Errorf("get video: %w", err)
	}
	if video == nil {
		return 0, r.pending.MarkFinished(ctx, job.ID, domain.TranscriptJobFailed, "video not imported")
	}

	if err := r.writer.Replace(ctx, video.ID, segments); err != nil {
		return 0, err
	}

	if err := r.pending.MarkFinished(ctx, job.ID, domain.TranscriptJobCompleted, ""); err != nil {
		return video.ID, fmt.Errorf("mark job completed: %w", err)
	}
	return video.ID, nil
}
