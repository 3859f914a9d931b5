package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

// JobStore persists import jobs and their logs.
type JobStore struct {
	db *sqlx.DB
}

// NewJobStore creates a new job store.
func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, job *domain.ImportJob) error {
	query := `
		INSERT INTO import_jobs (id, kind, channel_handle, status, started_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		job.ID,
		job.Kind,
		job.ChannelHandle,
		job.Status,
		job.StartedAt,
	)
	return err
}

func (s *JobStore) UpdateProgress(ctx context.Context, id string, progress domain.JobProgress) error {
	query := `
		UPDATE import_jobs SET
			videos_total = $2,
			videos_processed = $3,
			transcripts_downloaded = $4,
			current_video_title = NULLIF($5, '')
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		id,
		progress.VideosTotal,
		progress.VideosProcessed,
		progress.TranscriptsDownloaded,
		progress.CurrentVideoTitle,
	)
	return err
}

func (s *JobStore) Finish(ctx context.Context, id string, status domain.JobStatus, errMsg string) error {
	query := `
		UPDATE import_jobs SET
			status = $2,
			error = NULLIF($3, ''),
			current_video_title = NULL,
			finished_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, status, errMsg)
	return err
}

func (s *JobStore) Get(ctx context.Context, id string) (*domain.ImportJob, error) {
	query := `
		SELECT id, kind, channel_handle, status, videos_total, videos_processed,
		       transcripts_downloaded, current_video_title, error, started_at, finished_at
		FROM import_jobs
		WHERE id = $1`

	var job domain.ImportJob
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) AppendLog(ctx context.Context, entry *domain.ImportLog) error {
	query := `
		INSERT INTO import_logs (job_id, channel_id, youtube_id, video_title, action, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.JobID,
		entry.ChannelID,
		entry.ExternalID,
		entry.VideoTitle,
		entry.Action,
		entry.Message,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// ListLogs returns the most recent log entries of a job, newest first.
func (s *JobStore) ListLogs(ctx context.Context, jobID string, limit int) ([]domain.ImportLog, error) {
	query := `
		SELECT id, job_id, channel_id, youtube_id, video_title, action, message, created_at
		FROM import_logs
		WHERE job_id = $1
		ORDER BY id DESC
		LIMIT $2`

	var logs []domain.ImportLog
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &logs, query, jobID, limit)
	return logs, err
}
