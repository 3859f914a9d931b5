package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

// TranscriptJobStore persists asynchronous transcript jobs.
type TranscriptJobStore struct {
	db *sqlx.DB
}

// NewTranscriptJobStore creates a new transcript job store.
func NewTranscriptJobStore(db *sqlx.DB) *TranscriptJobStore {
	return &TranscriptJobStore{db: db}
}

// SavePending records an asynchronous transcript job. Saving the same job
// twice is a no-op.
func (s *TranscriptJobStore) SavePending(ctx context.Context, externalID, jobID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO transcript_jobs (youtube_id, job_id, status)
		VALUES ($1, $2, 'pending')
		ON CONFLICT (job_id) DO NOTHING`,
		externalID, jobID,
	)
	return err
}

func (s *TranscriptJobStore) ListPending(ctx context.Context, limit int) ([]domain.TranscriptJob, error) {
	query := `
		SELECT id, youtube_id, job_id, status, error, created_at, updated_at
		FROM transcript_jobs
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1`

	var jobs []domain.TranscriptJob
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &jobs, query, limit)
	return jobs, err
}

func (s *TranscriptJobStore) MarkFinished(ctx context.Context, id int64, status domain.TranscriptJobStatus, errMsg string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE transcript_jobs
		SET status = $2, error = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $1`,
		id, status, errMsg,
	)
	return err
}
