package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

// TranscriptStore persists transcript segments.
type TranscriptStore struct {
	db *sqlx.DB
}

// NewTranscriptStore creates a new transcript store.
func NewTranscriptStore(db *sqlx.DB) *TranscriptStore {
	return &TranscriptStore{db: db}
}

func (s *TranscriptStore) DeleteByVideo(ctx context.Context, videoID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM transcripts WHERE video_id = $1",
		videoID,
	)
	return err
}

// InsertBatch writes all segments in a single multi-row insert.
func (s *TranscriptStore) InsertBatch(ctx context.Context, videoID int64, segments []domain.Segment) error {
	if len(segments) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO transcripts (video_id, text, start_time, duration) VALUES ")
	args := make([]any, 0, len(segments)*3+1)
	args = append(args, videoID)

	for i, seg := range segments {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i*3 + 2
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(base))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 2))
		sb.WriteString(")")
		args = append(args, seg.Text, seg.Start, seg.Duration)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *TranscriptStore) CountByVideo(ctx context.Context, videoID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM transcripts WHERE video_id = $1",
		videoID,
	)
	return count, err
}

// ListByVideo returns the segments of a video in playback order.
func (s *TranscriptStore) ListByVideo(ctx context.Context, videoID int64) ([]domain.Segment, error) {
	var segments []domain.Segment
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &segments,
		"SELECT text, start_time, duration FROM transcripts WHERE video_id = $1 ORDER BY start_time, id",
		videoID,
	)
	return segments, err
}
