package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

// VideoStore persists videos.
type VideoStore struct {
	db *sqlx.DB
}

// NewVideoStore creates a new video store.
func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) ListPage(ctx context.Context, channelID int64, offset, limit int) ([]domain.ExistingVideo, error) {
	query := `
		SELECT id, youtube_id, has_transcript, published_at
		FROM videos
		WHERE channel_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	var videos []domain.ExistingVideo
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &videos, query, channelID, limit, offset)
	return videos, err
}

func (s *VideoStore) Insert(ctx context.Context, video *domain.Video) (int64, error) {
	query := `
		INSERT INTO videos (
			channel_id, youtube_id, title, description, thumbnail_url, duration,
			published_at, view_count, like_count, comment_count, is_live,
			has_transcript, has_quality_transcript
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		video.ChannelID,
		video.ExternalID,
		video.Title,
		video.Description,
		video.ThumbnailURL,
		video.DurationSeconds,
		video.PublishedAt,
		video.ViewCount,
		video.LikeCount,
		video.CommentCount,
		video.IsLive,
		video.HasTranscript,
		video.HasQualityTranscript,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *VideoStore) SetTranscriptFlags(ctx context.Context, videoID int64, hasTranscript, quality bool) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE videos SET has_transcript = $2, has_quality_transcript = $3, updated_at = NOW() WHERE id = $1`,
		videoID, hasTranscript, quality,
	)
	return err
}

// GetByExternalID returns the oldest row for externalID. The same external
// video may be imported under more than one channel.
func (s *VideoStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Video, error) {
	query := `
		SELECT id, channel_id, youtube_id, title, description, thumbnail_url, duration,
		       published_at, view_count, like_count, comment_count, is_live,
		       has_transcript, has_quality_transcript
		FROM videos
		WHERE youtube_id = $1
		ORDER BY id
		LIMIT 1`

	var video domain.Video
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
