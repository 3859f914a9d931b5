package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

const channelColumns = `
	id, tenant_id, handle, youtube_handle, youtube_channel_id, name, description,
	thumbnail_url, banner_url, subscriber_count, video_count, is_active,
	is_music_channel, subscription_tier, last_synced_at, created_at, updated_at`

// ChannelStore persists channels.
type ChannelStore struct {
	db *sqlx.DB
}

// NewChannelStore creates a new channel store.
func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// FindByIdentity matches on the local handle, the source handle or the
// source channel ID. A channel ID match wins over handle matches.
func (s *ChannelStore) FindByIdentity(ctx context.Context, localHandle, sourceHandle, sourceChannelID string) (*domain.Channel, error) {
	query := `
		SELECT` + channelColumns + `
		FROM channels
		WHERE handle = $1
		   OR (youtube_handle <> '' AND youtube_handle = $2)
		   OR youtube_channel_id = $3
		ORDER BY (youtube_channel_id = $3) DESC, id
		LIMIT 1`

	var channel domain.Channel
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &channel, query, localHandle, sourceHandle, sourceChannelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (s *ChannelStore) Create(ctx context.Context, channel *domain.Channel) (int64, error) {
	query := `
		INSERT INTO channels (
			tenant_id, handle, youtube_handle, youtube_channel_id, name, description,
			thumbnail_url, banner_url, subscriber_count, video_count, is_active,
			is_music_channel, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		channel.TenantID,
		channel.LocalHandle,
		channel.SourceHandle,
		channel.SourceChannelID,
		channel.Name,
		channel.Description,
		channel.ThumbnailURL,
		channel.BannerURL,
		channel.SubscriberCount,
		channel.VideoCount,
		channel.IsActive,
		channel.IsMusicChannel,
		channel.LastSyncedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ChannelStore) UpdateMetadata(ctx context.Context, id int64, update domain.ChannelUpdate) error {
	query := `
		UPDATE channels SET
			name = COALESCE($2, name),
			description = $3,
			thumbnail_url = $4,
			banner_url = $5,
			subscriber_count = $6,
			video_count = $7,
			last_synced_at = $8,
			updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		id,
		update.Name,
		update.Description,
		update.ThumbnailURL,
		update.BannerURL,
		update.SubscriberCount,
		update.VideoCount,
		update.LastSyncedAt,
	)
	return err
}

func (s *ChannelStore) ListActive(ctx context.Context) ([]domain.Channel, error) {
	query := `
		SELECT` + channelColumns + `
		FROM channels
		WHERE is_active
		ORDER BY last_synced_at ASC NULLS FIRST, id`

	var channels []domain.Channel
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels, query)
	return channels, err
}
