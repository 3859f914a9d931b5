package domain

import (
	"strings"
	"time"
)

// MaxHandleLength is the longest label a DNS subdomain allows.
const MaxHandleLength = 63

type Channel struct {
	ID               int64      `db:"id" json:"id"`
	TenantID         *int64     `db:"tenant_id" json:"tenantId,omitempty"`
	LocalHandle      string     `db:"handle" json:"handle"`
	SourceHandle     string     `db:"youtube_handle" json:"youtubeHandle"`
	SourceChannelID  string     `db:"youtube_channel_id" json:"youtubeChannelId"`
	Name             string     `db:"name" json:"name"`
	Description      string     `db:"description" json:"description"`
	ThumbnailURL     string     `db:"thumbnail_url" json:"thumbnailUrl"`
	BannerURL        string     `db:"banner_url" json:"bannerUrl"`
	SubscriberCount  int64      `db:"subscriber_count" json:"subscriberCount"`
	VideoCount       int64      `db:"video_count" json:"videoCount"`
	IsActive         bool       `db:"is_active" json:"isActive"`
	IsMusicChannel   bool       `db:"is_music_channel" json:"isMusicChannel"`
	SubscriptionTier string     `db:"subscription_tier" json:"subscriptionTier"`
	LastSyncedAt     *time.Time `db:"last_synced_at" json:"lastSyncedAt,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// ChannelUpdate is the metadata refreshed on every re-import. Name is only
// set when the stored name is empty.
type ChannelUpdate struct {
	Name            *string
	Description     string
	ThumbnailURL    string
	BannerURL       string
	SubscriberCount int64
	VideoCount      int64
	LastSyncedAt    time.Time
}

// SourceChannel is a channel as resolved on the video source.
type SourceChannel struct {
	ChannelID         string
	Handle            string
	Name              string
	Description       string
	ThumbnailURL      string
	BannerURL         string
	SubscriberCount   int64
	VideoCount        int64
	UploadsPlaylistID string
}

type Tenant struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Domain string `db:"domain" json:"domain"`
}

// SanitizeHandle turns a source handle such as "@Grace Church!" into a
// subdomain-safe label ("grace-church").
func SanitizeHandle(handle string) string {
	h := strings.ToLower(strings.TrimSpace(handle))
	h = strings.TrimPrefix(h, "@")

	var sb strings.Builder
	dash := false
	for _, r := range h {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}

	out := strings.Trim(sb.String(), "-")
	if len(out) > MaxHandleLength {
		out = strings.TrimRight(out[:MaxHandleLength], "-")
	}
	return out
}
