package domain

import "time"

type Video struct {
	ID                   int64      `db:"id" json:"id"`
	ChannelID            int64      `db:"channel_id" json:"channelId"`
	ExternalID           string     `db:"youtube_id" json:"youtubeId"`
	Title                string     `db:"title" json:"title"`
	Description          string     `db:"description" json:"description"`
	ThumbnailURL         string     `db:"thumbnail_url" json:"thumbnailUrl"`
	DurationSeconds      int        `db:"duration" json:"duration"`
	PublishedAt          *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	ViewCount            int64      `db:"view_count" json:"viewCount"`
	LikeCount            int64      `db:"like_count" json:"likeCount"`
	CommentCount         int64      `db:"comment_count" json:"commentCount"`
	IsLive               bool       `db:"is_live" json:"isLive"`
	HasTranscript        bool       `db:"has_transcript" json:"hasTranscript"`
	HasQualityTranscript bool       `db:"has_quality_transcript" json:"hasQualityTranscript"`
}

// SourceVideo is the lightweight listing record returned by the video source.
// Published is the raw source string: either relative ("3 days ago") or an
// absolute date.
type SourceVideo struct {
	ExternalID      string
	Title           string
	Description     string
	ThumbnailURL    string
	DurationSeconds int
	Published       string
	ViewCount       int64
	LikeCount       int64
	CommentCount    int64
	IsLive          bool
}

// ExistingVideo is what the prober needs to know about an already imported video.
type ExistingVideo struct {
	ID            int64      `db:"id"`
	ExternalID    string     `db:"youtube_id"`
	HasTranscript bool       `db:"has_transcript"`
	PublishedAt   *time.Time `db:"published_at"`
}

// Segment is one timed line of a transcript. Start and Duration are seconds.
type Segment struct {
	Text     string  `db:"text" json:"text"`
	Start    float64 `db:"start_time" json:"start"`
	Duration float64 `db:"duration" json:"duration"`
}

type TranscriptMode string

const (
	// TranscriptNative only accepts existing captions and never falls back.
	TranscriptNative TranscriptMode = "native"
	// TranscriptAuto tries captions first and then machine generation.
	TranscriptAuto TranscriptMode = "auto"
)

type TranscriptJobStatus string

const (
	TranscriptJobPending   TranscriptJobStatus = "pending"
	TranscriptJobCompleted TranscriptJobStatus = "completed"
	TranscriptJobFailed    TranscriptJobStatus = "failed"
	TranscriptJobExpired   TranscriptJobStatus = "expired"
)

// TranscriptJob is an asynchronous transcript generation request that the
// transcript service has not finished yet.
type TranscriptJob struct {
	ID         int64               `db:"id"`
	ExternalID string              `db:"youtube_id"`
	JobID      string              `db:"job_id"`
	Status     TranscriptJobStatus `db:"status"`
	Error      *string             `db:"error"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}
