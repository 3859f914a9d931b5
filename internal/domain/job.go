package domain

import "time"

type JobStatus string

const (
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	// JobPartial means the wall-clock budget ran out; re-running continues.
	JobPartial JobStatus = "partial"
	JobFailed  JobStatus = "failed"
)

type JobKind string

const (
	JobKindChannel JobKind = "channel"
	JobKindSweep   JobKind = "sweep"
)

type ImportJob struct {
	ID                    string     `db:"id" json:"id"`
	Kind                  JobKind    `db:"kind" json:"kind"`
	ChannelHandle         *string    `db:"channel_handle" json:"channelHandle,omitempty"`
	Status                JobStatus  `db:"status" json:"status"`
	VideosTotal           int        `db:"videos_total" json:"videosTotal"`
	VideosProcessed       int        `db:"videos_processed" json:"videosProcessed"`
	TranscriptsDownloaded int        `db:"transcripts_downloaded" json:"transcriptsDownloaded"`
	CurrentVideoTitle     *string    `db:"current_video_title" json:"currentVideoTitle,omitempty"`
	Error                 *string    `db:"error" json:"error,omitempty"`
	StartedAt             time.Time  `db:"started_at" json:"startedAt"`
	FinishedAt            *time.Time `db:"finished_at" json:"finishedAt,omitempty"`
}

// JobProgress is the mutable part of an ImportJob.
type JobProgress struct {
	VideosTotal           int
	VideosProcessed       int
	TranscriptsDownloaded int
	CurrentVideoTitle     string
}

type LogAction string

const (
	ActionImported             LogAction = "imported"
	ActionTranscriptDownloaded LogAction = "transcript_downloaded"
	ActionTranscriptSkipped    LogAction = "transcript_skipped"
	ActionFailed               LogAction = "failed"
)

type ImportLog struct {
	ID         int64     `db:"id" json:"id"`
	JobID      string    `db:"job_id" json:"jobId"`
	ChannelID  *int64    `db:"channel_id" json:"channelId,omitempty"`
	ExternalID string    `db:"youtube_id" json:"youtubeId"`
	VideoTitle string    `db:"video_title" json:"videoTitle"`
	Action     LogAction `db:"action" json:"action"`
	Message    *string   `db:"message" json:"message,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// JobMetrics is the payload of job start and completion notifications.
type JobMetrics struct {
	JobID                 string        `json:"jobId"`
	Kind                  JobKind       `json:"kind"`
	Status                JobStatus     `json:"status"`
	ChannelsTouched       int           `json:"channelsTouched"`
	VideosImported        int           `json:"videosImported"`
	TranscriptsDownloaded int           `json:"transcriptsDownloaded"`
	Errors                int           `json:"errors"`
	Elapsed               time.Duration `json:"elapsed"`
}
