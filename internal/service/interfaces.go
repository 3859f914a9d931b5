package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"channel_importer/internal/domain"
)

type ChannelStore interface {
	// FindByIdentity returns the channel matching any of the three identities,
	// or nil when none does.
	FindByIdentity(ctx context.Context, localHandle, sourceHandle, sourceChannelID string) (*domain.Channel, error)
	Create(ctx context.Context, channel *domain.Channel) (int64, error)
	UpdateMetadata(ctx context.Context, id int64, update domain.ChannelUpdate) error
	ListActive(ctx context.Context) ([]domain.Channel, error)
}

type VideoStore interface {
	ListPage(ctx context.Context, channelID int64, offset, limit int) ([]domain.ExistingVideo, error)
	Insert(ctx context.Context, video *domain.Video) (int64, error)
	SetTranscriptFlags(ctx context.Context, videoID int64, hasTranscript, quality bool) error
	// GetByExternalID returns the earliest imported copy of a video, or nil
	// when it has not been imported.
	GetByExternalID(ctx context.Context, externalID string) (*domain.Video, error)
}

type TranscriptStore interface {
	DeleteByVideo(ctx context.Context, videoID int64) error
	InsertBatch(ctx context.Context, videoID int64, segments []domain.Segment) error
	CountByVideo(ctx context.Context, videoID int64) (int, error)
}

type SearchIndex interface {
	Refresh(ctx context.Context, videoIDs []int64) error
}

type JobStore interface {
	Create(ctx context.Context, job *domain.ImportJob) error
	UpdateProgress(ctx context.Context, id string, progress domain.JobProgress) error
	Finish(ctx context.Context, id string, status domain.JobStatus, errMsg string) error
	Get(ctx context.Context, id string) (*domain.ImportJob, error)
	AppendLog(ctx context.Context, entry *domain.ImportLog) error
	ListLogs(ctx context.Context, jobID string, limit int) ([]domain.ImportLog, error)
}

type TranscriptJobStore interface {
	ListPending(ctx context.Context, limit int) ([]domain.TranscriptJob, error)
	MarkFinished(ctx context.Context, id int64, status domain.TranscriptJobStatus, errMsg string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type VideoSource interface {
	ResolveChannel(ctx context.Context, handle string) (*domain.SourceChannel, error)
	ListVideos(ctx context.Context, channel *domain.SourceChannel, limit int) ([]domain.SourceVideo, error)
	ListLiveVideos(ctx context.Context, channel *domain.SourceChannel, limit int) ([]domain.SourceVideo, error)
}

type TranscriptFetcher interface {
	// FetchTranscript returns nil segments when no transcript is available
	// yet, including when an asynchronous job was queued.
	FetchTranscript(ctx context.Context, externalID string, mode domain.TranscriptMode) ([]domain.Segment, error)
}

type TranscriptJobPoller interface {
	// JobStatus returns the job status and, once completed, its segments.
	JobStatus(ctx context.Context, jobID string) (domain.TranscriptJobStatus, []domain.Segment, error)
}

type AssetMirror interface {
	// Mirror returns the hosted URL, or remoteURL when mirroring failed.
	Mirror(ctx context.Context, key, remoteURL string, force bool) string
}

type EmbeddingQueue interface {
	Enqueue(ctx context.Context, videoID int64) error
}

type QualityPolicy interface {
	IsQuality(segments []domain.Segment) bool
}

type ChannelLock interface {
	// Acquire returns a release func, or domain.ErrLocked when another run
	// holds the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

type Notifier interface {
	JobStarted(ctx context.Context, metrics domain.JobMetrics) error
	JobCompleted(ctx context.Context, metrics domain.JobMetrics) error
}
