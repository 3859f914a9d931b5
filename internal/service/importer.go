package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"channel_importer/internal/domain"
	"channel_importer/internal/metrics"
	"channel_importer/internal/reltime"
)

const searchRefreshTimeout = time.Minute

type ImporterConfig struct {
	DefaultLimit int
	ListLimit    int
	LockTTL      time.Duration
}

// ImporterDeps are the collaborators of an Importer. Embeddings and Lock may
// be nil.
type ImporterDeps struct {
	Source      VideoSource
	Channels    ChannelStore
	Videos      VideoStore
	Transcripts TranscriptStore
	Search      SearchIndex
	TxManager   TransactionManager
	Fetcher     TranscriptFetcher
	Mirror      AssetMirror
	Embeddings  EmbeddingQueue
	Quality     QualityPolicy
	Lock        ChannelLock
}

// Importer imports one channel per call: it refreshes the channel row, inserts
// new videos, backfills missing transcripts and refreshes the search index
// for every video it wrote a transcript for. Videos are processed strictly
// sequentially.
type Importer struct {
	source     VideoSource
	channels   ChannelStore
	videos     VideoStore
	search     SearchIndex
	fetcher    TranscriptFetcher
	mirror     AssetMirror
	embeddings EmbeddingQueue
	lock       ChannelLock
	writer     *transcriptWriter
	logger     *slog.Logger
	config     ImporterConfig
	now        func() time.Time
}

func NewImporter(deps ImporterDeps, logger *slog.Logger, cfg ImporterConfig) *Importer {
	quality := deps.Quality
	if quality == nil {
		quality = DefaultQualityPolicy()
	}
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = 50
	}
	if cfg.ListLimit == 0 {
		cfg.ListLimit = 10000
	}

	return &Importer{
		source:     deps.Source,
		channels:   deps.Channels,
		videos:     deps.Videos,
		search:     deps.Search,
		fetcher:    deps.Fetcher,
		mirror:     deps.Mirror,
		embeddings: deps.Embeddings,
		lock:       deps.Lock,
		writer: &transcriptWriter{
			txManager:   deps.TxManager,
			transcripts: deps.Transcripts,
			videos:      deps.Videos,
			quality:     quality,
		},
		logger: logger.With("component", "importer"),
		config: cfg,
		now:    time.Now,
	}
}

type videoOutcome struct {
	videoID    int64
	imported   bool
	transcript bool
	action     domain.LogAction
	stage      string
	err        error
}

// Import runs one import and reports progress to sink. Only failures to
// resolve, list or persist the channel itself are returned as errors;
// per-video failures are counted in the result.
func (s *Importer) Import(ctx context.Context, req domain.ImportRequest, sink Sink) (*domain.ImportResult, error) {
	if sink == nil {
		sink = nopSink{}
	}
	startTime := s.now()
	req.Limit = domain.ClampLimit(req.Limit, s.config.DefaultLimit)
	logger := s.logger.With("handle", req.Handle)

	logger.Info("starting import",
		"limit", req.Limit,
		"include_live", req.IncludeLive,
		"skip_transcripts", req.SkipTranscripts,
		"transcripts_only", req.TranscriptsOnly,
	)

	result, err := s.run(ctx, req, sink, logger)
	if err != nil {
		logger.Error("import failed", "error", err)
		s.emit(ctx, sink, domain.ErrorEvent(err))
		return result, err
	}

	result.Duration = s.now().Sub(startTime)

	s.emit(ctx, sink, domain.Event{
		Type:                  domain.EventComplete,
		Channel:               result.Channel,
		VideosProcessed:       result.VideosProcessed,
		TranscriptsDownloaded: result.TranscriptsDownloaded,
	})

	logger.Info("import completed",
		"imported", result.VideosImported,
		"processed", result.VideosProcessed,
		"transcripts", result.TranscriptsDownloaded,
		"skipped", result.AlreadyComplete,
		"errors", result.Errors,
		"partial", result.Partial,
		"duration", result.Duration,
	)

	return result, nil
}

func (s *Importer) run(ctx context.Context, req domain.ImportRequest, sink Sink, logger *slog.Logger) (*domain.ImportResult, error) {
	handle := strings.TrimSpace(req.Handle)
	if handle == "" {
		return nil, errors.New("handle is required")
	}

	if s.lock != nil {
		release, err := s.lock.Acquire(ctx, "import:"+domain.SanitizeHandle(handle), s.config.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire channel lock: %w", err)
		}
		defer release()
	}

	s.emit(ctx, sink, domain.StatusEvent("Resolving channel "+handle))

	src, err := s.source.ResolveChannel(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("resolve channel %s: %w", handle, err)
	}

	channel, err := s.upsertChannel(ctx, req, src, logger)
	if err != nil {
		return nil, err
	}
	result := &domain.ImportResult{Channel: channel}
	logger = logger.With("channel_id", channel.ID)

	skipTranscripts := req.SkipTranscripts || channel.IsMusicChannel
	mode := domain.TranscriptAuto
	if req.NativeOnly {
		mode = domain.TranscriptNative
	}

	fetching := domain.StatusEvent("Fetching video list for " + channel.Name)
	fetching.Channel = channel
	s.emit(ctx, sink, fetching)

	videos, err := s.listVideos(ctx, src, req.IncludeLive, logger)
	if err != nil {
		return result, err
	}

	existing, err := LoadExistingVideos(ctx, s.videos, channel.ID)
	if err != nil {
		return result, fmt.Errorf("load existing videos: %w", err)
	}

	plan := BuildPlan(videos, existing, PlanOptions{
		Limit:           req.Limit,
		SkipTranscripts: skipTranscripts,
		TranscriptsOnly: req.TranscriptsOnly,
	}, s.now())

	result.Listed = len(videos)
	result.AlreadyComplete = plan.AlreadyComplete
	result.Planned = len(plan.Items)

	logger.Info("import plan",
		"listed", len(videos),
		"new", plan.NewAvailable,
		"needs_transcript", plan.NeedsTranscriptAvailable,
		"complete", plan.AlreadyComplete,
		"selected_new", plan.NewSelected,
		"selected_backfill", plan.BackfillSelected,
	)
	s.emit(ctx, sink, domain.StatusEvent(fmt.Sprintf(
		"Found %d videos: %d new, %d missing transcripts, %d complete. Processing %d.",
		len(videos), plan.NewAvailable, plan.NeedsTranscriptAvailable, plan.AlreadyComplete, len(plan.Items),
	)))

	var touched []int64
	var interrupted error
	for i, item := range plan.Items {
		if !req.Deadline.IsZero() && !s.now().Before(req.Deadline) {
			result.Partial = true
			s.emit(ctx, sink, domain.StatusEvent(fmt.Sprintf(
				"Time budget reached after %d of %d videos; run again to continue", i, len(plan.Items),
			)))
			break
		}
		if err := ctx.Err(); err != nil {
			interrupted = err
			result.Partial = true
			break
		}

		s.emit(ctx, sink, domain.ProgressEvent(i+1, len(plan.Items), item.Video.Title))

		var out videoOutcome
		if item.IsNew() {
			out = s.importVideo(ctx, channel, item.Video, skipTranscripts, mode)
		} else {
			out = s.backfillTranscript(ctx, item, mode)
		}

		s.record(result, out)
		if out.transcript {
			touched = append(touched, out.videoID)
			s.enqueueEmbeddings(ctx, req, out.videoID, logger)
		}
		if out.err != nil {
			metrics.VideoFailures.WithLabelValues(out.stage).Inc()
			logger.Warn("video failed",
				"external_id", item.Video.ExternalID,
				"stage", out.stage,
				"error", out.err,
			)
		}

		s.emit(ctx, sink, videoEvent(item.Video, out))
	}

	// Written transcripts must reach the search index even when the run was
	// cancelled; their videos are complete on the next run.
	if len(touched) > 0 {
		s.emit(ctx, sink, domain.StatusEvent("Refreshing search index"))
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), searchRefreshTimeout)
		s.refreshSearch(refreshCtx, touched, logger)
		cancel()
	}

	if interrupted != nil {
		return result, fmt.Errorf("import interrupted: %w", interrupted)
	}
	return result, nil
}

func (s *Importer) listVideos(ctx context.Context, src *domain.SourceChannel, includeLive bool, logger *slog.Logger) ([]domain.SourceVideo, error) {
	start := time.Now()
	defer func() {
		metrics.Durations.WithLabelValues("list_videos").Observe(time.Since(start).Seconds())
	}()

	regular, err := s.source.ListVideos(ctx, src, s.config.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	var live []domain.SourceVideo
	if includeLive {
		live, err = s.source.ListLiveVideos(ctx, src, s.config.ListLimit)
		if err != nil {
			logger.Warn("listing live videos failed, continuing with regular videos", "error", err)
			live = nil
		}
	}

	return MergeVideos(regular, live), nil
}

func (s *Importer) upsertChannel(ctx context.Context, req domain.ImportRequest, src *domain.SourceChannel, logger *slog.Logger) (*domain.Channel, error) {
	localHandle := domain.SanitizeHandle(src.Handle)
	if localHandle == "" {
		localHandle = domain.SanitizeHandle(req.Handle)
	}

	existing, err := s.channels.FindByIdentity(ctx, localHandle, src.Handle, src.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("find channel: %w", err)
	}

	thumbnail := s.mirrorAsset(ctx, domain.ChannelThumbnailKey(src.ChannelID), src.ThumbnailURL, req.ForceAssetRefresh)
	banner := s.mirrorAsset(ctx, domain.ChannelBannerKey(src.ChannelID), src.BannerURL, req.ForceAssetRefresh)
	now := s.now().UTC()

	if existing == nil {
		channel := &domain.Channel{
			TenantID:        req.TenantID,
			LocalHandle:     localHandle,
			SourceHandle:    src.Handle,
			SourceChannelID: src.ChannelID,
			Name:            src.Name,
			Description:     src.Description,
			ThumbnailURL:    thumbnail,
			BannerURL:       banner,
			SubscriberCount: src.SubscriberCount,
			VideoCount:      src.VideoCount,
			IsActive:        true,
			LastSyncedAt:    &now,
		}

		id, err := s.channels.Create(ctx, channel)
		if err != nil {
			return nil, fmt.Errorf("create channel: %w", err)
		}
		channel.ID = id

		logger.Info("channel created", "channel_id", id, "local_handle", localHandle)
		return channel, nil
	}

	update := domain.ChannelUpdate{
		Description:     src.Description,
		ThumbnailURL:    thumbnail,
		BannerURL:       banner,
		SubscriberCount: src.SubscriberCount,
		VideoCount:      src.VideoCount,
		LastSyncedAt:    now,
	}
	if strings.TrimSpace(existing.Name) == "" {
		name := src.Name
		update.Name = &name
	}

	if err := s.channels.UpdateMetadata(ctx, existing.ID, update); err != nil {
		logger.Warn("channel metadata refresh failed", "channel_id", existing.ID, "error", err)
		return existing, nil
	}

	updated := *existing
	if update.Name != nil {
		updated.Name = *update.Name
	}
	updated.Description = update.Description
	updated.ThumbnailURL = update.ThumbnailURL
	updated.BannerURL = update.BannerURL
	updated.SubscriberCount = update.SubscriberCount
	updated.VideoCount = update.VideoCount
	updated.LastSyncedAt = &now

	return &updated, nil
}

func (s *Importer) importVideo(ctx context.Context, channel *domain.Channel, v domain.SourceVideo, skipTranscripts bool, mode domain.TranscriptMode) videoOutcome {
	video := &domain.Video{
		ChannelID:       channel.ID,
		ExternalID:      v.ExternalID,
		Title:           v.Title,
		Description:     v.Description,
		ThumbnailURL:    s.mirrorAsset(ctx, domain.VideoThumbnailKey(v.ExternalID), v.ThumbnailURL, false),
		DurationSeconds: v.DurationSeconds,
		PublishedAt:     reltime.ParsePtr(v.Published, s.now()),
		ViewCount:       v.ViewCount,
		LikeCount:       v.LikeCount,
		CommentCount:    v.CommentCount,
		IsLive:          v.IsLive,
	}

	id, err := s.videos.Insert(ctx, video)
	if err != nil {
		return videoOutcome{action: domain.ActionFailed, stage: "insert", err: fmt.Errorf("insert video: %w", err)}
	}
	metrics.VideosImported.Inc()

	out := videoOutcome{videoID: id, imported: true, action: domain.ActionImported}
	if skipTranscripts {
		return out
	}

	ok, err := s.downloadTranscript(ctx, id, v.ExternalID, mode)
	if err != nil {
		out.stage = "transcript"
		out.err = err
		return out
	}
	out.transcript = ok
	return out
}

func (s *Importer) backfillTranscript(ctx context.Context, item PlanItem, mode domain.TranscriptMode) videoOutcome {
	id := item.Existing.ID

	ok, err := s.downloadTranscript(ctx, id, item.Video.ExternalID, mode)
	if err != nil {
		return videoOutcome{videoID: id, action: domain.ActionFailed, stage: "transcript", err: err}
	}
	if !ok {
		return videoOutcome{videoID: id, action: domain.ActionTranscriptSkipped}
	}
	return videoOutcome{videoID: id, transcript: true, action: domain.ActionTranscriptDownloaded}
}

// downloadTranscript reports false without error when the source has no
// transcript (yet).
func (s *Importer) downloadTranscript(ctx context.Context, videoID int64, externalID string, mode domain.TranscriptMode) (bool, error) {
	start := time.Now()
	segments, err := s.fetcher.FetchTranscript(ctx, externalID, mode)
	metrics.Durations.WithLabelValues("transcript_fetch").Observe(time.Since(start).Seconds())
	if err != nil {
		return false, fmt.Errorf("fetch transcript: %w", err)
	}
	if len(segments) == 0 {
		return false, nil
	}

	if err := s.writer.Replace(ctx, videoID, segments); err != nil {
		return false, err
	}

	metrics.TranscriptsDownloaded.Inc()
	return true, nil
}

func (s *Importer) record(result *domain.ImportResult, out videoOutcome) {
	if out.imported {
		result.VideosImported++
		result.VideosProcessed++
	} else if out.transcript {
		result.VideosProcessed++
	}

	switch {
	case out.transcript:
		result.TranscriptsDownloaded++
	case out.err == nil && out.action != domain.ActionImported:
		result.TranscriptsSkipped++
	}

	if out.err != nil {
		result.Errors++
	}
}

func (s *Importer) enqueueEmbeddings(ctx context.Context, req domain.ImportRequest, videoID int64, logger *slog.Logger) {
	if !req.GenerateEmbeddings || s.embeddings == nil {
		return
	}
	if err := s.embeddings.Enqueue(ctx, videoID); err != nil {
		logger.Warn("embedding enqueue failed", "video_id", videoID, "error", err)
	}
}

func (s *Importer) refreshSearch(ctx context.Context, videoIDs []int64, logger *slog.Logger) {
	start := time.Now()
	err := s.search.Refresh(ctx, videoIDs)
	metrics.Durations.WithLabelValues("search_refresh").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.VideoFailures.WithLabelValues("search_refresh").Inc()
		logger.Error("search index refresh failed", "videos", len(videoIDs), "error", err)
	}
}

func (s *Importer) mirrorAsset(ctx context.Context, key, url string, force bool) string {
	if url == "" || s.mirror == nil {
		return url
	}
	start := time.Now()
	defer func() {
		metrics.Durations.WithLabelValues("mirror").Observe(time.Since(start).Seconds())
	}()
	return s.mirror.Mirror(ctx, key, url, force)
}

func (s *Importer) emit(ctx context.Context, sink Sink, event domain.Event) {
	if err := sink.Emit(ctx, event); err != nil {
		s.logger.Debug("progress sink rejected event", "type", event.Type, "error", err)
	}
}

func videoEvent(v domain.SourceVideo, out videoOutcome) domain.Event {
	e := domain.Event{
		Type:       domain.EventVideo,
		ExternalID: v.ExternalID,
		VideoTitle: v.Title,
		Action:     out.action,
		Transcript: out.transcript,
	}
	if out.err != nil {
		e.Message = out.err.Error()
	}
	return e
}
