// Package youtube lists channels and videos through the YouTube Data API.
package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"channel_importer/internal/domain"
)

// pageSize is the API maximum for list calls.
const pageSize = 50

type Config struct {
	APIKey string
	// Endpoint overrides the API base URL.
	Endpoint string
}

type Source struct {
	service *ytapi.Service
	logger  *slog.Logger
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Source{
		service: service,
		logger:  logger.With("source", "youtube"),
	}, nil
}

// ResolveChannel accepts a handle ("@name" or "name"), a channel ID or a
// channel URL.
func (s *Source) ResolveChannel(ctx context.Context, ref string) (*domain.SourceChannel, error) {
	id, handle := parseChannelRef(ref)

	call := s.service.Channels.List([]string{"snippet", "statistics", "contentDetails", "brandingSettings"})
	if id != "" {
		call = call.Id(id)
	} else {
		call = call.ForHandle(handle)
	}

	resp, err := call.MaxResults(1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, ref)
	}

	return toSourceChannel(resp.Items[0]), nil
}

// ListVideos returns up to limit uploads, newest first.
func (s *Source) ListVideos(ctx context.Context, channel *domain.SourceChannel, limit int) ([]domain.SourceVideo, error) {
	if channel.UploadsPlaylistID == "" {
		return nil, fmt.Errorf("channel %s has no uploads playlist", channel.ChannelID)
	}

	var ids []string
	pageToken := ""
	for len(ids) < limit {
		call := s.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(channel.UploadsPlaylistID).
			MaxResults(int64(min(pageSize, limit-len(ids)))).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("playlistItems.list: %w", err)
		}

		for _, item := range resp.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
			}
		}

		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	videos, err := s.hydrate(ctx, ids)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listed uploads", "channel_id", channel.ChannelID, "count", len(videos))
	return videos, nil
}

// ListLiveVideos returns current and past live streams of the channel.
func (s *Source) ListLiveVideos(ctx context.Context, channel *domain.SourceChannel, limit int) ([]domain.SourceVideo, error) {
	seen := make(map[string]struct{})
	var ids []string

	for _, eventType := range []string{"live", "completed"} {
		pageToken := ""
		for len(ids) < limit {
			call := s.service.Search.List([]string{"id"}).
				ChannelId(channel.ChannelID).
				EventType(eventType).
				Type("video").
				Order("date").
				MaxResults(int64(min(pageSize, limit-len(ids)))).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			resp, err := call.Do()
			if err != nil {
				return nil, fmt.Errorf("search.list %s: %w", eventType, err)
			}

			for _, item := range resp.Items {
				if item.Id == nil || item.Id.VideoId == "" {
					continue
				}
				if _, ok := seen[item.Id.VideoId]; ok {
					continue
				}
				seen[item.Id.VideoId] = struct{}{}
				ids = append(ids, item.Id.VideoId)
			}

			if resp.NextPageToken == "" || len(resp.Items) == 0 {
				break
			}
			pageToken = resp.NextPageToken
		}
	}

	videos, err := s.hydrate(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range videos {
		videos[i].IsLive = true
	}
	return videos, nil
}

// hydrate fetches full video records, preserving the order of ids.
func (s *Source) hydrate(ctx context.Context, ids []string) ([]domain.SourceVideo, error) {
	byID := make(map[string]domain.SourceVideo, len(ids))

	for from := 0; from < len(ids); from += pageSize {
		chunk := ids[from:min(from+pageSize, len(ids))]

		resp, err := s.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(chunk...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("videos.list: %w", err)
		}

		for _, item := range resp.Items {
			byID[item.Id] = toSourceVideo(item)
		}
	}

	videos := make([]domain.SourceVideo, 0, len(byID))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func toSourceChannel(item *ytapi.Channel) *domain.SourceChannel {
	c := &domain.SourceChannel{ChannelID: item.Id}

	if item.Snippet != nil {
		c.Handle = item.Snippet.CustomUrl
		c.Name = item.Snippet.Title
		c.Description = item.Snippet.Description
		c.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
	}
	if item.Statistics != nil {
		c.SubscriberCount = int64(item.Statistics.SubscriberCount)
		c.VideoCount = int64(item.Statistics.VideoCount)
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		c.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	if item.BrandingSettings != nil && item.BrandingSettings.Image != nil {
		c.BannerURL = item.BrandingSettings.Image.BannerExternalUrl
	}

	return c
}

func toSourceVideo(item *ytapi.Video) domain.SourceVideo {
	v := domain.SourceVideo{ExternalID: item.Id}

	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.Description = item.Snippet.Description
		v.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
		v.Published = item.Snippet.PublishedAt
		v.IsLive = item.Snippet.LiveBroadcastContent == "live"
	}
	if item.ContentDetails != nil {
		v.DurationSeconds = ParseDuration(item.ContentDetails.Duration)
	}
	if item.Statistics != nil {
		v.ViewCount = int64(item.Statistics.ViewCount)
		v.LikeCount = int64(item.Statistics.LikeCount)
		v.CommentCount = int64(item.Statistics.CommentCount)
	}

	return v
}

func bestThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*ytapi.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

// parseChannelRef splits ref into a channel ID or a handle. Exactly one of
// the results is set.
func parseChannelRef(ref string) (id, handle string) {
	ref = strings.TrimSpace(ref)

	if u, err := url.Parse(ref); err == nil && u.Host != "" {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		switch {
		case len(parts) >= 2 && parts[0] == "channel":
			return parts[1], ""
		case len(parts) >= 1 && parts[0] != "":
			ref = parts[0]
		}
	}

	if isChannelID(ref) {
		return ref, ""
	}
	if !strings.HasPrefix(ref, "@") {
		ref = "@" + ref
	}
	return "", ref
}

func isChannelID(s string) bool {
	return len(s) == 24 && strings.HasPrefix(s, "UC")
}
