package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"channel_importer/internal/domain"
)

type statusMessage struct {
	Type    domain.EventType `json:"type"`
	Message string           `json:"message"`
}

type progressMessage struct {
	Type       domain.EventType `json:"type"`
	Current    int              `json:"current"`
	Total      int              `json:"total"`
	VideoTitle string           `json:"videoTitle"`
}

type completeMessage struct {
	Type                  domain.EventType `json:"type"`
	Channel               *domain.Channel  `json:"channel"`
	VideosProcessed       int              `json:"videosProcessed"`
	TranscriptsDownloaded int              `json:"transcriptsDownloaded"`
}

// StreamSink writes events as newline-delimited JSON, one object per line,
// flushing after every line when the writer supports it.
type StreamSink struct {
	mu      sync.Mutex
	enc     *json.Encoder
	flusher http.Flusher
}

func NewStreamSink(w io.Writer) *StreamSink {
	s := &StreamSink{enc: json.NewEncoder(w)}
	if f, ok := w.(http.Flusher); ok {
		s.flusher = f
	}
	return s
}

func (s *StreamSink) Emit(ctx context.Context, event domain.Event) error {
	msg, ok := wireMessage(event)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.enc.Encode(msg); err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

func wireMessage(e domain.Event) (any, bool) {
	switch e.Type {
	case domain.EventStatus, domain.EventError:
		return statusMessage{Type: e.Type, Message: e.Message}, true
	case domain.EventProgress:
		return progressMessage{Type: e.Type, Current: e.Current, Total: e.Total, VideoTitle: e.VideoTitle}, true
	case domain.EventComplete:
		return completeMessage{
			Type:                  e.Type,
			Channel:               e.Channel,
			VideosProcessed:       e.VideosProcessed,
			TranscriptsDownloaded: e.TranscriptsDownloaded,
		}, true
	default:
		return nil, false
	}
}
