// Package progress fans import events out to the consumers of a run: the
// streaming HTTP client, the job table and the process log.
package progress

import (
	"context"
	"errors"
	"log/slog"

	"channel_importer/internal/domain"
)

// Sink is implemented by everything in this package.
type Sink interface {
	Emit(ctx context.Context, event domain.Event) error
}

type multiSink []Sink

// Multi delivers every event to all sinks, even when one of them fails.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Emit(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes status, complete and error events to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventStatus:
		s.logger.InfoContext(ctx, event.Message)
	case domain.EventProgress:
		s.logger.DebugContext(ctx, "processing video",
			"current", event.Current,
			"total", event.Total,
			"title", event.VideoTitle,
		)
	case domain.EventComplete:
		s.logger.InfoContext(ctx, "import complete",
			"videos_processed", event.VideosProcessed,
			"transcripts_downloaded", event.TranscriptsDownloaded,
		)
	case domain.EventError:
		s.logger.ErrorContext(ctx, "import error", "error", event.Message)
	}
	return nil
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(context.Context, domain.Event) error { return nil }
