package progress

import (
	"context"
	"fmt"
	"sync"

	"channel_importer/internal/domain"
)

// JobWriter persists the progress of a background import job.
type JobWriter interface {
	UpdateProgress(ctx context.Context, id string, progress domain.JobProgress) error
	AppendLog(ctx context.Context, entry *domain.ImportLog) error
}

// JobSink mirrors import events into a job row and its audit log. A sweep
// runs several imports through the same sink, so totals accumulate across
// channels.
type JobSink struct {
	mu     sync.Mutex
	writer JobWriter
	jobID  string

	channelID *int64
	baseTotal int
	lastTotal int
	progress  domain.JobProgress
}

func NewJobSink(writer JobWriter, jobID string) *JobSink {
	return &JobSink{writer: writer, jobID: jobID}
}

func (s *JobSink) Emit(ctx context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case domain.EventStatus:
		if event.Channel != nil {
			id := event.Channel.ID
			s.channelID = &id
		}

	case domain.EventProgress:
		s.lastTotal = event.Total
		s.progress.VideosTotal = s.baseTotal + event.Total
		s.progress.CurrentVideoTitle = event.VideoTitle
		return s.flush(ctx)

	case domain.EventVideo:
		if event.Action == domain.ActionImported || event.Transcript {
			s.progress.VideosProcessed++
		}
		if event.Transcript {
			s.progress.TranscriptsDownloaded++
		}
		if err := s.appendLog(ctx, event); err != nil {
			return err
		}
		return s.flush(ctx)

	case domain.EventComplete, domain.EventError:
		s.endChannel()
		return s.flush(ctx)
	}

	return nil
}

// Progress returns a snapshot of the accumulated counters.
func (s *JobSink) Progress() domain.JobProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *JobSink) endChannel() {
	s.baseTotal += s.lastTotal
	s.lastTotal = 0
	s.progress.VideosTotal = s.baseTotal
	s.progress.CurrentVideoTitle = ""
	s.channelID = nil
}

func (s *JobSink) flush(ctx context.Context) error {
	if err := s.writer.UpdateProgress(ctx, s.jobID, s.progress); err != nil {
		return fmt.Errorf("update job progress: %w", err)
	}
	return nil
}

func (s *JobSink) appendLog(ctx context.Context, event domain.Event) error {
	entry := &domain.ImportLog{
		JobID:      s.jobID,
		ChannelID:  s.channelID,
		ExternalID: event.ExternalID,
		VideoTitle: event.VideoTitle,
		Action:     event.Action,
	}
	if event.Message != "" {
		msg := event.Message
		entry.Message = &msg
	}

	if err := s.writer.AppendLog(ctx, entry); err != nil {
		return fmt.Errorf("append import log: %w", err)
	}
	return nil
}
