package service

import (
	"context"
	"fmt"
	"time"

	"channel_importer/internal/domain"
	"channel_importer/internal/metrics"
)

// TranscriptBatchSize is the number of segments written per insert statement.
const TranscriptBatchSize = 100

// transcriptWriter replaces a video's transcript and verifies the write.
type transcriptWriter struct {
	txManager   TransactionManager
	transcripts TranscriptStore
	videos      VideoStore
	quality     QualityPolicy
}

// Replace deletes the existing segments, inserts the new ones in batches and
// verifies the stored count before flagging the video. On a count mismatch
// the flags are left untouched.
func (w *transcriptWriter) Replace(ctx context.Context, videoID int64, segments []domain.Segment) error {
	start := time.Now()
	defer func() {
		metrics.Durations.WithLabelValues("transcript_write").Observe(time.Since(start).Seconds())
	}()

	err := w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := w.transcripts.DeleteByVideo(txCtx, videoID); err != nil {
			return fmt.Errorf("delete transcript: %w", err)
		}

		for from := 0; from < len(segments); from += TranscriptBatchSize {
			to := min(from+TranscriptBatchSize, len(segments))
			if err := w.transcripts.InsertBatch(txCtx, videoID, segments[from:to]); err != nil {
				return fmt.Errorf("insert transcript batch %d: %w", from/TranscriptBatchSize, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Counted rather than re-selected so the check is not subject to row caps.
	stored, err := w.transcripts.CountByVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("count transcript segments: %w", err)
	}
	if stored != len(segments) {
		return fmt.Errorf("%w: stored %d of %d", domain.ErrTranscriptCountMismatch, stored, len(segments))
	}

	if err := w.videos.SetTranscriptFlags(ctx, videoID, true, w.quality.IsQuality(segments)); err != nil {
		return fmt.Errorf("set transcript flags: %w", err)
	}

	return nil
}
