// Package embedding turns stored transcripts into vector embeddings.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"channel_importer/internal/domain"
	"channel_importer/internal/metrics"
	"channel_importer/internal/queue"
)

type SegmentStore interface {
	ListByVideo(ctx context.Context, videoID int64) ([]domain.Segment, error)
}

type VectorStore interface {
	Replace(ctx context.Context, videoID int64, chunks []domain.EmbeddingChunk) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	ChunkSegments int
	BatchSize     int
}

type Worker struct {
	client        *openai.Client
	model         openai.EmbeddingModel
	chunkSegments int
	batchSize     int
	segments      SegmentStore
	vectors       VectorStore
	txManager     TransactionManager
	logger        *slog.Logger
}

func NewWorker(cfg Config, segments SegmentStore, vectors VectorStore, txManager TransactionManager, logger *slog.Logger) *Worker {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.ChunkSegments < 1 {
		cfg.ChunkSegments = 20
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 64
	}

	return &Worker{
		client:        openai.NewClientWithConfig(clientCfg),
		model:         openai.EmbeddingModel(cfg.Model),
		chunkSegments: cfg.ChunkSegments,
		batchSize:     cfg.BatchSize,
		segments:      segments,
		vectors:       vectors,
		txManager:     txManager,
		logger:        logger.With("component", "embedding"),
	}
}

// Handle rebuilds the embeddings of task.VideoID. It satisfies queue.Handler.
func (w *Worker) Handle(ctx context.Context, task queue.EmbeddingTask) error {
	start := time.Now()
	defer func() {
		metrics.Durations.WithLabelValues("embedding").Observe(time.Since(start).Seconds())
	}()

	logger := w.logger.With("video_id", task.VideoID)

	segments, err := w.segments.ListByVideo(ctx, task.VideoID)
	if err != nil {
		metrics.EmbeddingTasks.WithLabelValues("error").Inc()
		return fmt.Errorf("list segments: %w", err)
	}

	chunks := ChunkSegments(segments, w.chunkSegments)
	if len(chunks) == 0 {
		logger.Info("no transcript to embed")
		metrics.EmbeddingTasks.WithLabelValues("empty").Inc()
		return nil
	}

	if err := w.embed(ctx, chunks); err != nil {
		metrics.EmbeddingTasks.WithLabelValues("error").Inc()
		return err
	}

	err = w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return w.vectors.Replace(txCtx, task.VideoID, chunks)
	})
	if err != nil {
		metrics.EmbeddingTasks.WithLabelValues("error").Inc()
		return fmt.Errorf("store embeddings: %w", err)
	}

	metrics.EmbeddingTasks.WithLabelValues("ok").Inc()
	logger.Info("embeddings stored", "chunks", len(chunks), "duration", time.Since(start))
	return nil
}

// embed fills in the Vector of every chunk, batchSize chunks per request.
func (w *Worker) embed(ctx context.Context, chunks []domain.EmbeddingChunk) error {
	for from := 0; from < len(chunks); from += w.batchSize {
		to := min(from+w.batchSize, len(chunks))

		input := make([]string, 0, to-from)
		for _, c := range chunks[from:to] {
			input = append(input, c.Content)
		}

		resp, err := w.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: input,
			Model: w.model,
		})
		if err != nil {
			return fmt.Errorf("create embeddings: %w", err)
		}
		if len(resp.Data) != len(input) {
			return fmt.Errorf("create embeddings: got %d vectors for %d inputs", len(resp.Data), len(input))
		}

		for _, d := range resp.Data {
			if d.Index < 0 || d.Index >= len(input) {
				return errors.New("create embeddings: vector index out of range")
			}
			chunks[from+d.Index].Vector = d.Embedding
		}
	}
	return nil
}

// ChunkSegments groups consecutive segments into windows of size segments.
// Blank segments are skipped.
func ChunkSegments(segments []domain.Segment, size int) []domain.EmbeddingChunk {
	if size < 1 {
		size = 1
	}

	var chunks []domain.EmbeddingChunk
	var window []domain.Segment

	flush := func() {
		if len(window) == 0 {
			return
		}
		texts := make([]string, len(window))
		for i, s := range window {
			texts[i] = s.Text
		}
		last := window[len(window)-1]
		chunks = append(chunks, domain.EmbeddingChunk{
			Index:     len(chunks),
			StartTime: window[0].Start,
			EndTime:   last.Start + last.Duration,
			Content:   strings.Join(texts, " "),
		})
		window = window[:0]
	}

	for _, s := range segments {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		window = append(window, s)
		if len(window) == size {
			flush()
		}
	}
	flush()

	return chunks
}
