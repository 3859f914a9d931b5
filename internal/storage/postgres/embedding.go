package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"channel_importer/internal/domain"
)

// EmbeddingStore persists segment embeddings.
type EmbeddingStore struct {
	db *sqlx.DB
}

// NewEmbeddingStore creates a new embedding store.
func NewEmbeddingStore(db *sqlx.DB) *EmbeddingStore {
	return &EmbeddingStore{db: db}
}

// Replace swaps the stored embeddings of a video for chunks.
func (s *EmbeddingStore) Replace(ctx context.Context, videoID int64, chunks []domain.EmbeddingChunk) error {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, "DELETE FROM transcript_embeddings WHERE video_id = $1", videoID); err != nil {
		return fmt.Errorf("delete embeddings: %w", err)
	}

	query := `
		INSERT INTO transcript_embeddings (video_id, chunk_index, start_time, end_time, content, embedding)
		VALUES ($1, $2, $3, $4, $5, $6::vector)`

	for _, c := range chunks {
		if _, err := exec.ExecContext(ctx, query,
			videoID,
			c.Index,
			c.StartTime,
			c.EndTime,
			c.Content,
			vectorLiteral(c.Vector),
		); err != nil {
			return fmt.Errorf("insert embedding chunk %d: %w", c.Index, err)
		}
	}

	return nil
}

// vectorLiteral renders v in the pgvector text format, e.g. "[0.1,0.2]".
func vectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.Grow(len(v) * 10)
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
