package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SearchIndex rebuilds the per-video full-text search rows from the stored
// transcripts.
type SearchIndex struct {
	db *sqlx.DB
}

// NewSearchIndex creates a new search index.
func NewSearchIndex(db *sqlx.DB) *SearchIndex {
	return &SearchIndex{db: db}
}

func (s *SearchIndex) Refresh(ctx context.Context, videoIDs []int64) error {
	if len(videoIDs) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"SELECT refresh_search_context($1::bigint[])",
		pq.Array(videoIDs),
	)
	return err
}
