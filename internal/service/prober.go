package service

import (
	"context"
	"fmt"

	"channel_importer/internal/domain"
)

// ExistingPageSize matches the row cap of the store's select endpoint.
const ExistingPageSize = 1000

// LoadExistingVideos pages through every video of the channel and returns
// them keyed by external ID.
func LoadExistingVideos(ctx context.Context, videos VideoStore, channelID int64) (map[string]domain.ExistingVideo, error) {
	existing := make(map[string]domain.ExistingVideo)

	for offset := 0; ; offset += ExistingPageSize {
		page, err := videos.ListPage(ctx, channelID, offset, ExistingPageSize)
		if err != nil {
			return nil, fmt.Errorf("list videos at offset %d: %w", offset, err)
		}

		for _, v := range page {
			existing[v.ExternalID] = v
		}

		if len(page) < ExistingPageSize {
			return existing, nil
		}
	}
}
