package domain

import "time"

const (
	MinImportLimit = 1
	MaxImportLimit = 5000
)

// ImportRequest describes one channel import run.
type ImportRequest struct {
	Handle             string `json:"handle"`
	TenantID           *int64 `json:"tenantId,omitempty"`
	Limit              int    `json:"limit"`
	IncludeLive        bool   `json:"includeLive"`
	SkipTranscripts    bool   `json:"skipTranscripts"`
	TranscriptsOnly    bool   `json:"transcriptsOnly"`
	NativeOnly         bool   `json:"nativeOnly"`
	GenerateEmbeddings bool   `json:"generateEmbeddings"`
	ForceAssetRefresh  bool   `json:"forceAssetRefresh"`
	// Deadline is the wall-clock budget of background runs. Zero means none.
	Deadline time.Time `json:"-"`
}

// ClampLimit bounds limit to [MinImportLimit, MaxImportLimit]. Only a zero
// limit means unset and takes def; a negative limit clamps to the minimum.
func ClampLimit(limit, def int) int {
	if limit == 0 {
		limit = def
	}
	if limit < MinImportLimit {
		return MinImportLimit
	}
	if limit > MaxImportLimit {
		return MaxImportLimit
	}
	return limit
}

// ImportResult holds statistics about one channel import run.
type ImportResult struct {
	Channel               *Channel
	Listed                int
	AlreadyComplete       int
	Planned               int
	VideosImported        int
	VideosProcessed       int
	TranscriptsDownloaded int
	TranscriptsSkipped    int
	Errors                int
	// Partial is set when the deadline stopped the run before the plan finished.
	Partial  bool
	Duration time.Duration
}
