package service

import (
	"sort"
	"time"

	"channel_importer/internal/domain"
	"channel_importer/internal/reltime"
)

// PlanItem is one video selected for processing. Existing is nil for videos
// that are not in the store yet.
type PlanItem struct {
	Video    domain.SourceVideo
	Existing *domain.ExistingVideo
}

func (p PlanItem) IsNew() bool {
	return p.Existing == nil
}

type PlanOptions struct {
	Limit           int
	SkipTranscripts bool
	TranscriptsOnly bool
}

type Plan struct {
	Items []PlanItem

	NewAvailable             int
	NeedsTranscriptAvailable int
	AlreadyComplete          int
	NewSelected              int
	BackfillSelected         int
}

// MergeVideos deduplicates the regular and live listings by external ID.
// Live videos come first and keep their live classification.
func MergeVideos(regular, live []domain.SourceVideo) []domain.SourceVideo {
	seen := make(map[string]struct{}, len(regular)+len(live))
	merged := make([]domain.SourceVideo, 0, len(regular)+len(live))

	for _, v := range live {
		if _, ok := seen[v.ExternalID]; ok {
			continue
		}
		seen[v.ExternalID] = struct{}{}
		v.IsLive = true
		merged = append(merged, v)
	}
	for _, v := range regular {
		if _, ok := seen[v.ExternalID]; ok {
			continue
		}
		seen[v.ExternalID] = struct{}{}
		merged = append(merged, v)
	}

	return merged
}

// BuildPlan partitions videos into new-import, needs-transcript-only and
// already-complete, then fills the budget with new videos first and backfills
// transcript-less videos, newest first, with the remaining slots.
func BuildPlan(videos []domain.SourceVideo, existing map[string]domain.ExistingVideo, opts PlanOptions, now time.Time) Plan {
	var plan Plan
	var fresh []PlanItem
	var backfill []PlanItem

	for _, v := range videos {
		ev, ok := existing[v.ExternalID]
		switch {
		case !ok:
			fresh = append(fresh, PlanItem{Video: v})
		case ev.HasTranscript:
			plan.AlreadyComplete++
		default:
			backfill = append(backfill, PlanItem{Video: v, Existing: &ev})
		}
	}

	plan.NewAvailable = len(fresh)
	plan.NeedsTranscriptAvailable = len(backfill)

	remaining := opts.Limit
	if !opts.TranscriptsOnly {
		n := min(remaining, len(fresh))
		plan.Items = append(plan.Items, fresh[:n]...)
		plan.NewSelected = n
		remaining -= n
	}

	if opts.SkipTranscripts || remaining <= 0 {
		return plan
	}

	sortNewestFirst(backfill, now)
	n := min(remaining, len(backfill))
	plan.Items = append(plan.Items, backfill[:n]...)
	plan.BackfillSelected = n

	return plan
}

func sortNewestFirst(items []PlanItem, now time.Time) {
	published := make(map[string]time.Time, len(items))
	for _, it := range items {
		if it.Existing != nil && it.Existing.PublishedAt != nil {
			published[it.Video.ExternalID] = *it.Existing.PublishedAt
			continue
		}
		if t, ok := reltime.Parse(it.Video.Published, now); ok {
			published[it.Video.ExternalID] = t
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		ti, iok := published[items[i].Video.ExternalID]
		tj, jok := published[items[j].Video.ExternalID]
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
}
