package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel_importer/internal/domain"
)

func externalIDs(items []PlanItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Video.ExternalID
	}
	return out
}

func TestBuildPlan(t *testing.T) {
	day := 24 * time.Hour
	stored := func(id int64, ext string, has bool, age time.Duration) domain.ExistingVideo {
		p := fixedNow.Add(-age)
		return domain.ExistingVideo{ID: id, ExternalID: ext, HasTranscript: has, PublishedAt: &p}
	}

	videos := []domain.SourceVideo{
		{ExternalID: "n1"},
		{ExternalID: "n2"},
		{ExternalID: "b-old"},
		{ExternalID: "done"},
		{ExternalID: "b-new"},
		{ExternalID: "b-rel", Published: "3 days ago"},
		{ExternalID: "b-unknown", Published: "streamed at some point"},
	}
	existing := map[string]domain.ExistingVideo{
		"b-old":     stored(1, "b-old", false, 30*day),
		"done":      stored(2, "done", true, 2*day),
		"b-new":     stored(3, "b-new", false, day),
		"b-rel":     {ID: 4, ExternalID: "b-rel"},
		"b-unknown": {ID: 5, ExternalID: "b-unknown"},
	}

	tests := []struct {
		name string
		opts PlanOptions
		want []string
	}{
		{
			name: "new first then newest backfills",
			opts: PlanOptions{Limit: 4},
			want: []string{"n1", "n2", "b-new", "b-rel"},
		},
		{
			name: "unknown dates go last",
			opts: PlanOptions{Limit: 10},
			want: []string{"n1", "n2", "b-new", "b-rel", "b-old", "b-unknown"},
		},
		{
			name: "limit below new count",
			opts: PlanOptions{Limit: 1},
			want: []string{"n1"},
		},
		{
			name: "skip transcripts never backfills",
			opts: PlanOptions{Limit: 10, SkipTranscripts: true},
			want: []string{"n1", "n2"},
		},
		{
			name: "transcripts only never imports",
			opts: PlanOptions{Limit: 2, TranscriptsOnly: true},
			want: []string{"b-new", "b-rel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(videos, existing, tt.opts, fixedNow)

			assert.Equal(t, tt.want, externalIDs(plan.Items))
			assert.Equal(t, 2, plan.NewAvailable)
			assert.Equal(t, 4, plan.NeedsTranscriptAvailable)
			assert.Equal(t, 1, plan.AlreadyComplete)
			assert.Equal(t, len(tt.want), plan.NewSelected+plan.BackfillSelected)
		})
	}
}

func TestBuildPlan_BackfillItemsCarryStoredVideo(t *testing.T) {
	plan := BuildPlan(
		[]domain.SourceVideo{{ExternalID: "a"}, {ExternalID: "b"}},
		map[string]domain.ExistingVideo{"b": {ID: 9, ExternalID: "b"}},
		PlanOptions{Limit: 5},
		fixedNow,
	)

	require.Len(t, plan.Items, 2)
	assert.True(t, plan.Items[0].IsNew())
	assert.False(t, plan.Items[1].IsNew())
	assert.Equal(t, int64(9), plan.Items[1].Existing.ID)
}

func TestMergeVideos(t *testing.T) {
	regular := []domain.SourceVideo{{ExternalID: "a"}, {ExternalID: "b"}, {ExternalID: "a"}}
	live := []domain.SourceVideo{{ExternalID: "b"}, {ExternalID: "l"}}

	merged := MergeVideos(regular, live)

	require.Len(t, merged, 3)
	assert.Equal(t, "b", merged[0].ExternalID)
	assert.True(t, merged[0].IsLive)
	assert.Equal(t, "l", merged[1].ExternalID)
	assert.True(t, merged[1].IsLive)
	assert.Equal(t, "a", merged[2].ExternalID)
	assert.False(t, merged[2].IsLive)
}

func TestWordCountQuality(t *testing.T) {
	q := DefaultQualityPolicy()

	speech := make([]domain.Segment, 20)
	for i := range speech {
		speech[i] = domain.Segment{Text: "grace and peace to you from God our Father"}
	}
	assert.True(t, q.IsQuality(speech))

	assert.False(t, q.IsQuality(speech[:5]), "too few segments")
	assert.False(t, q.IsQuality(nil))

	noisy := append([]domain.Segment(nil), speech...)
	for i := 0; i < 10; i++ {
		noisy[i] = domain.Segment{Text: "[Music]"}
	}
	assert.False(t, q.IsQuality(noisy), "mostly music")

	short := make([]domain.Segment, 20)
	for i := range short {
		short[i] = domain.Segment{Text: "amen"}
	}
	assert.False(t, q.IsQuality(short), "too few words")
}
