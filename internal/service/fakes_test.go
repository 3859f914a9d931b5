package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"channel_importer/internal/domain"
)

// memStore is an in-memory ChannelStore, VideoStore, TranscriptStore and
// SearchIndex for scenario tests.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	channels    map[int64]domain.Channel
	videos      map[int64]domain.Video
	transcripts map[int64][]domain.Segment
	refreshed   [][]int64
}

func newMemStore() *memStore {
	return &memStore{
		channels:    make(map[int64]domain.Channel),
		videos:      make(map[int64]domain.Video),
		transcripts: make(map[int64][]domain.Segment),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) FindByIdentity(_ context.Context, localHandle, sourceHandle, sourceChannelID string) (*domain.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.channels {
		if c.LocalHandle == localHandle || c.SourceHandle == sourceHandle || c.SourceChannelID == sourceChannelID {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(_ context.Context, channel *domain.Channel) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *channel
	c.ID = m.id()
	m.channels[c.ID] = c
	return c.ID, nil
}

func (m *memStore) UpdateMetadata(_ context.Context, id int64, update domain.ChannelUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.channels[id]
	if update.Name != nil {
		c.Name = *update.Name
	}
	c.Description = update.Description
	c.SubscriberCount = update.SubscriberCount
	c.VideoCount = update.VideoCount
	m.channels[id] = c
	return nil
}

func (m *memStore) ListActive(context.Context) ([]domain.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Channel
	for _, c := range m.channels {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ListPage(_ context.Context, channelID int64, offset, limit int) ([]domain.ExistingVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []domain.ExistingVideo
	for _, v := range m.videos {
		if v.ChannelID == channelID {
			all = append(all, domain.ExistingVideo{
				ID:            v.ID,
				ExternalID:    v.ExternalID,
				HasTranscript: v.HasTranscript,
				PublishedAt:   v.PublishedAt,
			})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (m *memStore) Insert(_ context.Context, video *domain.Video) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := *video
	v.ID = m.id()
	m.videos[v.ID] = v
	return v.ID, nil
}

func (m *memStore) SetTranscriptFlags(_ context.Context, videoID int64, hasTranscript, quality bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.videos[videoID]
	v.HasTranscript = hasTranscript
	v.HasQualityTranscript = quality
	m.videos[videoID] = v
	return nil
}

func (m *memStore) GetByExternalID(_ context.Context, externalID string) (*domain.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.videos {
		if v.ExternalID == externalID {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (m *memStore) DeleteByVideo(_ context.Context, videoID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transcripts, videoID)
	return nil
}

func (m *memStore) InsertBatch(_ context.Context, videoID int64, segments []domain.Segment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts[videoID] = append(m.transcripts[videoID], segments...)
	return nil
}

func (m *memStore) CountByVideo(_ context.Context, videoID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transcripts[videoID]), nil
}

func (m *memStore) Refresh(_ context.Context, videoIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshed = append(m.refreshed, append([]int64(nil), videoIDs...))
	return nil
}

func (m *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) videoByExternalID(externalID string) (domain.Video, bool) {
	v, err := m.GetByExternalID(context.Background(), externalID)
	if err != nil || v == nil {
		return domain.Video{}, false
	}
	return *v, true
}

type fakeSource struct {
	channel domain.SourceChannel
	videos  []domain.SourceVideo
	live    []domain.SourceVideo
	liveErr error
}

func (f *fakeSource) ResolveChannel(context.Context, string) (*domain.SourceChannel, error) {
	c := f.channel
	return &c, nil
}

func (f *fakeSource) ListVideos(_ context.Context, _ *domain.SourceChannel, limit int) ([]domain.SourceVideo, error) {
	return f.videos[:min(limit, len(f.videos))], nil
}

func (f *fakeSource) ListLiveVideos(context.Context, *domain.SourceChannel, int) ([]domain.SourceVideo, error) {
	return f.live, f.liveErr
}

// fakeFetcher returns a fixed transcript for every video except those listed
// in missing.
type fakeFetcher struct {
	mu      sync.Mutex
	missing map[string]bool
	calls   []string
}

func (f *fakeFetcher) FetchTranscript(_ context.Context, externalID string, _ domain.TranscriptMode) ([]domain.Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, externalID)
	if f.missing[externalID] {
		return nil, nil
	}
	return []domain.Segment{
		{Text: "welcome everyone", Start: 0, Duration: 2.5},
		{Text: "let us begin", Start: 2.5, Duration: 3},
	}, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Emit(_ context.Context, e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) ofType(t domain.EventType) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newMemImporter(store *memStore, source VideoSource, fetcher TranscriptFetcher) *Importer {
	imp := NewImporter(ImporterDeps{
		Source:      source,
		Channels:    store,
		Videos:      store,
		Transcripts: store,
		Search:      store,
		TxManager:   store,
		Fetcher:     fetcher,
	}, discardLogger(), ImporterConfig{DefaultLimit: 50, ListLimit: 10000})
	imp.now = func() time.Time { return fixedNow }
	return imp
}
