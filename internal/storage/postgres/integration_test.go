//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"channel_importer/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"pgvector/pgvector:pg16",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_channels.up.sql"),
			filepath.Join(migrationsPath, "002_create_import_jobs.up.sql"),
			filepath.Join(migrationsPath, "003_create_search.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM import_jobs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM transcript_jobs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM channels")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createChannel() int64 {
	id, err := NewChannelStore(s.db).Create(s.ctx, &domain.Channel{
		LocalHandle:     "gracechurch",
		SourceHandle:    "@GraceChurch",
		SourceChannelID: "UCgrace0000000000000000",
		Name:            "Grace Church",
		IsActive:        true,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestChannelStore_FindByIdentity() {
	store := NewChannelStore(s.db)
	id := s.createChannel()

	byHandle, err := store.FindByIdentity(s.ctx, "gracechurch", "", "")
	s.Require().NoError(err)
	s.Require().NotNil(byHandle)
	s.Equal(id, byHandle.ID)

	bySourceHandle, err := store.FindByIdentity(s.ctx, "other", "@GraceChurch", "")
	s.Require().NoError(err)
	s.Require().NotNil(bySourceHandle)
	s.Equal(id, bySourceHandle.ID)

	byChannelID, err := store.FindByIdentity(s.ctx, "other", "@other", "UCgrace0000000000000000")
	s.Require().NoError(err)
	s.Require().NotNil(byChannelID)
	s.Equal(id, byChannelID.ID)

	none, err := store.FindByIdentity(s.ctx, "other", "@other", "UCother")
	s.NoError(err)
	s.Nil(none)
}

func (s *PostgresIntegrationSuite) TestChannelStore_UpdateMetadataKeepsName() {
	store := NewChannelStore(s.db)
	id := s.createChannel()

	err := store.UpdateMetadata(s.ctx, id, domain.ChannelUpdate{
		Description:     "Sunday services",
		SubscriberCount: 1200,
		LastSyncedAt:    time.Now(),
	})
	s.Require().NoError(err)

	channel, err := store.FindByIdentity(s.ctx, "gracechurch", "", "")
	s.Require().NoError(err)
	s.Equal("Grace Church", channel.Name)
	s.Equal("Sunday services", channel.Description)
	s.Equal(int64(1200), channel.SubscriberCount)
	s.NotNil(channel.LastSyncedAt)

	active, err := store.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 1)
}

func (s *PostgresIntegrationSuite) TestVideoStore_ListPagePagination() {
	store := NewVideoStore(s.db)
	channelID := s.createChannel()

	for i := 0; i < 5; i++ {
		_, err := store.Insert(s.ctx, &domain.Video{
			ChannelID:   channelID,
			ExternalID:  "vid" + string(rune('a'+i)),
			Title:       "Sermon",
			PublishedAt: ptr(time.Now().Add(-time.Duration(i) * time.Hour).Truncate(time.Microsecond)),
		})
		s.Require().NoError(err)
	}

	first, err := store.ListPage(s.ctx, channelID, 0, 3)
	s.Require().NoError(err)
	second, err := store.ListPage(s.ctx, channelID, 3, 3)
	s.Require().NoError(err)

	s.Len(first, 3)
	s.Len(second, 2)
	s.Equal("vida", first[0].ExternalID)
	s.False(first[0].HasTranscript)
	s.NotNil(first[0].PublishedAt)
}

func (s *PostgresIntegrationSuite) TestVideoStore_GetByExternalID() {
	store := NewVideoStore(s.db)
	channelID := s.createChannel()

	id, err := store.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "abc", Title: "Easter"})
	s.Require().NoError(err)
	s.Require().NoError(store.SetTranscriptFlags(s.ctx, id, true, true))

	video, err := store.GetByExternalID(s.ctx, "abc")
	s.Require().NoError(err)
	s.Equal(id, video.ID)
	s.True(video.HasTranscript)
	s.True(video.HasQualityTranscript)

	missing, err := store.GetByExternalID(s.ctx, "nope")
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresIntegrationSuite) TestVideoStore_ExternalIDUniquePerChannel() {
	store := NewVideoStore(s.db)
	channelID := s.createChannel()
	otherID, err := NewChannelStore(s.db).Create(s.ctx, &domain.Channel{
		LocalHandle:     "gracechapel",
		SourceHandle:    "@GraceChapel",
		SourceChannelID: "UCchapel000000000000000",
		Name:            "Grace Chapel",
		IsActive:        true,
	})
	s.Require().NoError(err)

	first, err := store.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "shared", Title: "Easter"})
	s.Require().NoError(err)

	_, err = store.Insert(s.ctx, &domain.Video{ChannelID: otherID, ExternalID: "shared", Title: "Easter"})
	s.Require().NoError(err)

	_, err = store.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "shared", Title: "Easter again"})
	s.Error(err)

	video, err := store.GetByExternalID(s.ctx, "shared")
	s.Require().NoError(err)
	s.Equal(first, video.ID)
}

func (s *PostgresIntegrationSuite) TestTranscriptStore_ReplaceInTransaction() {
	videos := NewVideoStore(s.db)
	transcripts := NewTranscriptStore(s.db)
	txManager := NewTransactionManager(s.db)
	channelID := s.createChannel()

	videoID, err := videos.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "abc"})
	s.Require().NoError(err)

	segments := func(n int) []domain.Segment {
		out := make([]domain.Segment, n)
		for i := range out {
			out[i] = domain.Segment{Text: "line", Start: float64(i), Duration: 1}
		}
		return out
	}

	s.Require().NoError(transcripts.InsertBatch(s.ctx, videoID, segments(7)))

	err = txManager.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := transcripts.DeleteByVideo(ctx, videoID); err != nil {
			return err
		}
		return transcripts.InsertBatch(ctx, videoID, segments(3))
	})
	s.Require().NoError(err)

	count, err := transcripts.CountByVideo(s.ctx, videoID)
	s.Require().NoError(err)
	s.Equal(3, count)

	err = txManager.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := transcripts.DeleteByVideo(ctx, videoID); err != nil {
			return err
		}
		return errors.New("abort")
	})
	s.Error(err)

	listed, err := transcripts.ListByVideo(s.ctx, videoID)
	s.Require().NoError(err)
	s.Len(listed, 3)
}

func (s *PostgresIntegrationSuite) TestSearchIndex_Refresh() {
	videos := NewVideoStore(s.db)
	transcripts := NewTranscriptStore(s.db)
	search := NewSearchIndex(s.db)
	channelID := s.createChannel()

	videoID, err := videos.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "abc", Title: "Easter"})
	s.Require().NoError(err)
	s.Require().NoError(transcripts.InsertBatch(s.ctx, videoID, []domain.Segment{
		{Text: "he is risen", Start: 1, Duration: 2},
		{Text: "welcome", Start: 0, Duration: 1},
	}))

	s.Require().NoError(search.Refresh(s.ctx, []int64{videoID}))
	s.Require().NoError(search.Refresh(s.ctx, []int64{videoID}))

	var content string
	err = s.db.GetContext(s.ctx, &content, "SELECT content FROM transcript_search_context WHERE video_id = $1", videoID)
	s.Require().NoError(err)
	s.Equal("welcome he is risen", content)

	var hits int
	err = s.db.GetContext(s.ctx, &hits,
		"SELECT COUNT(*) FROM transcript_search_context WHERE document @@ plainto_tsquery('english', 'risen')")
	s.Require().NoError(err)
	s.Equal(1, hits)
}

func (s *PostgresIntegrationSuite) TestJobStore_Lifecycle() {
	store := NewJobStore(s.db)
	channelID := s.createChannel()

	job := &domain.ImportJob{
		ID:            uuid.NewString(),
		Kind:          domain.JobKindChannel,
		ChannelHandle: ptr("@GraceChurch"),
		Status:        domain.JobRunning,
		StartedAt:     time.Now(),
	}
	s.Require().NoError(store.Create(s.ctx, job))

	s.Require().NoError(store.UpdateProgress(s.ctx, job.ID, domain.JobProgress{
		VideosTotal:       10,
		VideosProcessed:   4,
		CurrentVideoTitle: "Easter",
	}))

	entry := &domain.ImportLog{
		JobID:      job.ID,
		ChannelID:  &channelID,
		ExternalID: "abc",
		VideoTitle: "Easter",
		Action:     domain.ActionImported,
	}
	s.Require().NoError(store.AppendLog(s.ctx, entry))
	s.Greater(entry.ID, int64(0))

	s.Require().NoError(store.AppendLog(s.ctx, &domain.ImportLog{
		JobID:   job.ID,
		Action:  domain.ActionFailed,
		Message: ptr("timeout"),
	}))

	running, err := store.Get(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(10, running.VideosTotal)
	s.Equal(4, running.VideosProcessed)
	s.Require().NotNil(running.CurrentVideoTitle)
	s.Equal("Easter", *running.CurrentVideoTitle)
	s.Nil(running.FinishedAt)

	s.Require().NoError(store.Finish(s.ctx, job.ID, domain.JobPartial, ""))

	finished, err := store.Get(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal(domain.JobPartial, finished.Status)
	s.NotNil(finished.FinishedAt)
	s.Nil(finished.Error)
	s.Nil(finished.CurrentVideoTitle)

	logs, err := store.ListLogs(s.ctx, job.ID, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 2)
	s.Equal(domain.ActionFailed, logs[0].Action)

	_, err = store.Get(s.ctx, uuid.NewString())
	s.ErrorIs(err, domain.ErrJobNotFound)
}

func (s *PostgresIntegrationSuite) TestTranscriptJobStore() {
	store := NewTranscriptJobStore(s.db)

	s.Require().NoError(store.SavePending(s.ctx, "abc", "job-1"))
	s.Require().NoError(store.SavePending(s.ctx, "abc", "job-1"))
	s.Require().NoError(store.SavePending(s.ctx, "def", "job-2"))

	pending, err := store.ListPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)

	s.Require().NoError(store.MarkFinished(s.ctx, pending[0].ID, domain.TranscriptJobCompleted, ""))

	pending, err = store.ListPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(pending, 1)
}

func (s *PostgresIntegrationSuite) TestEmbeddingStore_Replace() {
	videos := NewVideoStore(s.db)
	store := NewEmbeddingStore(s.db)
	channelID := s.createChannel()

	videoID, err := videos.Insert(s.ctx, &domain.Video{ChannelID: channelID, ExternalID: "abc"})
	s.Require().NoError(err)

	vec := make([]float32, 1536)
	vec[0] = 0.5
	chunks := []domain.EmbeddingChunk{
		{Index: 0, StartTime: 0, EndTime: 10, Content: "welcome", Vector: vec},
		{Index: 1, StartTime: 10, EndTime: 20, Content: "he is risen", Vector: vec},
	}

	s.Require().NoError(store.Replace(s.ctx, videoID, chunks))
	s.Require().NoError(store.Replace(s.ctx, videoID, chunks[:1]))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM transcript_embeddings WHERE video_id = $1", videoID)
	s.Require().NoError(err)
	s.Equal(1, count)
}
