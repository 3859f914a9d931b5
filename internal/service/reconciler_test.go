package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"channel_importer/internal/domain"
	"channel_importer/internal/service/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	pending     *mocks.MockTranscriptJobStore
	poller      *mocks.MockTranscriptJobPoller
	videos      *mocks.MockVideoStore
	transcripts *mocks.MockTranscriptStore
	search      *mocks.MockSearchIndex
	txManager   *mocks.MockTransactionManager

	reconciler *TranscriptReconciler
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.pending = mocks.NewMockTranscriptJobStore(s.ctrl)
	s.poller = mocks.NewMockTranscriptJobPoller(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)
	s.transcripts = mocks.NewMockTranscriptStore(s.ctrl)
	s.search = mocks.NewMockSearchIndex(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.reconciler = NewTranscriptReconciler(
		s.pending,
		s.poller,
		s.videos,
		s.transcripts,
		s.search,
		s.txManager,
		nil,
		discardLogger(),
		ReconcilerConfig{BatchSize: 10, Expiry: 24 * time.Hour},
	)
	s.reconciler.now = func() time.Time { return fixedNow }

	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) TestRun_CompletesFinishedJobs() {
	ctx := context.Background()
	recent := fixedNow.Add(-time.Hour)

	s.pending.EXPECT().ListPending(ctx, 10).Return([]domain.TranscriptJob{
		{ID: 1, ExternalID: "done", JobID: "j-done", CreatedAt: recent},
		{ID: 2, ExternalID: "wait", JobID: "j-wait", CreatedAt: recent},
		{ID: 3, ExternalID: "old", JobID: "j-old", CreatedAt: fixedNow.Add(-48 * time.Hour)},
		{ID: 4, ExternalID: "bad", JobID: "j-bad", CreatedAt: recent},
	}, nil)

	s.poller.EXPECT().JobStatus(ctx, "j-done").Return(domain.TranscriptJobCompleted, segments(4), nil)
	s.videos.EXPECT().GetByExternalID(ctx, "done").Return(&domain.Video{ID: 40, ExternalID: "done"}, nil)
	s.transcripts.EXPECT().DeleteByVideo(ctx, int64(40)).Return(nil)
	s.transcripts.EXPECT().InsertBatch(ctx, int64(40), gomock.Len(4)).Return(nil)
	s.transcripts.EXPECT().CountByVideo(ctx, int64(40)).Return(4, nil)
	s.videos.EXPECT().SetTranscriptFlags(ctx, int64(40), true, false).Return(nil)
	s.pending.EXPECT().MarkFinished(ctx, int64(1), domain.TranscriptJobCompleted, "").Return(nil)

	s.poller.EXPECT().JobStatus(ctx, "j-wait").Return(domain.TranscriptJobPending, nil, nil)

	s.pending.EXPECT().MarkFinished(ctx, int64(3), domain.TranscriptJobExpired, gomock.Any()).Return(nil)

	s.poller.EXPECT().JobStatus(ctx, "j-bad").Return(domain.TranscriptJobFailed, nil, nil)
	s.pending.EXPECT().MarkFinished(ctx, int64(4), domain.TranscriptJobFailed, gomock.Any()).Return(nil)

	s.search.EXPECT().Refresh(ctx, []int64{40}).Return(nil)

	s.Require().NoError(s.reconciler.Run(ctx))
}

func (s *ReconcilerTestSuite) TestRun_PollErrorLeavesJobPending() {
	ctx := context.Background()

	s.pending.EXPECT().ListPending(ctx, 10).Return([]domain.TranscriptJob{
		{ID: 1, ExternalID: "x", JobID: "j-x", CreatedAt: fixedNow},
	}, nil)
	s.poller.EXPECT().JobStatus(ctx, "j-x").Return(domain.TranscriptJobStatus(""), nil, errors.New("timeout"))
	s.pending.EXPECT().MarkFinished(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.search.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0)

	s.Require().NoError(s.reconciler.Run(ctx))
}

func (s *ReconcilerTestSuite) TestRun_VideoNotImported() {
	ctx := context.Background()

	s.pending.EXPECT().ListPending(ctx, 10).Return([]domain.TranscriptJob{
		{ID: 1, ExternalID: "gone", JobID: "j-gone", CreatedAt: fixedNow},
	}, nil)
	s.poller.EXPECT().JobStatus(ctx, "j-gone").Return(domain.TranscriptJobCompleted, segments(2), nil)
	s.videos.EXPECT().GetByExternalID(ctx, "gone").Return(nil, nil)
	s.pending.EXPECT().MarkFinished(ctx, int64(1), domain.TranscriptJobFailed, "video not imported").Return(nil)

	s.Require().NoError(s.reconciler.Run(ctx))
}

func (s *ReconcilerTestSuite) TestRun_NothingPending() {
	ctx := context.Background()
	s.pending.EXPECT().ListPending(ctx, 10).Return(nil, nil)

	s.Require().NoError(s.reconciler.Run(ctx))
}
