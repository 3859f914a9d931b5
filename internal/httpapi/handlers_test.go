package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel_importer/internal/domain"
	"channel_importer/internal/service"
)

type stubImporter struct {
	got    domain.ImportRequest
	ctxErr error
	err    error
}

func (s *stubImporter) Import(ctx context.Context, req domain.ImportRequest, sink service.Sink) (*domain.ImportResult, error) {
	s.got = req
	s.ctxErr = ctx.Err()
	_ = sink.Emit(ctx, domain.StatusEvent("Resolving channel"))
	if s.err != nil {
		_ = sink.Emit(ctx, domain.ErrorEvent(s.err))
		return nil, s.err
	}
	_ = sink.Emit(ctx, domain.ProgressEvent(1, 1, "Sunday Service"))
	_ = sink.Emit(ctx, domain.Event{Type: domain.EventVideo, ExternalID: "v1", Action: domain.ActionImported})
	_ = sink.Emit(ctx, domain.Event{
		Type:                  domain.EventComplete,
		Channel:               &domain.Channel{ID: 3, Name: "Grace Church"},
		VideosProcessed:       1,
		TranscriptsDownloaded: 1,
	})
	return &domain.ImportResult{VideosImported: 1}, nil
}

type stubRunner struct {
	started  domain.ImportRequest
	startErr error
	metrics  *domain.JobMetrics
	sweepErr error
}

func (s *stubRunner) StartChannel(_ context.Context, req domain.ImportRequest) (string, error) {
	s.started = req
	return "6f1c2c1e-0000-4000-8000-000000000001", s.startErr
}

func (s *stubRunner) Sweep(context.Context) (*domain.JobMetrics, error) {
	return s.metrics, s.sweepErr
}

type stubJobs struct {
	job      *domain.ImportJob
	err      error
	logs     []domain.ImportLog
	logLimit int
}

func (s *stubJobs) Get(context.Context, string) (*domain.ImportJob, error) {
	return s.job, s.err
}

func (s *stubJobs) ListLogs(_ context.Context, _ string, limit int) ([]domain.ImportLog, error) {
	s.logLimit = limit
	return s.logs, nil
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(importer *stubImporter, runner *stubRunner, jobs *stubJobs) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewServer(importer, runner, jobs, Config{BackgroundBudget: 4 * time.Minute}, logger)
	s.now = func() time.Time { return fixedNow }
	return s.Router()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func ndjson(t *testing.T, body string) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestImportStream(t *testing.T) {
	importer := &stubImporter{}
	h := newTestServer(importer, &stubRunner{}, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/admin/import", `{"handle":" @GraceChurch ","limit":7,"includeLive":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))
	assert.True(t, rec.Flushed)

	assert.Equal(t, "@GraceChurch", importer.got.Handle)
	assert.Equal(t, 7, importer.got.Limit)
	assert.True(t, importer.got.IncludeLive)
	assert.True(t, importer.got.Deadline.IsZero())

	lines := ndjson(t, rec.Body.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "status", lines[0]["type"])
	assert.Equal(t, "progress", lines[1]["type"])
	assert.Equal(t, "Sunday Service", lines[1]["videoTitle"])
	assert.Equal(t, "complete", lines[2]["type"])
	assert.EqualValues(t, 1, lines[2]["videosProcessed"])
}

func TestImportStream_ErrorEvent(t *testing.T) {
	h := newTestServer(&stubImporter{err: domain.ErrChannelNotFound}, &stubRunner{}, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/admin/import", `{"handle":"@missing"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	lines := ndjson(t, rec.Body.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "error", lines[1]["type"])
	assert.Equal(t, domain.ErrChannelNotFound.Error(), lines[1]["message"])
}

func TestImportStream_ClientDisconnectDoesNotCancelImport(t *testing.T) {
	importer := &stubImporter{}
	h := newTestServer(importer, &stubRunner{}, &stubJobs{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(`{"handle":"@GraceChurch"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "@GraceChurch", importer.got.Handle)
	assert.NoError(t, importer.ctxErr)
}

func TestImportStream_BadRequests(t *testing.T) {
	importer := &stubImporter{}
	h := newTestServer(importer, &stubRunner{}, &stubJobs{})

	for _, body := range []string{`{"handle":"  "}`, `not json`, `{}`} {
		rec := do(h, http.MethodPost, "/api/admin/import", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Empty(t, importer.got.Handle)
}

func TestImportBackground(t *testing.T) {
	runner := &stubRunner{}
	h := newTestServer(&stubImporter{}, runner, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/admin/import/background", `{"handle":"@GraceChurch","transcriptsOnly":true}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp backgroundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "6f1c2c1e-0000-4000-8000-000000000001", resp.JobID)

	assert.True(t, runner.started.TranscriptsOnly)
	assert.Equal(t, fixedNow.Add(4*time.Minute), runner.started.Deadline)
}

func TestImportBackground_StartFailure(t *testing.T) {
	h := newTestServer(&stubImporter{}, &stubRunner{startErr: errors.New("db down")}, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/admin/import/background", `{"handle":"@GraceChurch"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestJob(t *testing.T) {
	title := "Sunday Service"
	jobs := &stubJobs{job: &domain.ImportJob{
		ID:                "job-1",
		Kind:              domain.JobKindChannel,
		Status:            domain.JobRunning,
		VideosTotal:       10,
		VideosProcessed:   4,
		CurrentVideoTitle: &title,
	}}
	h := newTestServer(&stubImporter{}, &stubRunner{}, jobs)

	rec := do(h, http.MethodGet, "/api/admin/jobs/job-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body["status"])
	assert.EqualValues(t, 4, body["videosProcessed"])
	assert.Equal(t, title, body["currentVideoTitle"])
}

func TestJob_NotFound(t *testing.T) {
	h := newTestServer(&stubImporter{}, &stubRunner{}, &stubJobs{err: domain.ErrJobNotFound})

	rec := do(h, http.MethodGet, "/api/admin/jobs/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobLogs(t *testing.T) {
	jobs := &stubJobs{}
	h := newTestServer(&stubImporter{}, &stubRunner{}, jobs)

	rec := do(h, http.MethodGet, "/api/admin/jobs/job-1/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultLogLimit, jobs.logLimit)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/admin/jobs/job-1/logs?limit=50000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxLogLimit, jobs.logLimit)

	rec = do(h, http.MethodGet, "/api/admin/jobs/job-1/logs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCron(t *testing.T) {
	runner := &stubRunner{metrics: &domain.JobMetrics{
		JobID:           "sweep-1",
		Status:          domain.JobPartial,
		ChannelsTouched: 2,
		VideosImported:  5,
		Elapsed:         90 * time.Second,
	}}
	h := newTestServer(&stubImporter{}, runner, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/cron/import", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp sweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.JobPartial, resp.Status)
	assert.Equal(t, 2, resp.ChannelsTouched)
	assert.Equal(t, 90.0, resp.ElapsedSeconds)
}

func TestCron_Failure(t *testing.T) {
	h := newTestServer(&stubImporter{}, &stubRunner{sweepErr: errors.New("list channels: db down")}, &stubJobs{})

	rec := do(h, http.MethodPost, "/api/cron/import", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(&stubImporter{}, &stubRunner{}, &stubJobs{})

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)

	rec := do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodGet, "/api/admin/import", "").Code)
}
