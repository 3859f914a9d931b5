// Package transcript fetches video transcripts from a hosted transcript API.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"channel_importer/internal/domain"
)

// PendingJobStore records asynchronous transcript jobs for later
// reconciliation.
type PendingJobStore interface {
	SavePending(ctx context.Context, externalID, jobID string) error
}

// Config holds transcript API configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RequestsPerSec float64
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches transcripts from the transcript API, retrying transient
// failures with exponential backoff.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	limiter        *rate.Limiter
	pending        PendingJobStore
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a transcript client. pending may be nil, in which case
// asynchronous jobs are dropped.
func New(cfg Config, pending PendingJobStore, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		limiter:        rate.NewLimiter(limit, 1),
		pending:        pending,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "transcript"),
	}
}

type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.code, e.msg)
	}
	return fmt.Sprintf("unexpected status %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= http.StatusInternalServerError
}

// FetchTranscript returns the transcript of a video. It returns nil segments
// when the video has no transcript or when generation was queued as an
// asynchronous job.
func (c *Client) FetchTranscript(ctx context.Context, externalID string, mode domain.TranscriptMode) ([]domain.Segment, error) {
	q := url.Values{}
	q.Set("videoId", externalID)
	q.Set("mode", string(mode))
	endpoint := c.baseURL + "/youtube/transcript?" + q.Encode()

	var body transcriptResponse
	status, err := c.getWithRetry(ctx, endpoint, &body)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusAccepted:
		if body.JobID == "" {
			return nil, errors.New("accepted without job id")
		}
		c.savePending(ctx, externalID, body.JobID)
		return nil, nil
	case http.StatusNotFound, http.StatusPartialContent:
		return nil, nil
	}

	if body.JobID != "" && len(body.Content) == 0 {
		c.savePending(ctx, externalID, body.JobID)
		return nil, nil
	}

	segments := toSegments(body.Content)
	if len(segments) == 0 {
		return nil, nil
	}
	return segments, nil
}

// JobStatus polls an asynchronous transcript job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (domain.TranscriptJobStatus, []domain.Segment, error) {
	endpoint := c.baseURL + "/transcript/" + url.PathEscape(jobID)

	var body jobResponse
	status, err := c.getWithRetry(ctx, endpoint, &body)
	if err != nil {
		return "", nil, err
	}
	if status == http.StatusNotFound {
		return domain.TranscriptJobFailed, nil, nil
	}

	switch body.Status {
	case "completed":
		return domain.TranscriptJobCompleted, toSegments(body.Content), nil
	case "failed":
		c.logger.Info("transcript job failed", "job_id", jobID, "error", body.Error)
		return domain.TranscriptJobFailed, nil, nil
	default:
		return domain.TranscriptJobPending, nil, nil
	}
}

func (c *Client) savePending(ctx context.Context, externalID, jobID string) {
	if c.pending == nil {
		c.logger.Warn("dropping asynchronous transcript job", "external_id", externalID, "job_id", jobID)
		return
	}
	if err := c.pending.SavePending(ctx, externalID, jobID); err != nil {
		c.logger.Error("failed to save transcript job", "external_id", externalID, "job_id", jobID, "error", err)
		return
	}
	c.logger.Debug("transcript job queued", "external_id", externalID, "job_id", jobID)
}

func (c *Client) getWithRetry(ctx context.Context, endpoint string, out any) (int, error) {
	var status int
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		status, err = c.doRequest(ctx, endpoint, out)
		if err == nil {
			return status, nil
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return status, err
		}
		if ctx.Err() != nil || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return status, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
	case http.StatusNotFound, http.StatusPartialContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	default:
		var e errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&e)
		msg := e.Message
		if msg == "" {
			msg = e.Error
		}
		return resp.StatusCode, &statusError{code: resp.StatusCode, msg: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	return resp.StatusCode, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// toSegments drops empty or malformed chunks and converts milliseconds to
// seconds.
func toSegments(chunks []chunk) []domain.Segment {
	segments := make([]domain.Segment, 0, len(chunks))
	for _, ch := range chunks {
		text := strings.TrimSpace(ch.Text)
		if text == "" || !validMillis(ch.Offset) || !validMillis(ch.Duration) {
			continue
		}
		segments = append(segments, domain.Segment{
			Text:     text,
			Start:    ch.Offset / 1000,
			Duration: ch.Duration / 1000,
		})
	}
	return segments
}

func validMillis(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
