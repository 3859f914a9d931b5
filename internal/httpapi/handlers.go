package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"channel_importer/internal/domain"
	"channel_importer/internal/progress"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

type errorResponse struct {
	Error string `json:"error"`
}

type backgroundResponse struct {
	JobID string `json:"jobId"`
}

type sweepResponse struct {
	JobID                 string           `json:"jobId"`
	Status                domain.JobStatus `json:"status"`
	ChannelsTouched       int              `json:"channelsTouched"`
	VideosImported        int              `json:"videosImported"`
	TranscriptsDownloaded int              `json:"transcriptsDownloaded"`
	Errors                int              `json:"errors"`
	ElapsedSeconds        float64          `json:"elapsedSeconds"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// importStream runs one import inside the request and streams progress as
// newline-delimited JSON.
func (s *Server) importStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeImportRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sink := progress.Multi(progress.NewStreamSink(w), progress.NewLogSink(s.logger))

	// A disconnecting client stops the stream, not the import. Failures are
	// reported as an error event on the stream.
	_, _ = s.importer.Import(context.WithoutCancel(r.Context()), req, sink)
}

func (s *Server) importBackground(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeImportRequest(w, r)
	if !ok {
		return
	}

	if s.config.BackgroundBudget > 0 {
		req.Deadline = s.now().Add(s.config.BackgroundBudget)
	}

	id, err := s.runner.StartChannel(r.Context(), req)
	if err != nil {
		s.logger.Error("failed to start background import", "handle", req.Handle, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start import")
		return
	}

	writeJSON(w, http.StatusAccepted, backgroundResponse{JobID: id})
}

func (s *Server) job(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	job, err := s.jobs.Get(r.Context(), id)
	if errors.Is(err, domain.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load job", "job_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load job")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) jobLogs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLogLimit)
	}

	logs, err := s.jobs.ListLogs(r.Context(), id, limit)
	if err != nil {
		s.logger.Error("failed to load job logs", "job_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load job logs")
		return
	}
	if logs == nil {
		logs = []domain.ImportLog{}
	}

	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) cron(w http.ResponseWriter, r *http.Request) {
	m, err := s.runner.Sweep(r.Context())
	if err != nil {
		s.logger.Error("cron sweep failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sweepResponse{
		JobID:                 m.JobID,
		Status:                m.Status,
		ChannelsTouched:       m.ChannelsTouched,
		VideosImported:        m.VideosImported,
		TranscriptsDownloaded: m.TranscriptsDownloaded,
		Errors:                m.Errors,
		ElapsedSeconds:        m.Elapsed.Round(time.Millisecond).Seconds(),
	})
}

func (s *Server) decodeImportRequest(w http.ResponseWriter, r *http.Request) (domain.ImportRequest, bool) {
	var req domain.ImportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}

	req.Handle = strings.TrimSpace(req.Handle)
	if req.Handle == "" {
		writeError(w, http.StatusBadRequest, "handle is required")
		return req, false
	}

	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
