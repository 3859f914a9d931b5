// Package httpapi exposes imports, job status and the cron sweep over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"channel_importer/internal/domain"
	"channel_importer/internal/service"
)

type JobRunner interface {
	StartChannel(ctx context.Context, req domain.ImportRequest) (string, error)
	Sweep(ctx context.Context) (*domain.JobMetrics, error)
}

type JobReader interface {
	Get(ctx context.Context, id string) (*domain.ImportJob, error)
	ListLogs(ctx context.Context, jobID string, limit int) ([]domain.ImportLog, error)
}

type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// BackgroundBudget bounds background imports started over HTTP.
	BackgroundBudget time.Duration
}

type Server struct {
	importer service.ChannelImporter
	runner   JobRunner
	jobs     JobReader
	config   Config
	now      func() time.Time
	logger   *slog.Logger
}

func NewServer(importer service.ChannelImporter, runner JobRunner, jobs JobReader, cfg Config, logger *slog.Logger) *Server {
	return &Server{
		importer: importer,
		runner:   runner,
		jobs:     jobs,
		config:   cfg,
		now:      time.Now,
		logger:   logger.With("component", "http"),
	}
}

func (s *Server) Router() http.Handler {
	m := mux.NewRouter()
	m.Use(s.logRequests)

	m.Methods(http.MethodGet).Path("/healthz").HandlerFunc(s.health)
	m.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())

	m.Methods(http.MethodPost).Path("/api/admin/import").HandlerFunc(s.importStream)
	m.Methods(http.MethodPost).Path("/api/admin/import/background").HandlerFunc(s.importBackground)
	m.Methods(http.MethodGet).Path("/api/admin/jobs/{id}").HandlerFunc(s.job)
	m.Methods(http.MethodGet).Path("/api/admin/jobs/{id}/logs").HandlerFunc(s.jobLogs)
	m.Methods(http.MethodPost).Path("/api/cron/import").HandlerFunc(s.cron)

	return m
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses working through the middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
