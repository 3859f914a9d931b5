package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"channel_importer/internal/config"
	"channel_importer/internal/embedding"
	"channel_importer/internal/httpapi"
	"channel_importer/internal/lock"
	"channel_importer/internal/mirror"
	"channel_importer/internal/notify"
	"channel_importer/internal/queue"
	"channel_importer/internal/service"
	"channel_importer/internal/source/youtube"
	"channel_importer/internal/storage/postgres"
	"channel_importer/internal/storage/r2"
	"channel_importer/internal/transcript"
)

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	transcripts *postgres.TranscriptStore
	jobs        *postgres.JobStore
	txManager   *postgres.TransactionManager

	queue      *queue.RabbitMQ
	importer   *service.Importer
	runner     *service.JobRunner
	reconciler *service.TranscriptReconciler

	closers []func() error
}

func newApp(ctx context.Context, path string, logOut io.Writer) (*app, error) {
	logger := setupLogger("info", logOut)

	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return nil, err
	}
	logger = setupLogger(cfg.LogLevel, logOut)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	logger.Info("connected to database")

	a := &app{cfg: cfg, logger: logger, db: db}
	a.closers = append(a.closers, db.Close)

	channelStore := postgres.NewChannelStore(db)
	videoStore := postgres.NewVideoStore(db)
	transcriptJobStore := postgres.NewTranscriptJobStore(db)
	searchIndex := postgres.NewSearchIndex(db)
	a.transcripts = postgres.NewTranscriptStore(db)
	a.jobs = postgres.NewJobStore(db)
	a.txManager = postgres.NewTransactionManager(db)

	source, err := youtube.New(ctx, youtube.Config{
		APIKey:   cfg.YouTube.APIKey,
		Endpoint: cfg.YouTube.Endpoint,
	}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	transcriptClient := transcript.New(transcript.Config{
		BaseURL:        cfg.Transcript.BaseURL,
		APIKey:         cfg.Transcript.APIKey,
		Timeout:        cfg.Transcript.Timeout,
		RequestsPerSec: cfg.Transcript.RequestsPerSec,
		MaxAttempts:    cfg.Transcript.Retry.MaxAttempts,
		InitialBackoff: cfg.Transcript.Retry.InitialBackoff,
		MaxBackoff:     cfg.Transcript.Retry.MaxBackoff,
	}, transcriptJobStore, logger)

	deps := service.ImporterDeps{
		Source:      source,
		Channels:    channelStore,
		Videos:      videoStore,
		Transcripts: a.transcripts,
		Search:      searchIndex,
		TxManager:   a.txManager,
		Fetcher:     transcriptClient,
	}

	if cfg.Storage.Bucket != "" {
		store, err := r2.New(r2.Config{
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			Bucket:          cfg.Storage.Bucket,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("create asset store: %w", err)
		}
		deps.Mirror = mirror.New(store, mirror.Config{}, logger)
	} else {
		logger.Warn("asset storage not configured, storing source asset urls")
	}

	q, err := queue.NewRabbitMQ(queue.Config{
		URL:         cfg.RabbitMQ.URL,
		Exchange:    cfg.RabbitMQ.Exchange,
		RoutingKey:  cfg.RabbitMQ.RoutingKey,
		QueueName:   cfg.RabbitMQ.QueueName,
		MaxAttempts: cfg.RabbitMQ.MaxAttempts,
		Prefetch:    cfg.RabbitMQ.Prefetch,
	}, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, embedding generation disabled", "error", err)
	} else {
		a.queue = q
		a.closers = append(a.closers, q.Close)
		deps.Embeddings = q
	}

	if cfg.Redis.URL != "" {
		l, err := lock.NewRedisLock(ctx, cfg.Redis.URL, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, l.Close)
		deps.Lock = l
	}

	var notifier service.Notifier = notify.Noop{}
	if cfg.Email.Host != "" {
		notifier = notify.NewSMTPNotifier(notify.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			To:       cfg.Email.To,
		}, logger)
	}

	a.importer = service.NewImporter(deps, logger, service.ImporterConfig{
		DefaultLimit: cfg.Import.DefaultLimit,
		ListLimit:    cfg.Import.ListLimit,
		LockTTL:      cfg.Redis.LockTTL,
	})

	a.runner = service.NewJobRunner(a.importer, channelStore, a.jobs, notifier, logger, service.JobRunnerConfig{
		Budget:           cfg.Cron.Budget,
		VideosPerChannel: cfg.Cron.VideosPerRun,
	})

	a.reconciler = service.NewTranscriptReconciler(
		transcriptJobStore,
		transcriptClient,
		videoStore,
		a.transcripts,
		searchIndex,
		a.txManager,
		nil,
		logger,
		service.ReconcilerConfig{Expiry: cfg.Transcript.JobExpiry},
	)

	return a, nil
}

func (a *app) server() *httpapi.Server {
	return httpapi.NewServer(a.importer, a.runner, a.jobs, httpapi.Config{
		Addr:             a.cfg.HTTP.Addr,
		ReadTimeout:      a.cfg.HTTP.ReadTimeout,
		WriteTimeout:     a.cfg.HTTP.WriteTimeout,
		BackgroundBudget: a.cfg.Import.BackgroundBudget,
	}, a.logger)
}

func (a *app) embeddingWorker() *embedding.Worker {
	return embedding.NewWorker(embedding.Config{
		APIKey:        a.cfg.Embeddings.APIKey,
		BaseURL:       a.cfg.Embeddings.BaseURL,
		Model:         a.cfg.Embeddings.Model,
		ChunkSegments: a.cfg.Embeddings.ChunkSegments,
		BatchSize:     a.cfg.Embeddings.BatchSize,
	}, a.transcripts, postgres.NewEmbeddingStore(a.db), a.txManager, a.logger)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}
