package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "channel_importer"

var (
	Durations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "The durations of the individual import stages",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"stage"})

	VideosImported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_imported_total",
		Help:      "Videos inserted by import runs",
	})

	TranscriptsDownloaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transcripts_downloaded_total",
		Help:      "Transcripts written and verified",
	})

	VideoFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "video_failures_total",
		Help:      "Per-video failures by stage",
	}, []string{"stage"})

	MirrorLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_lookups_total",
		Help:      "Asset mirror lookups by result (hit, miss, fallback)",
	}, []string{"result"})

	EmbeddingTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_tasks_total",
		Help:      "Embedding tasks by outcome",
	}, []string{"outcome"})
)
