// Package mirror copies remote images into object storage so pages do not
// hotlink the video platform.
package mirror

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"channel_importer/internal/metrics"
)

// DefaultMaxBytes bounds a single download.
const DefaultMaxBytes = 10 << 20

// ObjectStore is the bucket mirrored assets are written to.
type ObjectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Config holds asset mirror configuration.
type Config struct {
	Timeout  time.Duration
	MaxBytes int64
}

// Mirror copies remote images into an ObjectStore.
type Mirror struct {
	store    ObjectStore
	client   *http.Client
	maxBytes int64
	logger   *slog.Logger
}

// New creates a new asset mirror writing to store.
func New(store ObjectStore, cfg Config, logger *slog.Logger) *Mirror {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}

	return &Mirror{
		store:    store,
		client:   &http.Client{Timeout: cfg.Timeout},
		maxBytes: cfg.MaxBytes,
		logger:   logger.With("component", "mirror"),
	}
}

// Mirror returns the hosted URL of key, uploading remoteURL first when the
// object is missing or force is set. Any failure yields remoteURL so the
// caller can still store a working link.
func (m *Mirror) Mirror(ctx context.Context, key, remoteURL string, force bool) string {
	if remoteURL == "" {
		return ""
	}

	hosted, err := m.mirror(ctx, key, remoteURL, force)
	if err != nil {
		metrics.MirrorLookups.WithLabelValues("fallback").Inc()
		m.logger.Warn("asset mirroring failed, using source url", "key", key, "error", err)
		return remoteURL
	}
	return hosted
}

func (m *Mirror) mirror(ctx context.Context, key, remoteURL string, force bool) (string, error) {
	if force {
		if err := m.store.Delete(ctx, key); err != nil {
			return "", err
		}
	} else {
		exists, err := m.store.Exists(ctx, key)
		if err != nil {
			return "", err
		}
		if exists {
			metrics.MirrorLookups.WithLabelValues("hit").Inc()
			return m.store.URL(key), nil
		}
	}

	data, contentType, err := m.download(ctx, remoteURL)
	if err != nil {
		return "", err
	}

	if err := m.store.Put(ctx, key, contentType, bytes.NewReader(data)); err != nil {
		return "", err
	}

	metrics.MirrorLookups.WithLabelValues("miss").Inc()
	m.logger.Debug("asset mirrored", "key", key, "bytes", len(data))
	return m.store.URL(key), nil
}

func (m *Mirror) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, m.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > m.maxBytes {
		return nil, "", errors.New("asset exceeds size limit")
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty asset")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
