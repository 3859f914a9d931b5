// Package lock provides the per-channel import lock.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"channel_importer/internal/domain"
)

const keyPrefix = "channel_importer:lock:"

// release deletes the key only while it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extend pushes the expiry forward only while the key still holds our token.
var extend = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLock is a ChannelLock backed by Redis SET NX keys.
type RedisLock struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisLock connects to the Redis server at url, e.g.
// redis://localhost:6379/0.
func NewRedisLock(ctx context.Context, url string, logger *slog.Logger) (*RedisLock, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisLock{client: client, logger: logger.With("component", "lock")}, nil
}

// Acquire takes key for ttl. It returns domain.ErrLocked when the key is
// already held. While held, the expiry is pushed forward every ttl/3 so a
// run longer than ttl keeps the lock. The returned func releases the lock.
func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	fullKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrLocked
	}

	// The caller's context may already be done when the run ends.
	detached := context.WithoutCancel(ctx)
	renewCtx, stopRenew := context.WithCancel(detached)
	renewed := make(chan struct{})
	go func() {
		defer close(renewed)
		l.keepAlive(renewCtx, key, fullKey, token, ttl)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopRenew()
			<-renewed

			ctx, cancel := context.WithTimeout(detached, 5*time.Second)
			defer cancel()

			if err := release.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
				l.logger.Warn("failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}

func (l *RedisLock) keepAlive(ctx context.Context, key, fullKey, token string, ttl time.Duration) {
	interval := ttl / 3
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		held, err := extend.Run(ctx, l.client, []string{fullKey}, token, ttl.Milliseconds()).Int()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn("failed to extend lock", "key", key, "error", err)
			continue
		}
		if held == 0 {
			l.logger.Warn("lock lost before release", "key", key)
			return
		}
	}
}

// Close closes the Redis client.
func (l *RedisLock) Close() error {
	return l.client.Close()
}
