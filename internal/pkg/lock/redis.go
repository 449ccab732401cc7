package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pontolegal:lock:"

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker shared by every instance using the same Redis.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	retry  time.Duration
	logger *slog.Logger
}

// RedisOption configures a Redis locker.
type RedisOption func(*Redis)

// WithTTL bounds how long a lock survives a crashed holder.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) { r.ttl = ttl }
}

// WithRetryInterval sets the polling interval while waiting for a lock.
func WithRetryInterval(d time.Duration) RedisOption {
	return func(r *Redis) { r.retry = d }
}

func NewRedis(client redis.UniversalClient, logger *slog.Logger, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		ttl:    10 * time.Second,
		retry:  25 * time.Millisecond,
		logger: logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	key = keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// the caller's context may already be done
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err(); err != nil {
			r.logger.Warn("failed to release lock", "key", key, "error", err)
		}
	}, nil
}
