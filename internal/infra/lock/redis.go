package lock

import (
	"context"
	"log/slog"
	"time"

	"commerce-actions/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds our token, so an
// expired holder cannot release a successor's lock.
// KEYS[1] = lock key
// ARGV[1] = owner token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

const retryInterval = 25 * time.Millisecond

// Redis is a lease lock shared by every replica pointing at the same Redis.
// The TTL bounds how long a crashed holder blocks others.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, prefix: "commerce-actions:lock:", logger: logger}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := r.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil {
			return nil, infra.WrapAdapterErr(r.logger, infra.KindUnavailable, "failed to acquire redis lock", err)
		}
		if ok {
			return func() { r.release(fullKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, infra.WrapAdapterErr(r.logger, infra.KindTimeout, "timed out waiting for redis lock", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) release(key, token string) {
	// The caller's context may already be done; release must still run.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		r.logger.Warn("Failed to release redis lock", slog.String("key", key), slog.String("error", err.Error()))
	}
}
