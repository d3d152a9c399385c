package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"studioslot/internal/logger"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a single-node SET NX lock shared by every API instance.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Redis{client: client, ttl: ttl, retry: 25 * time.Millisecond}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ErrLockTimeout
			}
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-time.After(r.retry):
		case <-ctx.Done():
			return nil, ErrLockTimeout
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// release must survive a cancelled request context
			if err := releaseScript.Run(context.Background(), r.client, []string{key}, token).Err(); err != nil {
				logger.Warn("failed to release date lock", "key", key, "error", err)
			}
		})
	}, nil
}
