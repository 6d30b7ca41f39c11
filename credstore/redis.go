package credstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the API client.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Redis persists the token in a Redis key. Intended for headless
// deployments where several worker processes share one credential.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis describes the newredis operation and its observable behavior.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "bc"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key() string {
	return r.prefix + ":" + Key
}

// Load implements Store. A missing key is not an error.
func (r *Redis) Load(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errors.Join(ErrRedisUnavailable, err)
	}
	return val, nil
}

// Save implements Store. The token carries no TTL; its lifetime is the
// backend's concern and expiry is reported through 401 responses.
func (r *Redis) Save(ctx context.Context, token string) error {
	if token == "" {
		return r.Clear(ctx)
	}
	if err := r.client.Set(ctx, r.key(), token, 0).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

// Clear implements Store.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}
