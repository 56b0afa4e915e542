package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "sess:"

// RedisStore is the shared session backend for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Put(ctx context.Context, sid string, id Identity, ttl time.Duration) error {
	b, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+sid, b, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, sid string) (*Identity, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, redisKeyPrefix+sid).Err()
}
