package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/dataview/core/kv"
)

// KV is a Redis-backed implementation of kv.Store. Keys are namespaced
// under a prefix so independent stores can share one Redis instance.
type KV struct {
	client *redis.Client
	prefix string
}

// NewKV creates a kv.Store over the given client.
func NewKV(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", kv.ErrEmptyKey
	}

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Join(kv.ErrReadStore, err)
	}
	return val, nil
}

// Set stores value under key without expiration.
func (s *KV) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}
