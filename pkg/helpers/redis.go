package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// JSONStore keeps JSON-encoded values of type T in Redis under a shared key
// prefix, each with the same TTL.
type JSONStore[T any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONStore[T any](rdb *redis.Client, prefix string, ttl time.Duration) *JSONStore[T] {
	return &JSONStore[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *JSONStore[T]) Key(id string) string {
	return s.prefix + id
}

func (s *JSONStore[T]) Set(ctx context.Context, id string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.Key(id), b, s.ttl).Err()
}

// Get reports ok=false without an error when the key is absent or expired.
func (s *JSONStore[T]) Get(ctx context.Context, id string) (value T, ok bool, err error) {
	res, err := s.rdb.Get(ctx, s.Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	if err := json.Unmarshal(res, &value); err != nil {
		return value, false, err
	}
	return value, true, nil
}

func (s *JSONStore[T]) Del(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, s.Key(id)).Err()
}
