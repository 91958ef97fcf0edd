// Package redis provides a Redis-backed key-value store implementation
package redis

import (
	"context"
	"time"

	"github.com/fridgechef/v2/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store implements outbound.KeyValueStore on a Redis client
type Store struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStore creates a new Redis-backed store
func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		logger: logger.Named("redis-store"),
	}
}

// Get retrieves a value; outbound.ErrKeyNotFound when the key is absent
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, outbound.ErrKeyNotFound
	}
	if err != nil {
		s.logger.Debug("Redis get failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set stores a value. A ttl of zero or less means no expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Error("Redis set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Redis delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Exists checks whether the key is present
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		s.logger.Error("Redis exists check failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}
