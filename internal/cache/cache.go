// Package cache provides the short-TTL availability cache sitting in
// front of the reservation repository's slot queries. It is deliberately
// best-effort: a Redis outage degrades every read to a database lookup
// rather than surfacing an error to the caller, and writes that fail to
// invalidate are logged, never propagated, since the serializable
// transaction underneath remains the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-backend/internal/logger"

	"go.uber.org/zap"
)

// Store wraps a Redis client for availability-cache reads/writes.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore constructs a Store with the given default TTL for Set.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Key builds the cache key for a restaurant's availability on a given date.
func Key(restaurantID uint, date string) string {
	return "availability:" + itoa(restaurantID) + ":" + date
}

func itoa(v uint) string {
	if v == 0 {
		return "0"
	}
	digits := make([]byte, 0, 10)
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

// Get looks up key and unmarshals the stored JSON into dest. It returns
// false on a cache miss or on any Redis error — the latter is logged but
// never returned, so a flaky cache never fails a read path.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("cache get failed, falling through to source", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("cache value unmarshal failed, treating as miss", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set marshals value as JSON and stores it under key with the store's
// default TTL. Failures are logged only.
func (s *Store) Set(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache value marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.rdb.SetEx(ctx, key, raw, s.ttl).Err(); err != nil {
		logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate deletes every key matching pattern using a non-blocking
// SCAN cursor walk (never KEYS, which would stall Redis under load).
// Called synchronously after a reservation create/cancel/status change
// commits, before the lock is released.
func (s *Store) Invalidate(ctx context.Context, pattern string) {
	if s.rdb == nil {
		return
	}
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.Warn("cache invalidate scan failed", zap.String("pattern", pattern), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				logger.Warn("cache invalidate delete failed", zap.String("pattern", pattern), zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
