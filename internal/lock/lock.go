// Package lock provides distributed mutual exclusion for the reservation
// engine, keyed by (table, date, slot). It is a thin wrapper
// around Redis: SET NX PX for acquisition, and Lua scripts for the release
// and extend operations so the "does the stored value match my owner
// token" check and the mutation happen as one atomic step — a release or
// extend issued by a stale owner can never clobber a lock a different
// owner has since acquired.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"restaurant-backend/internal/logger"

	"go.uber.org/zap"
)

// ErrLockUnavailable is returned when the backing Redis instance cannot be
// reached. Callers must treat this as retryable and fail closed for writes.
var ErrLockUnavailable = fmt.Errorf("lock service unavailable")

// releaseScript atomically deletes key only if its value still equals the
// caller's owner token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// extendScript atomically resets the TTL on key only if its value still
// equals the caller's owner token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end
`)

// Service is the distributed lock client. It holds no other mutable
// state besides the Redis connection pool, constructed once per process
// lifetime.
type Service struct {
	rdb *redis.Client
}

// NewService wraps an existing Redis client. The caller owns the client's
// lifecycle (construct once at startup, close on shutdown).
func NewService(rdb *redis.Client) *Service {
	return &Service{rdb: rdb}
}

// NewOwnerToken generates a globally unique owner token: a UUID plus a
// timestamp suffix, so distinct acquisitions by the same process are
// never confused even under clock skew or UUID collision paranoia.
func NewOwnerToken() string {
	return fmt.Sprintf("%s-%d", uuid.NewString(), time.Now().UnixNano())
}

// Key builds the stable lock-key contract for a reservation slot.
func Key(tableID uint, date string, slot int) string {
	return fmt.Sprintf("lock:reservation:%d:%s:%d", tableID, date, slot)
}

// Acquire attempts a single atomic "set if absent with expiry". It
// returns true only when no prior holder existed.
func (s *Service) Acquire(ctx context.Context, key, ownerToken string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, ownerToken, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLockUnavailable, err)
	}
	return ok, nil
}

// AcquireWithRetry repeats Acquire up to attempts times with linear
// backoff, never blocking indefinitely. It returns false (not an error)
// if every attempt fails to acquire because another owner holds the
// lock; it returns ErrLockUnavailable if Redis itself is unreachable.
func (s *Service) AcquireWithRetry(ctx context.Context, key, ownerToken string, ttl time.Duration, attempts int, backoff time.Duration) (bool, error) {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		ok, err := s.Acquire(ctx, key, ownerToken, ttl)
		if err != nil {
			lastErr = err
		} else if ok {
			return true, nil
		}

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(time.Duration(attempt) * backoff):
			}
		}
	}
	if lastErr != nil {
		return false, lastErr
	}
	return false, nil
}

// Release performs an atomic compare-and-delete: the key is only removed
// if its current value equals ownerToken. A release from a stale owner
// (whose TTL already elapsed and whose lock was re-taken) is a no-op,
// never returning an error to the caller.
func (s *Service) Release(ctx context.Context, key, ownerToken string) (bool, error) {
	res, err := releaseScript.Run(ctx, s.rdb, []string{key}, ownerToken).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLockUnavailable, err)
	}
	return res == 1, nil
}

// Extend atomically resets the lock's TTL iff ownerToken still matches.
func (s *Service) Extend(ctx context.Context, key, ownerToken string, additionalTTL time.Duration) (bool, error) {
	res, err := extendScript.Run(ctx, s.rdb, []string{key}, ownerToken, additionalTTL.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLockUnavailable, err)
	}
	return res == 1, nil
}

// ReleaseBestEffort releases the lock and logs, but never returns an
// error: per the reservation engine's post-commit contract, a release
// failure (owner-token mismatch because the TTL already expired) is
// expected under load and is not a correctness problem — it is logged as
// a warning only.
func (s *Service) ReleaseBestEffort(ctx context.Context, key, ownerToken string) {
	released, err := s.Release(ctx, key, ownerToken)
	if err != nil {
		logger.Warn("lock release failed", zap.String("key", key), zap.Error(err))
		return
	}
	if !released {
		logger.Warn("lock release was a no-op: owner token mismatch (TTL likely already expired)",
			zap.String("key", key))
	}
}
