package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key holding the shared snapshot.
const DefaultRedisKey = "reelshop:recommend:snapshot"

// RedisSlot keeps the snapshot in Redis so every replica serves the same
// cached result. The key expires after the cache TTL.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// ConnectRedis builds a client from a redis:// URL or a host:port address.
func ConnectRedis(addr string, db int) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, DB: db}), nil
}

// NewRedisSlot stores the snapshot under key, expiring after ttl.
func NewRedisSlot(client *redis.Client, key string, ttl time.Duration) *RedisSlot {
	if key == "" {
		key = DefaultRedisKey
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisSlot{client: client, key: key, ttl: ttl}
}

// Load decodes the held snapshot; a missing key is a miss, not an error.
func (r *RedisSlot) Load(ctx context.Context) (Snapshot, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("get %s: %w", r.key, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Store writes the snapshot inside a WATCH/MULTI transaction so a newer
// snapshot written concurrently by another replica is never overwritten.
func (r *RedisSlot) Store(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, r.key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var held Snapshot
			if json.Unmarshal(current, &held) == nil && snap.ComputedAt.Before(held.ComputedAt) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, raw, r.ttl)
			return nil
		})
		return err
	}, r.key)

	if errors.Is(err, redis.TxFailedErr) {
		slog.Debug("[Recommend] Concurrent snapshot write won, discarding ours", "key", r.key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (r *RedisSlot) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
