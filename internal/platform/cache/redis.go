package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// mirrorRetention keeps mirrored entries long enough to provide
// stale-fallback material across a process restart, well past the longest
// tier TTL.
const mirrorRetention = 24 * time.Hour

// NewRedisClient connects to Redis at addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// RedisMirror copies cache entries to Redis so a restarted process starts
// warm instead of cold. It is strictly best-effort: every operation
// tolerates a missing or failing Redis, and a nil mirror disables
// mirroring entirely. Memory remains the source of truth.
type RedisMirror struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisMirror creates a mirror over rdb. If namespace is empty it uses
// "tedash". A nil rdb yields a nil mirror, which callers treat as
// mirroring disabled.
func NewRedisMirror(rdb *redis.Client, namespace string) *RedisMirror {
	if rdb == nil {
		return nil
	}
	if namespace == "" {
		namespace = "tedash"
	}
	return &RedisMirror{rdb: rdb, namespace: namespace}
}

// mirrorEnvelope wraps a payload with its fetch timestamp for storage.
type mirrorEnvelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

func (r *RedisMirror) key(fingerprint string) string {
	return r.namespace + ":" + fingerprint
}

// Store copies an entry to Redis, logging and moving on if it cannot.
func (r *RedisMirror) Store(ctx context.Context, fingerprint string, e Entry) {
	if r == nil {
		return
	}
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		slog.Warn("cache mirror marshal failed", "fingerprint", fingerprint, "error", err)
		return
	}
	env, err := json.Marshal(mirrorEnvelope{FetchedAt: e.FetchedAt, Payload: payload})
	if err != nil {
		slog.Warn("cache mirror marshal failed", "fingerprint", fingerprint, "error", err)
		return
	}
	if err := r.rdb.Set(ctx, r.key(fingerprint), env, mirrorRetention).Err(); err != nil {
		slog.Warn("cache mirror store failed", "fingerprint", fingerprint, "error", err)
	}
}

// Load retrieves a mirrored payload and its fetch time. ok is false when
// the entry is absent, corrupt, or Redis is unreachable.
func (r *RedisMirror) Load(ctx context.Context, fingerprint string) (payload []byte, fetchedAt time.Time, ok bool) {
	if r == nil {
		return nil, time.Time{}, false
	}
	b, err := r.rdb.Get(ctx, r.key(fingerprint)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cache mirror load failed", "fingerprint", fingerprint, "error", err)
		}
		return nil, time.Time{}, false
	}
	var env mirrorEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		// Corrupt entry: drop it so the next store starts clean.
		_ = r.rdb.Del(ctx, r.key(fingerprint)).Err()
		return nil, time.Time{}, false
	}
	return env.Payload, env.FetchedAt, true
}

// Clear deletes every mirrored entry in the namespace using SCAN.
func (r *RedisMirror) Clear(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var cursor uint64
	pattern := r.namespace + ":*"
	for {
		keys, cur, err := r.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}
