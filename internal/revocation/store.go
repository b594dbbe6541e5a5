// Package revocation keeps the set of blacklisted access tokens in Redis.
// Entries are keyed by a SHA-256 digest of the token (the store never holds
// raw bearer tokens) and expire on their own at the token's natural expiry,
// so no background cleanup is needed.
package revocation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/security"
)

const (
	keyPrefix    = "blacklist:token:"
	reasonLogout = "logout"
	opTimeout    = 2 * time.Second
)

// Entry is the stored record for one blacklisted token.
type Entry struct {
	UserID        int64     `json:"user_id"`
	BlacklistedAt time.Time `json:"blacklisted_at"`
	Reason        string    `json:"reason"`
}

// Store is the revocation interface the session service and HTTP ingress use.
type Store interface {
	// Blacklist revokes the token until expiresAt. Errors surface to the
	// caller: a logout must not report success when the write failed.
	Blacklist(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	// IsBlacklisted reports whether the token has been revoked. Store errors
	// fail open (returns false) so an unavailable Redis does not take down
	// every authenticated request; the error is logged, never propagated.
	IsBlacklisted(ctx context.Context, token string) bool
}

// kv is the subset of redis.Client operations the store needs. *redis.Client
// satisfies it; tests substitute a fake.
type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore implements Store on a shared Redis instance.
type RedisStore struct {
	client kv
	logger zerolog.Logger
	// minTTL is the floor applied to entry TTLs so tokens blacklisted in
	// their final seconds of life still register despite clock jitter.
	minTTL time.Duration
}

// NewRedisStore returns a Store backed by client. minTTL is the minimum entry
// lifetime; values <= 0 default to one minute.
func NewRedisStore(client kv, minTTL time.Duration, logger zerolog.Logger) *RedisStore {
	if minTTL <= 0 {
		minTTL = time.Minute
	}
	return &RedisStore{client: client, logger: logger, minTTL: minTTL}
}

// Blacklist writes {hash(token): entry} with TTL max(expiresAt-now, minTTL).
// Fails closed: any write error is returned to the caller.
func (s *RedisStore) Blacklist(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	now := time.Now().UTC()
	ttl := expiresAt.Sub(now)
	if ttl < s.minTTL {
		ttl = s.minTTL
	}
	entry := Entry{UserID: userID, BlacklistedAt: now, Reason: reasonLogout}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("revocation: marshal entry: %w", err)
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Set(opCtx, keyPrefix+security.HashToken(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("revocation: blacklist write: %w", err)
	}
	return nil
}

// IsBlacklisted checks for an entry under hash(token). Fails open on store
// errors, including timeouts.
func (s *RedisStore) IsBlacklisted(ctx context.Context, token string) bool {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	n, err := s.client.Exists(opCtx, keyPrefix+security.HashToken(token)).Result()
	if err != nil {
		s.logger.Warn().Err(err).Msg("revocation read failed; treating token as not blacklisted")
		return false
	}
	return n > 0
}
