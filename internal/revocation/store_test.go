package revocation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/security"
)

// fakeKV records Set calls and serves Exists from an in-memory map.
type fakeKV struct {
	entries map[string]fakeEntry
	setErr  error
	getErr  error
}

type fakeEntry struct {
	value []byte
	ttl   time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{entries: map[string]fakeEntry{}}
}

func (f *fakeKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.entries[key] = fakeEntry{value: value.([]byte), ttl: expiration}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.getErr != nil {
		return redis.NewIntResult(0, f.getErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.entries[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestBlacklist_ThenIsBlacklisted(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, time.Minute, zerolog.Nop())
	ctx := context.Background()

	expiresAt := time.Now().Add(10 * time.Minute)
	if err := store.Blacklist(ctx, "token-a", 7, expiresAt); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	if !store.IsBlacklisted(ctx, "token-a") {
		t.Error("IsBlacklisted(token-a) = false after Blacklist")
	}
	if store.IsBlacklisted(ctx, "token-b") {
		t.Error("IsBlacklisted(token-b) = true, never blacklisted")
	}
}

func TestBlacklist_KeyIsHashed_EntryShape(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, time.Minute, zerolog.Nop())

	if err := store.Blacklist(context.Background(), "raw-token", 9, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	wantKey := keyPrefix + security.HashToken("raw-token")
	stored, ok := kv.entries[wantKey]
	if !ok {
		t.Fatalf("entry not stored under hashed key; keys = %v", kv.entries)
	}
	var e Entry
	if err := json.Unmarshal(stored.value, &e); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if e.UserID != 9 || e.Reason != "logout" || e.BlacklistedAt.IsZero() {
		t.Errorf("entry = %+v, want user 9, reason logout, timestamp set", e)
	}
	for k := range kv.entries {
		if k == keyPrefix+"raw-token" {
			t.Error("store holds the raw token as a key")
		}
	}
}

func TestBlacklist_TTLFloor(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, 2*time.Minute, zerolog.Nop())

	// Token already in its final seconds: TTL must be floored, not near-zero.
	if err := store.Blacklist(context.Background(), "dying-token", 1, time.Now().Add(time.Second)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	stored := kv.entries[keyPrefix+security.HashToken("dying-token")]
	if stored.ttl != 2*time.Minute {
		t.Errorf("ttl = %v, want floor 2m", stored.ttl)
	}

	// Long-lived token keeps its remaining lifetime.
	if err := store.Blacklist(context.Background(), "fresh-token", 1, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	stored = kv.entries[keyPrefix+security.HashToken("fresh-token")]
	if stored.ttl < 59*time.Minute || stored.ttl > time.Hour {
		t.Errorf("ttl = %v, want ~1h", stored.ttl)
	}
}

func TestBlacklist_WriteFailsClosed(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("connection refused")
	store := NewRedisStore(kv, time.Minute, zerolog.Nop())

	if err := store.Blacklist(context.Background(), "t", 1, time.Now().Add(time.Hour)); err == nil {
		t.Error("Blacklist: expected error when the write fails")
	}
}

func TestIsBlacklisted_ReadFailsOpen(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, time.Minute, zerolog.Nop())
	if err := store.Blacklist(context.Background(), "t", 1, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	kv.getErr = errors.New("i/o timeout")
	if store.IsBlacklisted(context.Background(), "t") {
		t.Error("IsBlacklisted = true on store error, want fail-open false")
	}
}
