package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedSessionsMemory remembers revoked token ids in process memory.
type RevokedSessionsMemory struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

// NewRevokedSessionsMemory creates an empty store.
func NewRevokedSessionsMemory() *RevokedSessionsMemory {
	return &RevokedSessionsMemory{until: make(map[string]time.Time), now: time.Now}
}

// Revoke records tokenID until the given time. Expired ids are purged on the way.
func (s *RevokedSessionsMemory) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.until {
		if !now.Before(exp) {
			delete(s.until, id)
		}
	}
	if now.Before(until) {
		s.until[tokenID] = until
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not expired yet.
func (s *RevokedSessionsMemory) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.until[tokenID]
	return ok && s.now().Before(exp), nil
}

// RevokedSessionsRedis stores revoked token ids as expiring Redis keys.
type RevokedSessionsRedis struct {
	client *redis.Client
	now    func() time.Time
}

// NewRevokedSessionsRedis creates a Redis backed store.
func NewRevokedSessionsRedis(client *redis.Client) *RevokedSessionsRedis {
	return &RevokedSessionsRedis{client: client, now: time.Now}
}

func revokedKey(tokenID string) string {
	return "session:revoked:" + tokenID
}

// Revoke sets a key that expires together with the token.
func (s *RevokedSessionsRedis) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

// IsRevoked checks for the revocation key.
func (s *RevokedSessionsRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
