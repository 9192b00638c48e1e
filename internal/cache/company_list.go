// Package cache holds the single-entry company list cache and the store of
// revoked session ids, each with an in-process and a Redis implementation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

// DefaultCompanyListTTL is the sliding expiration of the company list entry.
const DefaultCompanyListTTL = 10 * time.Minute

// CompanyListMemoryCache keeps the company list in process memory.
// Every hit pushes the expiry ttl into the future.
//
// The generation counter moves on every Invalidate; Set is dropped when the
// caller's generation is stale, so a slow reader cannot write back a list
// fetched before a concurrent write.
type CompanyListMemoryCache struct {
	mu         sync.Mutex
	companies  []models.Company
	cached     bool
	expiresAt  time.Time
	generation uint64
	ttl        time.Duration
	now        func() time.Time
}

// NewCompanyListMemoryCache creates an empty in-memory cache.
func NewCompanyListMemoryCache(ttl time.Duration) *CompanyListMemoryCache {
	return &CompanyListMemoryCache{ttl: ttl, now: time.Now}
}

// Get returns the cached list and slides its expiry.
func (c *CompanyListMemoryCache) Get(ctx context.Context) ([]models.Company, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.cached || !now.Before(c.expiresAt) {
		c.cached = false
		c.companies = nil
		return nil, false, nil
	}
	c.expiresAt = now.Add(c.ttl)
	return cloneCompanies(c.companies), true, nil
}

// Generation returns the current invalidation generation.
func (c *CompanyListMemoryCache) Generation(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, nil
}

// Set stores companies unless the cache was invalidated after generation was read.
func (c *CompanyListMemoryCache) Set(ctx context.Context, generation uint64, companies []models.Company) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return nil
	}
	c.companies = cloneCompanies(companies)
	c.cached = true
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the entry.
func (c *CompanyListMemoryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.companies = nil
	c.cached = false
	c.generation++
	return nil
}

func cloneCompanies(in []models.Company) []models.Company {
	if in == nil {
		return nil
	}
	out := make([]models.Company, len(in))
	copy(out, in)
	return out
}

const (
	companyListKey           = "companies:all"
	companyListGenerationKey = "companies:all:generation"
)

// CompanyListRedisCache keeps the company list in Redis so that every
// instance of the service shares one entry.
type CompanyListRedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCompanyListRedisCache creates a Redis backed cache.
func NewCompanyListRedisCache(client *redis.Client, ttl time.Duration) *CompanyListRedisCache {
	return &CompanyListRedisCache{client: client, ttl: ttl}
}

// Get reads the entry with GETEX so that a hit resets its TTL.
func (r *CompanyListRedisCache) Get(ctx context.Context) ([]models.Company, bool, error) {
	val, err := r.client.GetEx(ctx, companyListKey, r.ttl).Bytes()
	if err != nil {
		logger.Log.Infow("company list cache get", "key", companyListKey, "result", "miss", "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var companies []models.Company
	if err := json.Unmarshal(val, &companies); err != nil {
		logger.Log.Infow("company list cache get", "key", companyListKey, "size", len(val), "result", "corrupt", "error", err)
		return nil, false, err
	}

	logger.Log.Infow("company list cache get", "key", companyListKey, "result", "hit", "count", len(companies))
	return companies, true, nil
}

// Generation returns the current invalidation generation (0 before the first write).
func (r *CompanyListRedisCache) Generation(ctx context.Context) (uint64, error) {
	gen, err := r.client.Get(ctx, companyListGenerationKey).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores companies in a WATCH transaction on the generation key; the
// write is skipped when an invalidation happened in between.
func (r *CompanyListRedisCache) Set(ctx context.Context, generation uint64, companies []models.Company) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, companyListGenerationKey).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, companyListKey, data, r.ttl)
			return nil
		})
		return err
	}, companyListGenerationKey)

	if errors.Is(err, redis.TxFailedErr) {
		err = nil
	}

	logger.Log.Infow("company list cache set", "key", companyListKey, "generation", generation, "count", len(companies), "error", err)
	return err
}

// Invalidate deletes the entry and bumps the generation atomically.
func (r *CompanyListRedisCache) Invalidate(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, companyListKey)
		pipe.Incr(ctx, companyListGenerationKey)
		return nil
	})

	logger.Log.Infow("company list cache invalidate", "key", companyListKey, "result", "invalidated", "error", err)
	return err
}
