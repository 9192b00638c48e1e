package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemoryCache() (*CompanyListMemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCompanyListMemoryCache(DefaultCompanyListTTL)
	c.now = clock.Now
	return c, clock
}

var acme = []models.Company{{ID: 1, Name: "Acme"}}

func TestCompanyListMemoryCache_MissThenHit(t *testing.T) {
	c, _ := newTestMemoryCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, gen, acme))

	got, found, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, acme, got)
}

func TestCompanyListMemoryCache_SlidingExpiration(t *testing.T) {
	c, clock := newTestMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, acme))

	// each access inside the window restarts the countdown
	for i := 0; i < 3; i++ {
		clock.Advance(9 * time.Minute)
		_, found, _ := c.Get(ctx)
		assert.True(t, found, "access %d", i)
	}

	clock.Advance(10 * time.Minute)
	_, found, _ := c.Get(ctx)
	assert.False(t, found)
}

func TestCompanyListMemoryCache_Invalidate(t *testing.T) {
	c, _ := newTestMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, acme))
	require.NoError(t, c.Invalidate(ctx))

	_, found, _ := c.Get(ctx)
	assert.False(t, found)
}

func TestCompanyListMemoryCache_StaleSetDropped(t *testing.T) {
	c, _ := newTestMemoryCache()
	ctx := context.Background()

	gen, _ := c.Generation(ctx)
	// a write lands while the reader is still fetching
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, gen, acme))

	_, found, _ := c.Get(ctx)
	assert.False(t, found)
}

func TestCompanyListMemoryCache_ReturnsCopy(t *testing.T) {
	c, _ := newTestMemoryCache()
	ctx := context.Background()

	in := []models.Company{{ID: 1, Name: "Acme"}}
	require.NoError(t, c.Set(ctx, 0, in))
	in[0].Name = "mutated"

	got, _, _ := c.Get(ctx)
	got[0].Name = "mutated again"

	again, _, _ := c.Get(ctx)
	assert.Equal(t, "Acme", again[0].Name)
}

func TestCompanyListMemoryCache_Concurrent(t *testing.T) {
	c := NewCompanyListMemoryCache(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			gen, _ := c.Generation(ctx)
			_ = c.Set(ctx, gen, acme)
		}()
		go func() {
			defer wg.Done()
			if got, found, _ := c.Get(ctx); found {
				assert.Equal(t, acme, got)
			}
		}()
		go func() {
			defer wg.Done()
			_ = c.Invalidate(ctx)
		}()
	}
	wg.Wait()
}

func TestRevokedSessionsMemory(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	s := NewRevokedSessionsMemory()
	s.now = clock.Now
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "a", clock.Now().Add(time.Hour)))
	require.NoError(t, s.Revoke(ctx, "past", clock.Now().Add(-time.Second)))

	revoked, _ := s.IsRevoked(ctx, "a")
	assert.True(t, revoked)
	revoked, _ = s.IsRevoked(ctx, "past")
	assert.False(t, revoked)
	revoked, _ = s.IsRevoked(ctx, "unknown")
	assert.False(t, revoked)

	clock.Advance(2 * time.Hour)
	revoked, _ = s.IsRevoked(ctx, "a")
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "b", clock.Now().Add(time.Hour)))
	assert.Len(t, s.until, 1)
}
