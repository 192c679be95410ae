package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/apexfit/fitscore/internal/domain/thresholds"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// Default cache configuration constants.
const (
	defaultCacheTTL  = time.Hour
	defaultCacheSize = 10_000
)

// cacheEntry memoizes one lookup result. Not-found results are cached too,
// so a missing standard does not hammer the backing store.
type cacheEntry struct {
	band     thresholds.Band
	notFound bool
	expires  time.Time
}

// CachedStore memoizes another Store's lookups with a TTL.
// Safe for concurrent use.
type CachedStore struct {
	delegate Store

	mu      sync.RWMutex
	entries map[string]cacheEntry

	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewCachedStore wraps delegate with a TTL-memoizing cache.
func NewCachedStore(delegate Store, opts ...Option) *CachedStore {
	c := &CachedStore{
		delegate: delegate,
		entries:  make(map[string]cacheEntry),
		ttl:      defaultCacheTTL,
		maxSize:  defaultCacheSize,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetStandard serves from the cache when fresh, consulting the delegate on
// a miss or expiry. Delegate errors other than ErrNotFound are not cached.
func (c *CachedStore) GetStandard(ctx context.Context, key Key) (thresholds.Band, error) {
	ck := key.String()

	c.mu.RLock()
	entry, ok := c.entries[ck]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expires) {
		metrics.RecordStandardsCacheHit()
		if entry.notFound {
			return thresholds.Band{}, ErrNotFound
		}
		return entry.band, nil
	}

	metrics.RecordStandardsCacheMiss()
	band, err := c.delegate.GetStandard(ctx, key)
	switch {
	case err == nil:
		c.put(ck, cacheEntry{band: band, expires: c.now().Add(c.ttl)})
		return band, nil
	case errors.Is(err, ErrNotFound):
		c.put(ck, cacheEntry{notFound: true, expires: c.now().Add(c.ttl)})
		return thresholds.Band{}, ErrNotFound
	default:
		metrics.RecordStandardsError()
		return thresholds.Band{}, err
	}
}

// put stores an entry, evicting stale rows when the cache is full.
func (c *CachedStore) put(key string, entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		now := c.now()
		for k, e := range c.entries {
			if now.After(e.expires) {
				delete(c.entries, k)
			}
		}
		// Still full after sweeping: evict one arbitrary entry.
		if len(c.entries) >= c.maxSize {
			for k := range c.entries {
				delete(c.entries, k)
				break
			}
		}
	}

	c.entries[key] = entry
}

// Len returns the number of memoized entries, expired ones included.
func (c *CachedStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Invalidate drops a single memoized lookup.
func (c *CachedStore) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key.String())
}
