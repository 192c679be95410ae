package repository

import "time"

// Option applies a configuration option to the CachedStore.
type Option func(*CachedStore)

// WithTTL sets how long a memoized lookup stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *CachedStore) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxSize bounds the number of memoized entries.
func WithMaxSize(size int) Option {
	return func(c *CachedStore) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// WithNow overrides the clock. Test hook.
func WithNow(now func() time.Time) Option {
	return func(c *CachedStore) {
		if now != nil {
			c.now = now
		}
	}
}
