// Package query reduces redundant reads against the same logical resource.
// It layers a time-boxed cache and in-flight request cancellation over
// caller-supplied fetch functions, and compiles filter sets onto the backing
// store boundary.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTTL        = 5 * time.Minute
	DefaultMaxEntries = 1000
)

// FetchFunc loads the value for a cache key. The context is cancelled when a
// newer call for the same key supersedes this one.
type FetchFunc func(ctx context.Context) (any, error)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type entry struct {
	value    any
	storedAt time.Time
}

// handle tracks the single in-flight fetch allowed per key. The pointer
// identity doubles as the generation check: a result is only committed while
// its handle is still the current one for the key.
type handle struct {
	cancel context.CancelFunc
}

type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	inflight map[string]*handle

	ttl        time.Duration
	maxEntries int
	clock      Clock

	sweepEvery time.Duration
	done       chan struct{}
	closeOnce  sync.Once
}

type Option func(*Cache)

// WithTTL overrides the default freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries bounds the cache. Zero disables the bound.
func WithMaxEntries(n int) Option {
	return func(c *Cache) { c.maxEntries = n }
}

// WithClock swaps the time source, which makes freshness deterministic in
// tests.
func WithClock(clock Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithSweep starts a background loop that purges stale entries on the given
// interval. Close must be called to stop it.
func WithSweep(interval time.Duration) Option {
	return func(c *Cache) { c.sweepEvery = interval }
}

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		inflight:   make(map[string]*handle),
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		clock:      realClock{},
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sweepEvery > 0 {
		go c.sweep()
	}
	return c
}

// Close stops the background sweeper, if one was started.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Execute returns the cached value for key while it is fresh. Otherwise it
// cancels any fetch already running for the key, runs fetch, stores the
// result and returns it. A superseded fetch that completes late never
// overwrites the newer result.
func (c *Cache) Execute(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	return c.ExecuteTTL(ctx, key, fetch, c.ttl)
}

// ExecuteTTL is Execute with a per-call freshness window.
func (c *Cache) ExecuteTTL(ctx context.Context, key string, fetch FetchFunc, ttl time.Duration) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.clock.Now().Sub(e.storedAt) <= ttl {
		c.mu.Unlock()
		return e.value, nil
	}

	if prev, ok := c.inflight[key]; ok {
		prev.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	h := &handle{cancel: cancel}
	c.inflight[key] = h
	c.mu.Unlock()

	value, err := fetch(fetchCtx)
	cancel()

	c.mu.Lock()
	current := c.inflight[key] == h
	if current {
		delete(c.inflight, key)
		if err == nil {
			c.storeLocked(key, value)
		}
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return value, nil
}

// Lookup pairs a cache key with the fetch that loads it.
type Lookup struct {
	Key   string
	Fetch FetchFunc
}

// Batch runs every lookup through Execute concurrently. A failed lookup maps
// its key to nil; it never aborts the siblings.
func (c *Cache) Batch(ctx context.Context, lookups []Lookup) map[string]any {
	results := make(map[string]any, len(lookups))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, lookup := range lookups {
		wg.Add(1)
		go func(lookup Lookup) {
			defer wg.Done()

			value, err := c.Execute(ctx, lookup.Key, lookup.Fetch)
			if err != nil {
				zap.S().Debugw("batch lookup failed", "key", lookup.Key, "error", err)
				value = nil
			}
			mu.Lock()
			results[lookup.Key] = value
			mu.Unlock()
		}(lookup)
	}
	wg.Wait()

	return results
}

// Clear removes the named keys, or every entry when no keys are given.
func (c *Cache) Clear(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.entries = make(map[string]entry)
		return
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// ClearPrefix removes every entry whose key starts with prefix.
func (c *Cache) ClearPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of entries currently held, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) storeLocked(key string, value any) {
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictLocked()
		}
	}
	c.entries[key] = entry{value: value, storedAt: c.clock.Now()}
}

// evictLocked frees one slot: stale entries go first, then the oldest entry.
func (c *Cache) evictLocked() {
	now := c.clock.Now()
	purged := false
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, key)
			purged = true
		}
	}
	if purged {
		return
	}

	var (
		oldestKey string
		oldestAt  time.Time
		first     = true
	)
	for key, e := range c.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt = key, e.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(c.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := c.clock.Now()
			for key, e := range c.entries {
				if now.Sub(e.storedAt) > c.ttl {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
