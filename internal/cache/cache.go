// Package cache holds query results for their time-to-live.
package cache

import (
	"sync"
	"time"

	"github.com/scout/api/internal/event"
)

// Clock abstracts time for testing.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type entry struct {
	events   []event.Event
	storedAt time.Time
}

// Cache maps normalized query strings to event lists. Expiry is checked on
// read, so a stale entry behaves as a miss; Sweep removes stale entries in
// bulk and should be called periodically. Writes past the size bound evict
// the oldest entry first.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	clock      Clock
}

// New creates a Cache with the given TTL and size bound. A maxEntries of zero
// or less means unbounded.
func New(ttl time.Duration, maxEntries int) *Cache {
	return NewWithClock(ttl, maxEntries, realClock{})
}

// NewWithClock creates a Cache with an injected clock, mainly for tests.
func NewWithClock(ttl time.Duration, maxEntries int, clock Clock) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Get returns the events stored under key if the entry is still within its
// TTL. Expired entries are treated as absent but left for Sweep to collect.
func (c *Cache) Get(key string) ([]event.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.events, true
}

// Set stores events under key, overwriting any previous entry. Concurrent
// writers for the same key are not coordinated; last write wins.
func (c *Cache) Set(key string, events []event.Event) {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = entry{events: events, storedAt: now}
}

// Sweep removes expired entries and returns how many were dropped.
func (c *Cache) Sweep() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
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
