package spdlog

import (
	"sync"
	"time"
)

// offsetCacheWindow is how stale a cached UTC offset may get before the
// offset directive recomputes it.
const offsetCacheWindow = 5 * time.Second

// offsetCache is a time-windowed cache of the local UTC offset in minutes.
// Zone lookups are cheap but not free; one process-wide cell amortizes them
// across every formatter. It is the only shared mutable state in the render
// path, so the read-check-update sequence stays under one mutex.
type offsetCache struct {
	mu          sync.Mutex
	lastRefresh time.Time
	minutes     int
	window      time.Duration
	query       func(time.Time) int
}

func newOffsetCache(window time.Duration, query func(time.Time) int) *offsetCache {
	return &offsetCache{window: window, query: query}
}

// offsetMinutes returns the cached offset for t, refreshing it when t is at
// least one window past the previous refresh. Timestamps that step backward
// keep the cached value.
func (c *offsetCache) offsetMinutes(t time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Sub(c.lastRefresh) >= c.window {
		c.minutes = c.query(t)
		c.lastRefresh = t
	}
	return c.minutes
}

// localOffsetMinutes is the real zone query. Time.Zone cannot fail; a zoned
// time always carries its offset.
func localOffsetMinutes(t time.Time) int {
	_, seconds := t.Zone()
	return seconds / 60
}

// utcOffsets is the single named cell shared by every %z directive.
var utcOffsets = newOffsetCache(offsetCacheWindow, localOffsetMinutes)
