package cache

import (
	"sync"
	"time"
)

// The janitor only needs to reclaim entries nobody asked for again, since
// expired entries are already dropped on read. Stats responses live for a
// minute, so a couple of minutes between sweeps is enough.
const memCacheSweepInterval = 2 * time.Minute

// MemCache is a small in-process cache sitting in front of redis on the
// stats read path. It absorbs bursts of requests for the same match or
// player so repeated hits within the TTL never leave the process.
type MemCache struct {
	mu      sync.RWMutex
	entries map[string]memCacheEntry

	stop chan struct{}
	done chan struct{}
}

type memCacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates the cache and starts its sweep worker.
func NewMemCache() *MemCache {
	mc := &MemCache{
		entries: make(map[string]memCacheEntry),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go mc.sweepLoop()

	return mc
}

// sweepLoop removes expired entries on a fixed cadence until Close is called.
func (mc *MemCache) sweepLoop() {
	defer close(mc.done)

	ticker := time.NewTicker(memCacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.stop:
			return
		}
	}
}

// sweep drops every entry past its expiration.
func (mc *MemCache) sweep() {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	for key, entry := range mc.entries {
		if now.After(entry.expiresAt) {
			delete(mc.entries, key)
		}
	}
}

// Close stops the sweep worker and waits for it to finish.
func (mc *MemCache) Close() {
	close(mc.stop)
	<-mc.done
}

// Get returns the value under the key, or nil on a miss or expired entry.
func (mc *MemCache) Get(key string) any {
	mc.mu.RLock()
	entry, exists := mc.entries[key]
	mc.mu.RUnlock()

	if !exists {
		return nil
	}

	// Expired entries are left for the sweep worker to collect.
	if time.Now().After(entry.expiresAt) {
		return nil
	}

	return entry.value
}

// Set stores the value under the key for the given TTL.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries[key] = memCacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}
