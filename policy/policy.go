// Package policy implements cache replacement and admission policies driven
// by a frequency sketch.
//
// A policy owns the admission and eviction bookkeeping of a host cache but
// not its value storage; the host is driven through the minimal Cache
// capability. Frequency questions go to an Estimator, typically an evolving
// sketch shared between the policy and the workload.
package policy

import "github.com/rs/zerolog/log"

// Estimator is the frequency oracle a policy consults. Update records one
// occurrence of a key; Estimate returns its approximate (possibly
// time-decayed) frequency.
type Estimator[K comparable] interface {
	Update(key K)
	Estimate(key K) float32
}

// Cache is the minimal host-cache capability a policy drives.
type Cache[K comparable, V any] interface {
	Contains(key K) bool
	Get(key K) (V, bool)
	Put(key K, value V)
	Remove(key K)
	IsFull() bool
}

// ReplacementPolicy decides what a host cache admits and evicts. HandleCacheHit
// must be called when a requested key is cached, HandleCacheMiss when it is
// not; the miss handler evicts as needed and inserts the new entry.
type ReplacementPolicy[K comparable, V any] interface {
	HandleCacheHit(key K)
	HandleCacheMiss(cache Cache[K, V], key K, value V)
}

// MapCache is a map-backed Cache used by tests and hit-ratio experiments.
// It never rejects an operation; suspicious ones (inserting into a full
// cache, removing a missing key) are logged, since a correct policy keeps
// the cache within capacity.
type MapCache[K comparable, V any] struct {
	capacity int
	items    map[K]V
}

var _ Cache[int, int] = (*MapCache[int, int])(nil)

// NewMapCache creates a MapCache holding at most capacity entries.
func NewMapCache[K comparable, V any](capacity int) *MapCache[K, V] {
	return &MapCache[K, V]{capacity: capacity, items: make(map[K]V, capacity)}
}

// Contains reports whether key is cached.
func (c *MapCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Get returns the cached value for key.
func (c *MapCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}

// Put inserts or replaces the value for key.
func (c *MapCache[K, V]) Put(key K, value V) {
	if _, ok := c.items[key]; !ok && len(c.items) >= c.capacity {
		log.Warn().
			Any("key", key).
			Int("size", len(c.items)).
			Int("capacity", c.capacity).
			Msg("mapcache: suspicious insertion into a full cache")
	}
	c.items[key] = value
}

// Remove deletes key from the cache.
func (c *MapCache[K, V]) Remove(key K) {
	if _, ok := c.items[key]; !ok {
		log.Warn().Any("key", key).Msg("mapcache: suspicious removal of a missing key")
	}
	delete(c.items, key)
}

// IsFull reports whether the cache is at capacity.
func (c *MapCache[K, V]) IsFull() bool { return len(c.items) >= c.capacity }

// Len returns the number of cached entries.
func (c *MapCache[K, V]) Len() int { return len(c.items) }
