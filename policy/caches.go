package policy

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/coocood/freecache"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jellydator/ttlcache/v3"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Host-cache adapters over common in-process cache libraries. Each one
// satisfies the Cache capability so a ReplacementPolicy can drive it. The
// adapters report fullness against the policy's entry capacity, not the
// library's internal limits; the policy is expected to evict before
// inserting, so the libraries' own eviction never fires.

// LRUCache adapts hashicorp/golang-lru.
type LRUCache[K comparable, V any] struct {
	capacity int
	inner    *lru.Cache[K, V]
}

var _ Cache[string, []byte] = (*LRUCache[string, []byte])(nil)

// NewLRUCache creates an LRU-backed host cache holding capacity entries.
func NewLRUCache[K comparable, V any](capacity int) (*LRUCache[K, V], error) {
	inner, err := lru.New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &LRUCache[K, V]{capacity: capacity, inner: inner}, nil
}

func (c *LRUCache[K, V]) Contains(key K) bool { return c.inner.Contains(key) }
func (c *LRUCache[K, V]) Get(key K) (V, bool) { return c.inner.Get(key) }
func (c *LRUCache[K, V]) Put(key K, value V)  { c.inner.Add(key, value) }
func (c *LRUCache[K, V]) Remove(key K)        { c.inner.Remove(key) }
func (c *LRUCache[K, V]) IsFull() bool        { return c.inner.Len() >= c.capacity }

// TTLCache adapts jellydator/ttlcache. Entries expire after ttl on top of
// the policy's eviction decisions.
type TTLCache[K comparable, V any] struct {
	capacity int
	inner    *ttlcache.Cache[K, V]
}

var _ Cache[string, []byte] = (*TTLCache[string, []byte])(nil)

// NewTTLCache creates a TTL-backed host cache holding capacity entries.
func NewTTLCache[K comparable, V any](capacity int, ttl time.Duration) *TTLCache[K, V] {
	inner := ttlcache.New[K, V](
		ttlcache.WithTTL[K, V](ttl),
		ttlcache.WithCapacity[K, V](uint64(capacity)),
		ttlcache.WithDisableTouchOnHit[K, V](),
	)
	return &TTLCache[K, V]{capacity: capacity, inner: inner}
}

func (c *TTLCache[K, V]) Contains(key K) bool { return c.inner.Has(key) }

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	item := c.inner.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

func (c *TTLCache[K, V]) Put(key K, value V) { c.inner.Set(key, value, ttlcache.DefaultTTL) }
func (c *TTLCache[K, V]) Remove(key K)       { c.inner.Delete(key) }
func (c *TTLCache[K, V]) IsFull() bool       { return c.inner.Len() >= c.capacity }

// GoCache adapts patrickmn/go-cache. Keys are strings by the library's
// design. A non-positive ttl disables expiration.
type GoCache[V any] struct {
	capacity int
	inner    *gocache.Cache
}

var _ Cache[string, []byte] = (*GoCache[[]byte])(nil)

// NewGoCache creates a go-cache-backed host cache holding capacity entries.
func NewGoCache[V any](capacity int, ttl time.Duration) *GoCache[V] {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &GoCache[V]{capacity: capacity, inner: gocache.New(ttl, 0)}
}

func (c *GoCache[V]) Contains(key string) bool {
	_, ok := c.inner.Get(key)
	return ok
}

func (c *GoCache[V]) Get(key string) (V, bool) {
	v, ok := c.inner.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (c *GoCache[V]) Put(key string, value V) { c.inner.Set(key, value, gocache.DefaultExpiration) }
func (c *GoCache[V]) Remove(key string)       { c.inner.Delete(key) }
func (c *GoCache[V]) IsFull() bool            { return c.inner.ItemCount() >= c.capacity }

// FreeCacheStore adapts coocood/freecache. Values are byte slices; the
// underlying cache is sized in bytes while fullness is counted in entries.
type FreeCacheStore struct {
	capacity int
	inner    *freecache.Cache
}

var _ Cache[string, []byte] = (*FreeCacheStore)(nil)

// NewFreeCacheStore creates a freecache-backed host cache holding capacity
// entries in sizeBytes of memory.
func NewFreeCacheStore(capacity, sizeBytes int) *FreeCacheStore {
	return &FreeCacheStore{capacity: capacity, inner: freecache.NewCache(sizeBytes)}
}

func (c *FreeCacheStore) Contains(key string) bool {
	_, err := c.inner.Get([]byte(key))
	return err == nil
}

func (c *FreeCacheStore) Get(key string) ([]byte, bool) {
	v, err := c.inner.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return v, true
}

func (c *FreeCacheStore) Put(key string, value []byte) {
	if err := c.inner.Set([]byte(key), value, 0); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("freecache: set failed")
	}
}

func (c *FreeCacheStore) Remove(key string) { c.inner.Del([]byte(key)) }
func (c *FreeCacheStore) IsFull() bool      { return int(c.inner.EntryCount()) >= c.capacity }

// BigCacheStore adapts allegro/bigcache. Values are byte slices.
type BigCacheStore struct {
	capacity int
	inner    *bigcache.BigCache
}

var _ Cache[string, []byte] = (*BigCacheStore)(nil)

// NewBigCacheStore creates a bigcache-backed host cache holding capacity
// entries, with the library's default configuration for the given life
// window.
func NewBigCacheStore(ctx context.Context, capacity int, lifeWindow time.Duration) (*BigCacheStore, error) {
	inner, err := bigcache.New(ctx, bigcache.DefaultConfig(lifeWindow))
	if err != nil {
		return nil, err
	}
	return &BigCacheStore{capacity: capacity, inner: inner}, nil
}

func (c *BigCacheStore) Contains(key string) bool {
	_, err := c.inner.Get(key)
	return err == nil
}

func (c *BigCacheStore) Get(key string) ([]byte, bool) {
	v, err := c.inner.Get(key)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (c *BigCacheStore) Put(key string, value []byte) {
	if err := c.inner.Set(key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("bigcache: set failed")
	}
}

func (c *BigCacheStore) Remove(key string) {
	if err := c.inner.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		log.Warn().Err(err).Str("key", key).Msg("bigcache: delete failed")
	}
}

func (c *BigCacheStore) IsFull() bool { return c.inner.Len() >= c.capacity }
