package policy

// FIFO evicts in insertion order, ignoring recency and frequency. It serves
// as the simplest baseline for the frequency-aware policies.
type FIFO[K comparable, V any] struct {
	buf  []K // ring buffer of cached keys, oldest at head
	head int
	size int
}

var _ ReplacementPolicy[int, int] = (*FIFO[int, int])(nil)

// NewFIFO creates a FIFO policy for a host cache of the given capacity.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity < 1 {
		panic("policy: capacity must be at least 1")
	}
	return &FIFO[K, V]{buf: make([]K, capacity)}
}

// HandleCacheHit does nothing.
func (p *FIFO[K, V]) HandleCacheHit(K) {}

// HandleCacheMiss admits key, evicting the oldest cached key when the host
// is full.
func (p *FIFO[K, V]) HandleCacheMiss(cache Cache[K, V], key K, value V) {
	if cache.IsFull() {
		cache.Remove(p.dequeue())
	}
	cache.Put(key, value)
	p.enqueue(key)
}

func (p *FIFO[K, V]) enqueue(key K) {
	if p.size == len(p.buf) {
		panic("policy: fifo enqueue past capacity")
	}
	p.buf[(p.head+p.size)%len(p.buf)] = key
	p.size++
}

func (p *FIFO[K, V]) dequeue() K {
	if p.size == 0 {
		panic("policy: fifo dequeue from empty queue")
	}
	key := p.buf[p.head]
	p.head = (p.head + 1) % len(p.buf)
	p.size--
	return key
}
