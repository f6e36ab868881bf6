package evolvingsketch

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"

	"github.com/Snowflyt/EvolvingSketch/adapter"
)

func benchKeys(n int) []uint64 {
	rng := rand.New(rand.NewSource(1))
	zipf := rand.NewZipf(rng, 1.2, 1, 1<<20)
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = zipf.Uint64()
	}
	return keys
}

func BenchmarkUpdate(b *testing.B) {
	s := New[uint64](1 << 16)
	keys := benchKeys(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(keys[i&(len(keys)-1)])
	}
}

func BenchmarkEstimate(b *testing.B) {
	s := New[uint64](1 << 16)
	keys := benchKeys(1 << 16)
	for _, k := range keys {
		s.Update(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Estimate(keys[i&(len(keys)-1)])
	}
}

func BenchmarkUpdateWithAdapter(b *testing.B) {
	a := adapter.NewEpsilonGreedy(0.01, 1000, adapter.WithSeed(1))
	s := New[uint64](1<<16, WithAdapter[uint64](a, 10000))
	keys := benchKeys(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(keys[i&(len(keys)-1)])
		s.Sum += 0.5
	}
}

// The key hash is pluggable; compare the built-in MurmurHash2 against the
// xxhash family on string keys.
func BenchmarkUpdateHasher(b *testing.B) {
	keys := make([]string, 1<<16)
	for i := range keys {
		keys[i] = "user:" + strconv.Itoa(i)
	}

	hashers := []struct {
		name string
		opts []Option[string]
	}{
		{"murmur2", nil},
		{"xxhash", []Option[string]{WithHasher[string](xxhash.Sum64String)}},
		{"xxh3", []Option[string]{WithHasher[string](xxh3.HashString)}},
	}

	for _, h := range hashers {
		b.Run(h.name, func(b *testing.B) {
			s := New[string](1<<16, h.opts...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Update(keys[i&(len(keys)-1)])
			}
		})
	}
}
