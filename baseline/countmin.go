// Package baseline provides the non-adaptive frequency sketches the evolving
// sketch is compared against: a plain Count-Min sketch and AdaSketch, a
// time-decaying sketch with a fixed decay curve and periodic rescaling.
package baseline

import (
	"math/rand"

	"github.com/Snowflyt/EvolvingSketch/internal/alloc"
	"github.com/Snowflyt/EvolvingSketch/internal/hash"
)

const (
	depth = 4

	// altIndexC is the MurmurHash2 multiplier used for row index derivation.
	altIndexC = 0x5bd1e995
)

// CountMin is a plain Count-Min sketch with integer counters and no decay.
type CountMin[K comparable] struct {
	width uint64
	mask  uint64
	data  []uint32
	seeds [depth]uint64

	hash func(K) uint64
}

// NewCountMin creates a CountMin with roughly size counters in total.
func NewCountMin[K comparable](size int) *CountMin[K] {
	width := ceilPow2(max(uint64(max(size, 0))/depth, 8))
	s := &CountMin[K]{
		width: width,
		mask:  width - 1,
		data:  alloc.Uint32s(int(depth * width)),
		hash:  hash.ForKey[K](hash.DefaultSeed),
	}
	for i := range s.seeds {
		s.seeds[i] = rand.Uint64()
	}
	return s
}

// Update records one occurrence of key.
func (s *CountMin[K]) Update(key K) {
	idx := s.hash(key) & s.mask
	for i := 0; i < depth; i++ {
		if i > 0 {
			idx = (idx ^ (s.seeds[i] * altIndexC)) & s.mask
		}
		s.data[uint64(i)*s.width+idx]++
	}
}

// Estimate returns the approximate occurrence count of key.
func (s *CountMin[K]) Estimate(key K) float32 {
	res := ^uint32(0)
	idx := s.hash(key) & s.mask
	for i := 0; i < depth; i++ {
		if i > 0 {
			idx = (idx ^ (s.seeds[i] * altIndexC)) & s.mask
		}
		if v := s.data[uint64(i)*s.width+idx]; v < res {
			res = v
		}
	}
	return float32(res)
}

// Width returns the number of counters per row.
func (s *CountMin[K]) Width() uint64 { return s.width }

// ceilPow2 rounds v up to the next power of two.
func ceilPow2(v uint64) uint64 {
	r := uint64(1)
	for r < v {
		r <<= 1
	}
	return r
}
