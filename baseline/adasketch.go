package baseline

import (
	"math"
	"math/rand"

	"github.com/Snowflyt/EvolvingSketch/internal/alloc"
	"github.com/Snowflyt/EvolvingSketch/internal/hash"
)

// DecayFunc maps the sketch's logical time to the per-update counter
// increment.
type DecayFunc func(t uint32) float32

// AdaSketch is a time-decaying Count-Min sketch with a fixed decay curve.
// Unlike the evolving sketch it has no overflow handling and no adapter; the
// only rescaling is the optional periodic tune, so the decay curve must be
// chosen with the stream length in mind.
type AdaSketch[K comparable] struct {
	width uint64
	mask  uint64
	data  []float32
	seeds [depth]uint64

	t uint32
	f DecayFunc

	tuningInterval uint32
	tuningCounter  uint32

	hash func(K) uint64
}

// NewAdaSketch creates an AdaSketch with roughly size counters in total. A
// nil f defaults to exp(t/10000); tuningInterval 0 disables periodic
// rescaling.
func NewAdaSketch[K comparable](size int, f DecayFunc, tuningInterval uint32) *AdaSketch[K] {
	if f == nil {
		f = func(t uint32) float32 { return float32(math.Exp(float64(t) / 10000)) }
	}
	width := ceilPow2(max(uint64(max(size, 0))/depth, 8))
	s := &AdaSketch[K]{
		width: width,
		mask:  width - 1,
		data:  alloc.Float32s(int(depth * width)),
		f:     f,

		tuningInterval: tuningInterval,

		hash: hash.ForKey[K](hash.DefaultSeed),
	}
	for i := range s.seeds {
		s.seeds[i] = rand.Uint64()
	}
	return s
}

// Update records one occurrence of key at the current logical time.
func (s *AdaSketch[K]) Update(key K) {
	s.t++
	inc := s.f(s.t)

	idx := s.hash(key) & s.mask
	for i := 0; i < depth; i++ {
		if i > 0 {
			idx = (idx ^ (s.seeds[i] * altIndexC)) & s.mask
		}
		s.data[uint64(i)*s.width+idx] += inc
	}

	if s.tuningInterval != 0 {
		s.tuningCounter++
		if s.tuningCounter >= s.tuningInterval {
			s.tune()
		}
	}
}

// Estimate returns the approximate time-decayed frequency of key.
func (s *AdaSketch[K]) Estimate(key K) float32 {
	den := s.f(s.t)
	res := float32(math.MaxFloat32)
	idx := s.hash(key) & s.mask
	for i := 0; i < depth; i++ {
		if i > 0 {
			idx = (idx ^ (s.seeds[i] * altIndexC)) & s.mask
		}
		if v := s.data[uint64(i)*s.width+idx] / den; v < res {
			res = v
		}
	}
	return res
}

// Width returns the number of counters per row.
func (s *AdaSketch[K]) Width() uint64 { return s.width }

// tune rescales all counters by f(t) and resets the clock, keeping counter
// magnitudes bounded over long streams.
func (s *AdaSketch[K]) tune() {
	d := s.f(s.t)
	for i := range s.data {
		s.data[i] /= d
	}
	s.t = 0
	s.tuningCounter = 0
}
