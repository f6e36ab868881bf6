// Package evolvingsketch implements a time-decaying frequency sketch whose
// decay intensity is retuned online by a pluggable parameter adapter.
//
// The sketch is a Count-Min style counter matrix of float32 cells. Each
// update adds f(t, alpha) to one cell per row, so later updates weigh more;
// estimates divide by the current f(t, alpha), which turns the growing
// increments into an exponentially time-weighted frequency. When a cell
// would leave float32 integer precision the whole matrix is rescaled and the
// clock re-anchored, preserving the ratio of any two counters.
//
// The sketch is not safe for concurrent use.
package evolvingsketch

import (
	"math"
	"math/bits"
	"math/rand"
	"time"

	"github.com/Snowflyt/EvolvingSketch/internal/alloc"
	"github.com/Snowflyt/EvolvingSketch/internal/hash"
)

const (
	// depth is the number of rows in the counter matrix.
	depth = 4

	// PruneThreshold is the largest integer exactly representable in float32
	// such that adding 1 is not lost. Counters never exceed it.
	PruneThreshold = 1<<24 - 1

	// altIndexC is the MurmurHash2 multiplier used for row index derivation.
	altIndexC = 0x5bd1e995
)

// Sketch is an approximate, exponentially time-weighted frequency counter
// over keys of type K.
type Sketch[K comparable] struct {
	width uint64 // cells per row, power of two
	mask  uint64
	data  []float32 // depth rows of width cells, cache-line aligned
	seeds [depth]uint64

	t     uint32
	alpha float64
	decay DecayFunc

	hash func(K) uint64

	adapter       alphaAdapter
	adaptInterval uint32
	adaptCounter  uint32

	tuningInterval uint32
	tuningCounter  uint32

	// Sum accumulates the workload's reward signal (cache hits, ranking
	// contributions) between adapt ticks. The workload is the only writer;
	// adapt reads and resets it. Single-threaded, like the rest of the
	// sketch.
	Sum float64

	telemetry *telemetry
}

// alphaAdapter is the part of adapter.Adapter the sketch invokes.
type alphaAdapter interface {
	Adapt(objective, param float64) float64
}

// New creates a Sketch with roughly size counters in total. The width of
// each row is rounded up to a power of two of at least 8.
func New[K comparable](size int, opts ...Option[K]) *Sketch[K] {
	cfg := defaultConfig[K]()
	for _, opt := range opts {
		opt(cfg)
	}

	width := ceilPow2(max(uint64(max(size, 0))/depth, 8))

	s := &Sketch[K]{
		width: width,
		mask:  width - 1,
		data:  alloc.Float32s(int(depth * width)),
		alpha: cfg.InitialAlpha,
		decay: cfg.Decay,

		adapter:       cfg.Adapter,
		adaptInterval: cfg.AdaptInterval,

		tuningInterval: cfg.TuningInterval,
	}

	if cfg.RowSeeds != nil {
		s.seeds = *cfg.RowSeeds
	} else {
		for i := range s.seeds {
			s.seeds[i] = rand.Uint64()
		}
	}

	if cfg.Hasher != nil {
		s.hash = cfg.Hasher
	} else {
		s.hash = hash.ForKey[K](cfg.HashSeed)
	}

	if cfg.Telemetry {
		s.telemetry = &telemetry{}
	}

	return s
}

// Update records one occurrence of key at the current logical time.
//
// If committing the increment would push any of the key's counters past
// PruneThreshold, the partially applied increments are rolled back, the
// matrix is pruned and the update is retried. A completed call has either
// incremented all rows by the same amount or none.
func (s *Sketch[K]) Update(key K) {
	var start time.Time
	if s.telemetry != nil {
		start = time.Now()
	}

	h := s.hash(key)
	for {
		s.t++
		inc := s.decay(s.t, s.alpha)

		var pos [depth]uint64
		committed := 0
		idx := h & s.mask
		for i := 0; i < depth; i++ {
			if i > 0 {
				idx = (idx ^ (s.seeds[i] * altIndexC)) & s.mask
			}
			p := uint64(i)*s.width + idx
			if s.data[p]+inc > PruneThreshold {
				break
			}
			s.data[p] += inc
			pos[i] = p
			committed++
		}
		if committed == depth {
			break
		}

		// Overflow: restore the pre-update state, re-anchor time and retry.
		for i := 0; i < committed; i++ {
			s.data[pos[i]] -= inc
		}
		s.t--
		s.prune()
	}

	adapted := false
	if s.adaptInterval != 0 {
		s.adaptCounter++
		if s.adaptCounter >= s.adaptInterval {
			s.adapt()
			adapted = true
		}
	}
	if !adapted && s.tuningInterval != 0 {
		s.tuningCounter++
		if s.tuningCounter >= s.tuningInterval {
			s.prune()
		}
	}

	if s.telemetry != nil {
		s.telemetry.recordUpdate(time.Since(start))
	}
}

// Estimate returns the approximate time-decayed frequency of key. The result
// upper-bounds the true decayed count; it is exact when none of the key's
// rows collide with other keys.
func (s *Sketch[K]) Estimate(key K) float32 {
	var start time.Time
	if s.telemetry != nil {
		start = time.Now()
	}

	den := s.decay(s.t, s.alpha)
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

	if s.telemetry != nil {
		s.telemetry.recordEstimate(time.Since(start))
	}
	return res
}

// Alpha returns the current decay intensity.
func (s *Sketch[K]) Alpha() float64 { return s.alpha }

// Time returns the logical clock. It grows by one per update and drops back
// to zero whenever the matrix is pruned.
func (s *Sketch[K]) Time() uint32 { return s.t }

// Width returns the number of counters per row.
func (s *Sketch[K]) Width() uint64 { return s.width }

// Reset clears all counters and re-anchors time.
func (s *Sketch[K]) Reset() {
	for i := range s.data {
		s.data[i] = 0
	}
	s.t = 0
	s.adaptCounter = 0
	s.tuningCounter = 0
	s.Sum = 0
}

// prune divides every counter by f(t, alpha) and resets t. Since f is
// exponential, this re-anchors time to zero without changing the ratio of
// any two counters.
func (s *Sketch[K]) prune() {
	d := s.decay(s.t, s.alpha)
	for i := range s.data {
		s.data[i] /= d
	}
	s.t = 0
	s.tuningCounter = 0
}

// adapt normalizes the accumulated reward and asks the adapter for the next
// alpha. Pruning first bounds counter magnitude and re-anchors time before
// the reward is evaluated.
func (s *Sketch[K]) adapt() {
	s.prune()
	if s.adapter != nil {
		reward := s.Sum / float64(s.adaptInterval)
		s.Sum = 0
		s.alpha = s.adapter.Adapt(reward, s.alpha)
	}
	s.adaptCounter = 0
}

// ceilPow2 rounds v up to the next power of two.
func ceilPow2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len64(v-1)
}
