package evolvingsketch

import (
	"github.com/Snowflyt/EvolvingSketch/adapter"
	"github.com/Snowflyt/EvolvingSketch/internal/hash"
)

// config holds the configuration for a Sketch instance.
type config[K comparable] struct {
	InitialAlpha   float64
	Decay          DecayFunc
	Adapter        adapter.Adapter
	AdaptInterval  uint32 // updates between adapter invocations (0 = disabled)
	TuningInterval uint32 // legacy interval-driven rescale (0 = disabled)
	HashSeed       uint64
	Hasher         func(K) uint64
	RowSeeds       *[depth]uint64
	Telemetry      bool
}

// Option is a function that configures a Sketch.
type Option[K comparable] func(*config[K])

// defaultConfig returns the default configuration.
func defaultConfig[K comparable]() *config[K] {
	return &config[K]{
		InitialAlpha: 1.0,
		Decay:        ExpDecay,
		HashSeed:     hash.DefaultSeed,
	}
}

// WithInitialAlpha sets the initial decay intensity. Default is 1.0.
func WithInitialAlpha[K comparable](alpha float64) Option[K] {
	return func(c *config[K]) {
		c.InitialAlpha = alpha
	}
}

// WithDecayFunc replaces the decay function. The function must be pure,
// equal 1 at t=0 and be monotone non-decreasing in t. Default is ExpDecay.
func WithDecayFunc[K comparable](f DecayFunc) Option[K] {
	return func(c *config[K]) {
		c.Decay = f
	}
}

// WithAdapter attaches a parameter adapter that retunes alpha every interval
// updates. The adapter receives the reward accumulated in Sum, normalized by
// the interval, and returns the next alpha.
func WithAdapter[K comparable](a adapter.Adapter, interval uint32) Option[K] {
	return func(c *config[K]) {
		c.Adapter = a
		c.AdaptInterval = interval
	}
}

// WithTuningInterval enables the legacy periodic rescale every n updates, in
// addition to the overflow-driven pruning that is always active. An adapt
// tick swallows the tuning tick scheduled for the same update.
func WithTuningInterval[K comparable](n uint32) Option[K] {
	return func(c *config[K]) {
		c.TuningInterval = n
	}
}

// WithHashSeed sets the seed of the key hash function. Default is 42.
func WithHashSeed[K comparable](seed uint64) Option[K] {
	return func(c *config[K]) {
		c.HashSeed = seed
	}
}

// WithHasher sets a custom function to hash keys. If not set, a seeded
// MurmurHash2 is used based on the key type.
func WithHasher[K comparable](fn func(K) uint64) Option[K] {
	return func(c *config[K]) {
		c.Hasher = fn
	}
}

// WithRowSeeds fixes the row-index derivation seeds instead of drawing them
// at construction. Useful for reproducible row placement across runs.
func WithRowSeeds[K comparable](seeds [4]uint64) Option[K] {
	return func(c *config[K]) {
		s := seeds
		c.RowSeeds = &s
	}
}

// WithTelemetry enables per-call timing of Update and Estimate. Off by
// default to keep clock reads out of the hot path.
func WithTelemetry[K comparable]() Option[K] {
	return func(c *config[K]) {
		c.Telemetry = true
	}
}
