package adapter

import (
	"math"
	"math/rand"

	"github.com/Snowflyt/EvolvingSketch/internal/window"
)

// SlidingWindowThompson is a Thompson-sampling bandit over a log-uniform grid
// of candidate parameter values. Each arm keeps a bounded window of recent
// rewards; the windows induce Beta posteriors from which one sample per arm
// is drawn, and the largest sample wins. Forgetting old rewards lets the
// adapter track a drifting optimum.
//
// Rewards are stretched by reward^(1/scaling) before recording, which spreads
// out small differences among low rewards near the bottom of the [0, 1]
// range. Callers feeding rewards outside [0, 1] void the Beta interpretation
// but not the mechanics.
type SlidingWindowThompson struct {
	core

	rewardScaling float64

	arms    []float64
	rewards []*window.Window

	current int
	rng     *rand.Rand
}

var _ Adapter = (*SlidingWindowThompson)(nil)

// NewSlidingWindowThompson creates a sliding-window Thompson-sampling adapter
// with arms log-uniformly spaced over [minParam, maxParam].
func NewSlidingWindowThompson(minParam, maxParam float64, opts ...Option) *SlidingWindowThompson {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	a := &SlidingWindowThompson{
		rewardScaling: p.RewardScaling,
		arms:          logArms(minParam, maxParam, p.Arms),
		rewards:       make([]*window.Window, p.Arms),
		rng:           newRand(p),
	}
	for i := range a.rewards {
		a.rewards[i] = window.New(p.WindowSize)
	}
	a.core = newCore(a)
	return a
}

// Arms returns the candidate parameter values.
func (a *SlidingWindowThompson) Arms() []float64 {
	arms := make([]float64, len(a.arms))
	copy(arms, a.arms)
	return arms
}

// disturb picks a uniform random arm; no reward has been observed yet.
func (a *SlidingWindowThompson) disturb(_ float64) float64 {
	a.current = a.rng.Intn(len(a.arms))
	return a.arms[a.current]
}

func (a *SlidingWindowThompson) step(objective, _, _, _ float64) float64 {
	reward := math.Pow(objective, 1.0/a.rewardScaling)
	a.rewards[a.current].Push(reward)

	best, bestSample := 0, -1.0
	for i, w := range a.rewards {
		// Beta(1+sum r, 1+sum(1-r)); an empty window is the uniform
		// Beta(1, 1) prior.
		sum := w.Sum()
		sample := a.sampleBeta(1.0+sum, 1.0+float64(w.Len())-sum)
		if sample > bestSample {
			bestSample = sample
			best = i
		}
	}
	a.current = best

	return a.arms[a.current]
}

// sampleBeta draws from Beta(alpha, beta) as X/(X+Y) with X ~ Gamma(alpha)
// and Y ~ Gamma(beta), returning 0.5 when both draws degenerate to zero.
func (a *SlidingWindowThompson) sampleBeta(alpha, beta float64) float64 {
	x := a.sampleGamma(alpha)
	y := a.sampleGamma(beta)
	if x+y == 0 {
		return 0.5
	}
	return x / (x + y)
}

// sampleGamma draws from Gamma(shape, 1) with the Marsaglia-Tsang method.
// Shapes below one are boosted to shape+1 and corrected by a uniform power;
// non-positive and NaN shapes yield 0.
func (a *SlidingWindowThompson) sampleGamma(shape float64) float64 {
	if !(shape > 0) {
		return 0
	}
	if shape < 1 {
		return a.sampleGamma(shape+1) * math.Pow(a.rng.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := a.rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := a.rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}
