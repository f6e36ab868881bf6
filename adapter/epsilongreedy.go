package adapter

import "math/rand"

// EpsilonGreedy is an epsilon-greedy multi-armed bandit over a log-uniform
// grid of candidate parameter values. Each call updates the running reward
// estimate of the arm chosen last time, then either explores a uniform
// random arm (probability epsilon) or exploits the best estimate.
type EpsilonGreedy struct {
	core

	epsilon   float64
	stepConst float64
	stepFn    func(n uint64) float64 // nil when the constant step is used

	arms      []float64
	estimates []float64
	pulls     []uint64

	current int
	rng     *rand.Rand
}

var _ Adapter = (*EpsilonGreedy)(nil)

// NewEpsilonGreedy creates an epsilon-greedy adapter with arms log-uniformly
// spaced over [minParam, maxParam].
func NewEpsilonGreedy(minParam, maxParam float64, opts ...Option) *EpsilonGreedy {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	a := &EpsilonGreedy{
		epsilon:   p.Epsilon,
		stepConst: p.StepConst,
		stepFn:    p.StepFn,
		arms:      logArms(minParam, maxParam, p.Arms),
		estimates: make([]float64, p.Arms),
		pulls:     make([]uint64, p.Arms),
		rng:       newRand(p),
	}
	a.core = newCore(a)
	return a
}

// Arms returns the candidate parameter values.
func (a *EpsilonGreedy) Arms() []float64 {
	arms := make([]float64, len(a.arms))
	copy(arms, a.arms)
	return arms
}

// disturb picks a uniform random arm; there is no reward to learn from yet.
func (a *EpsilonGreedy) disturb(_ float64) float64 {
	a.current = a.rng.Intn(len(a.arms))
	return a.arms[a.current]
}

func (a *EpsilonGreedy) step(objective, _, _, _ float64) float64 {
	reward := objective

	step := a.stepConst
	if a.stepFn != nil {
		a.pulls[a.current]++
		step = a.stepFn(a.pulls[a.current])
	}
	a.estimates[a.current] += step * (reward - a.estimates[a.current])

	if a.rng.Float64() < a.epsilon {
		// Explore: random arm.
		a.current = a.rng.Intn(len(a.arms))
	} else {
		// Exploit: best arm so far.
		a.current = a.bestArm()
	}

	return a.arms[a.current]
}

// bestArm returns the index of the largest estimate; ties break toward the
// smallest index.
func (a *EpsilonGreedy) bestArm() int {
	best := 0
	for i := 1; i < len(a.estimates); i++ {
		if a.estimates[i] > a.estimates[best] {
			best = i
		}
	}
	return best
}

// newRand builds the adapter's random source, seeded from p when a seed was
// given and from the global source otherwise.
func newRand(p params) *rand.Rand {
	if p.HasSeed {
		return rand.New(rand.NewSource(p.Seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
