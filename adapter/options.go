package adapter

import "math"

// Defaults shared by the bandit adapters.
const (
	// DefaultArms is the number of candidate parameter values.
	DefaultArms = 100
	// DefaultEpsilon is the exploration rate of the epsilon-greedy adapter.
	DefaultEpsilon = 0.1
	// DefaultRewardScaling is the Thompson reward-stretch exponent divisor.
	DefaultRewardScaling = 5.0
	// DefaultWindowSize is the number of rewards the Thompson adapter keeps
	// per arm.
	DefaultWindowSize = 500
)

// params collects the tunables of all adapters in this package. Each
// constructor reads the fields that apply to it and ignores the rest.
type params struct {
	Arms          int
	Epsilon       float64
	StepConst     float64
	StepFn        func(n uint64) float64
	RewardScaling float64
	WindowSize    int

	LearningRate float64
	MaxGradient  float64
	Rho          float64
	MinParam     float64

	Seed    int64
	HasSeed bool
}

// Option is a function that configures an adapter at construction.
type Option func(*params)

func defaultParams() params {
	return params{
		Arms:          DefaultArms,
		Epsilon:       DefaultEpsilon,
		StepFn:        func(n uint64) float64 { return 1.0 / float64(n) },
		RewardScaling: DefaultRewardScaling,
		WindowSize:    DefaultWindowSize,

		LearningRate: 0.01,
		MaxGradient:  10,
		Rho:          0.5,
		MinParam:     0,
	}
}

// WithArms sets the number of candidate arms of a bandit adapter.
// Default is 100.
func WithArms(n int) Option {
	return func(p *params) {
		p.Arms = n
	}
}

// WithEpsilon sets the exploration rate of the epsilon-greedy adapter.
// Default is 0.1.
func WithEpsilon(epsilon float64) Option {
	return func(p *params) {
		p.Epsilon = epsilon
	}
}

// WithConstantStep makes the epsilon-greedy adapter update its estimates
// with a constant step size instead of the default 1/n sample mean.
func WithConstantStep(step float64) Option {
	return func(p *params) {
		p.StepConst = step
		p.StepFn = nil
	}
}

// WithStepFunc sets a custom step-size rule for the epsilon-greedy adapter.
// The function receives the pull count of the current arm, including the
// current pull. Default is 1/n.
func WithStepFunc(fn func(n uint64) float64) Option {
	return func(p *params) {
		p.StepFn = fn
	}
}

// WithRewardScaling sets the reward-stretch exponent divisor of the Thompson
// adapter; rewards are raised to 1/scaling before recording. Default is 5.
func WithRewardScaling(scaling float64) Option {
	return func(p *params) {
		p.RewardScaling = scaling
	}
}

// WithWindowSize sets how many recent rewards the Thompson adapter keeps per
// arm. Default is 500.
func WithWindowSize(n int) Option {
	return func(p *params) {
		p.WindowSize = n
	}
}

// WithLearningRate sets the base learning rate of the gradient-descent
// adapter. Default is 0.01.
func WithLearningRate(lr float64) Option {
	return func(p *params) {
		p.LearningRate = lr
	}
}

// WithMaxGradient sets the gradient clipping bound of the gradient-descent
// adapter. Default is 10.
func WithMaxGradient(maxGrad float64) Option {
	return func(p *params) {
		p.MaxGradient = maxGrad
	}
}

// WithRho sets the squared-gradient moving-average decay of the
// gradient-descent adapter. Default is 0.5.
func WithRho(rho float64) Option {
	return func(p *params) {
		p.Rho = rho
	}
}

// WithMinParam sets the parameter floor of the gradient-descent adapter.
// Default is 0.
func WithMinParam(minParam float64) Option {
	return func(p *params) {
		p.MinParam = minParam
	}
}

// WithSeed seeds the adapter's random source, making its decision sequence
// reproducible. Each adapter owns one source, seeded once at construction.
func WithSeed(seed int64) Option {
	return func(p *params) {
		p.Seed = seed
		p.HasSeed = true
	}
}

// logArms returns n values log-uniformly spaced over [minParam, maxParam].
// The parameter has multiplicative effects, so equal ratios between
// neighboring arms matter, not equal differences.
func logArms(minParam, maxParam float64, n int) []float64 {
	if n < 1 {
		panic("adapter: arm count must be at least 1")
	}
	arms := make([]float64, n)
	if n == 1 {
		arms[0] = minParam
		return arms
	}
	logMin := math.Log(minParam)
	logMax := math.Log(maxParam)
	for i := range arms {
		arms[i] = math.Exp(logMin + (logMax-logMin)*float64(i)/float64(n-1))
	}
	return arms
}
