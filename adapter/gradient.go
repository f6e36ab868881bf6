package adapter

import (
	"math"
	"math/rand"
)

const (
	// gradEps guards the finite-difference denominator.
	gradEps = 1e-6
	// rmsEps guards the RMSprop denominator.
	rmsEps = 1e-8
)

// GradientDescent adapts the parameter with a finite-difference gradient and
// an RMSprop-scaled step. The gradient is estimated from the change in the
// objective between consecutive calls, clipped, and fed into a moving average
// of squared gradients that normalizes the learning rate.
type GradientDescent struct {
	core

	lr       float64
	maxGrad  float64
	rho      float64
	minParam float64

	v   float64 // moving average of squared gradients
	rng *rand.Rand
}

var _ Adapter = (*GradientDescent)(nil)

// NewGradientDescent creates a gradient-descent adapter.
func NewGradientDescent(opts ...Option) *GradientDescent {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	g := &GradientDescent{
		lr:       p.LearningRate,
		maxGrad:  p.MaxGradient,
		rho:      p.Rho,
		minParam: p.MinParam,
		rng:      newRand(p),
	}
	g.core = newCore(g)
	return g
}

// disturb nudges the parameter by one part per million in a random direction
// so the next call has a finite difference to work with.
func (g *GradientDescent) disturb(param float64) float64 {
	sign := float64(g.rng.Intn(2)*2 - 1)
	return param * (1 + sign*1e-6)
}

func (g *GradientDescent) step(objective, lastObjective, param, lastParam float64) float64 {
	grad := (objective - lastObjective) / ((param - lastParam) + gradEps)
	grad = math.Max(-g.maxGrad, math.Min(grad, g.maxGrad))

	g.v = g.rho*g.v + (1-g.rho)*grad*grad

	next := param - g.lr/(math.Sqrt(g.v)+rmsEps)*grad
	return math.Max(next, g.minParam)
}
