package evolvingsketch

import "math"

// DecayScale is the time divisor inside the exponential decay function.
const DecayScale = 10000

// DecayFunc maps the sketch's logical time t and decay intensity alpha to the
// per-update counter increment. Implementations must be pure, return 1 at t=0
// and be monotone non-decreasing in t for positive alpha.
type DecayFunc func(t uint32, alpha float64) float32

// ExpDecay is the canonical decay function exp(alpha*t/DecayScale). Recent
// items receive exponentially larger increments, so normalizing by the current
// value yields an exponentially time-weighted frequency.
func ExpDecay(t uint32, alpha float64) float32 {
	return float32(math.Exp(alpha * float64(t) / DecayScale))
}
