package evolvingsketch

import "time"

// telemetry accumulates per-call timings. Plain fields suffice under the
// sketch's single-threaded contract.
type telemetry struct {
	updates         uint64
	updateSeconds   float64
	estimates       uint64
	estimateSeconds float64
}

func (t *telemetry) recordUpdate(d time.Duration) {
	t.updates++
	t.updateSeconds += d.Seconds()
}

func (t *telemetry) recordEstimate(d time.Duration) {
	t.estimates++
	t.estimateSeconds += d.Seconds()
}

// TelemetrySnapshot is a point-in-time view of the sketch's call timings.
type TelemetrySnapshot struct {
	Updates            uint64  // Total timed Update calls
	Estimates          uint64  // Total timed Estimate calls
	UpdateTimeAvgSec   float64 // Mean wall time of Update in seconds
	EstimateTimeAvgSec float64 // Mean wall time of Estimate in seconds
}

// Telemetry returns a snapshot of the call timings. The zero snapshot is
// returned when telemetry is disabled or nothing has been timed yet.
func (s *Sketch[K]) Telemetry() TelemetrySnapshot {
	if s.telemetry == nil {
		return TelemetrySnapshot{}
	}

	snap := TelemetrySnapshot{
		Updates:   s.telemetry.updates,
		Estimates: s.telemetry.estimates,
	}
	if snap.Updates > 0 {
		snap.UpdateTimeAvgSec = s.telemetry.updateSeconds / float64(snap.Updates)
	}
	if snap.Estimates > 0 {
		snap.EstimateTimeAvgSec = s.telemetry.estimateSeconds / float64(snap.Estimates)
	}
	return snap
}
