package baseline

import (
	"math"
	"testing"
)

func TestCountMinEstimate(t *testing.T) {
	s := NewCountMin[int](1024)

	for i := 0; i < 5; i++ {
		s.Update(7)
	}

	if e := s.Estimate(7); e < 5 {
		t.Errorf("Estimate(7) = %v, want >= 5", e)
	}
	// A Count-Min estimate never undercounts, and with 256 columns per row a
	// single foreign key almost never collides in all four rows.
	if e := s.Estimate(12345); e > 5 {
		t.Errorf("Estimate(12345) = %v, want <= 5", e)
	}
}

func TestCountMinWidth(t *testing.T) {
	for _, size := range []int{1, 32, 100, 4096} {
		s := NewCountMin[int](size)
		if s.Width()&(s.Width()-1) != 0 || s.Width() < 8 {
			t.Errorf("NewCountMin(%d).Width() = %d, not a power of two >= 8", size, s.Width())
		}
	}
}

func TestAdaSketchDecay(t *testing.T) {
	s := NewAdaSketch[int](1024, nil, 0)

	s.Update(1)
	for i := 0; i < 10000; i++ {
		s.Update(2)
	}

	// Key 1's single early hit decays; key 2's repeated recent hits do not.
	e1, e2 := s.Estimate(1), s.Estimate(2)
	if e1 >= 1 {
		t.Errorf("Estimate(1) = %v, want < 1 after decay", e1)
	}
	if e2 <= e1 {
		t.Errorf("Estimate(2) = %v <= Estimate(1) = %v", e2, e1)
	}
}

func TestAdaSketchTuning(t *testing.T) {
	s := NewAdaSketch[int](1024, nil, 500)

	for i := 0; i < 5; i++ {
		s.Update(7)
	}
	before := s.Estimate(7)

	for i := 0; i < 500; i++ {
		s.Update(8)
	}

	if s.t != 5 {
		t.Errorf("t = %d after tuning tick, want 5", s.t)
	}
	// Tuning rescales counters and the clock together, so the decayed
	// estimate keeps falling smoothly rather than jumping.
	after := s.Estimate(7)
	if after >= before {
		t.Errorf("Estimate(7) = %v after 500 younger updates, want < %v", after, before)
	}
}

func TestAdaSketchCustomDecay(t *testing.T) {
	flat := func(uint32) float32 { return 1 }
	s := NewAdaSketch[int](1024, flat, 0)

	for i := 0; i < 3; i++ {
		s.Update(9)
	}
	if e := float64(s.Estimate(9)); math.Abs(e-3) > 1e-6 {
		t.Errorf("Estimate(9) = %v with a flat decay, want 3", e)
	}
}
