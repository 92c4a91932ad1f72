package gizmo3d

import (
	"math"
	"testing"
)

func TestSnapRelative(t *testing.T) {
	cases := []struct {
		value, increment, want float32
	}{
		{1.2, 1.0, 1.0},
		{2.3, 1.0, 2.0},
		{3.5, 1.0, 4.0},   // tie rounds away from zero
		{-3.5, 1.0, -4.0}, // negative tie away from zero
		{1.0, 5.0, 0.0},
		{7.5, 5.0, 10.0},
		{0.26, 0.1, 0.3},
		{42.0, 0.0, 42.0},  // zero increment disables snapping
		{42.0, -1.0, 42.0}, // negative increment disables snapping
	}
	for _, c := range cases {
		got := SnapRelative(c.value, c.increment)
		if math.Abs(float64(got-c.want)) > 1e-5 {
			t.Errorf("SnapRelative(%v, %v) = %v, want %v", c.value, c.increment, got, c.want)
		}
	}
}

func TestSnapRelativeIdempotent(t *testing.T) {
	values := []float32{0, 0.3, 1.2, 2.5, -7.8, 123.456}
	increments := []float32{0.1, 0.5, 1, 5, 15}
	for _, v := range values {
		for _, inc := range increments {
			once := SnapRelative(v, inc)
			twice := SnapRelative(once, inc)
			if once != twice {
				t.Errorf("SnapRelative not idempotent for v=%v inc=%v: %v != %v", v, inc, once, twice)
			}
		}
	}
}

// The two snap semantics must differ: absolute snapping lands the final
// value on the lattice, relative snapping rounds the delta itself.
func TestSnapAbsoluteVsRelative(t *testing.T) {
	abs := SnapAbsolute(2.3, 1.2, 1.0)
	if math.Abs(float64(abs-1.7)) > 1e-5 {
		t.Errorf("SnapAbsolute(2.3, 1.2, 1.0) = %v, want 1.7", abs)
	}
	rel := SnapRelative(1.2, 1.0)
	if math.Abs(float64(rel-1.0)) > 1e-5 {
		t.Errorf("SnapRelative(1.2, 1.0) = %v, want 1.0", rel)
	}
	if abs == rel {
		t.Error("absolute and relative snapping must differ on this input")
	}
}

func TestSnapAbsoluteLandsOnLattice(t *testing.T) {
	// Target starts at 2, raw delta 1, increment 5: the absolute value 3
	// snaps to 5, so the reported delta is 3.
	if got := SnapAbsolute(2, 1, 5); got != 3 {
		t.Errorf("SnapAbsolute(2, 1, 5) = %v, want 3", got)
	}
	// Relative snapping of the same raw delta rounds to zero.
	if got := SnapRelative(1, 5); got != 0 {
		t.Errorf("SnapRelative(1, 5) = %v, want 0", got)
	}
}

func TestSnapAbsoluteDisabledIncrement(t *testing.T) {
	if got := SnapAbsolute(2.3, 1.2, 0); got != 1.2 {
		t.Errorf("non-positive increment must pass the delta through, got %v", got)
	}
}
