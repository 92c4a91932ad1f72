package gizmo3d

import "math"

// SnapRelative rounds value to the nearest multiple of increment. Ties
// round away from zero. A non-positive increment disables snapping and
// returns value unchanged.
func SnapRelative(value, increment float32) float32 {
	if increment <= 0 {
		return value
	}
	return float32(math.Round(float64(value/increment))) * increment
}

// SnapAbsolute snaps so that the final absolute value (start + rawDelta)
// lands on the increment lattice, and returns the adjusted delta. This is
// not the same as SnapRelative(rawDelta, increment): the lattice is
// anchored at zero, not at the drag start value.
func SnapAbsolute(start, rawDelta, increment float32) float32 {
	if increment <= 0 {
		return rawDelta
	}
	return SnapRelative(start+rawDelta, increment) - start
}
