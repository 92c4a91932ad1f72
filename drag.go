package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// dragSession is the state spanning one press-move-release interaction.
// The three gizmo kinds share this one type; what differs per kind is
// injected as two closures built at press time, which capture the frozen
// drag-start snapshot (start target value, axis set, projected start
// parameter). Frozen values never change for the session's lifetime, so
// local-mode axes and rotation references do not drift if the target is
// reoriented mid-drag by an outside actor.
type dragSession struct {
	element Element
	mode    TransformMode

	// sample maps the current cursor to a raw manipulation value.
	// Rotation packs its angle delta (degrees) into the X component.
	// Returns false on degenerate geometry (near-parallel ray); the
	// session then holds the last value and the caller skips the emit.
	sample func(cursor mgl32.Vec2) (mgl32.Vec3, bool)

	// snap replaces a raw value when snapping is enabled. Nil when
	// snapping is off. Reports whether snapping was applied.
	snap func(raw mgl32.Vec3) (mgl32.Vec3, bool)

	last mgl32.Vec3
}

// step recomputes the manipulation value for the current cursor.
// emit is false when this sample must be skipped (degenerate geometry);
// the previously reported value stays in force.
func (s *dragSession) step(cursor mgl32.Vec2) (value mgl32.Vec3, snapped bool, emit bool) {
	raw, ok := s.sample(cursor)
	if !ok {
		return s.last, false, false
	}
	value = raw
	if s.snap != nil {
		value, snapped = s.snap(raw)
	}
	s.last = value
	return value, snapped, true
}
