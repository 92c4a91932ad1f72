package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotationGizmo turns pointer drags on rotation rings into angle deltas
// in degrees around the frozen rotation axis. Reported deltas are always
// normalized into (-180, 180].
type RotationGizmo struct {
	gizmoCore

	// OnRotationChanged reports the current angle delta in degrees
	// relative to the drag-start angle, around the frozen axis of the
	// active circle.
	OnRotationChanged func(element Element, mode TransformMode, angleDeg float32, snapped bool)

	geom  *RotationGeometry
	radii [3]float32

	startAngle   float32
	currentAngle float32
}

func NewRotationGizmo() *RotationGizmo {
	g := &RotationGizmo{}
	g.GizmoConfig = defaultConfig(defaultSnapRotation)
	return g
}

// Update recomputes the screen-space snapshot for this frame. Unlike
// translation and scale, rotation recomputes even mid-drag: the live
// angle wedge depends on the current center and radius. A nil projector
// ends any active session.
func (g *RotationGizmo) Update(proj Projector, target TargetState) {
	if proj == nil {
		g.cancel()
		return
	}
	g.proj = proj
	g.target = target
	g.geom = ComputeRotationGeometry(proj, target, g.GizmoConfig, g.radii)
	if g.geom == nil {
		g.cancel()
		return
	}
	g.radii = g.geom.Radii
}

func (g *RotationGizmo) cancel() {
	g.startAngle = 0
	g.currentAngle = 0
	g.endSession()
	g.proj = nil
	g.geom = nil
}

// Geometry exposes the latest snapshot, read-only. Nil when nothing is
// drawable this frame.
func (g *RotationGizmo) Geometry() *RotationGeometry { return g.geom }

// StartAngle is the in-plane angle (degrees) captured at press time;
// zero outside a drag. Together with CurrentAngle it drives the wedge
// visualization.
func (g *RotationGizmo) StartAngle() float32 { return g.startAngle }

// CurrentAngle is StartAngle plus the latest reported delta; zero
// outside a drag.
func (g *RotationGizmo) CurrentAngle() float32 { return g.currentAngle }

// HitTest resolves a cursor position against the latest snapshot,
// honoring the inactive-arc gate.
func (g *RotationGizmo) HitTest(x, y float32) Element {
	return HitRotation(g.geom, mgl32.Vec2{x, y}, g.ActiveElement())
}

// Press starts a drag session when the cursor hits a ring within its
// hittable arc. Reports whether the press was consumed.
func (g *RotationGizmo) Press(x, y float32) bool {
	if g.session != nil || g.proj == nil || g.geom == nil {
		return false
	}
	cursor := mgl32.Vec2{x, y}
	hit := HitRotation(g.geom, cursor, ElementNone)
	if hit == ElementNone {
		return false
	}
	ray, ok := g.proj.CameraRay(cursor)
	if !ok {
		return false
	}

	axes := axisSet(g.Mode, g.target.Rotation)
	ai := hit.AxisIndex()
	u := axes[(ai+1)%3]
	v := axes[(ai+2)%3]
	normal := axes[ai]
	center := g.target.Position

	w0, ok := intersectRayPlane(ray, center, normal)
	if !ok {
		return false
	}
	start := planeAngleDeg(w0.Sub(center), u, v)

	session := &dragSession{element: hit, mode: g.Mode}
	session.sample = func(cursor mgl32.Vec2) (mgl32.Vec3, bool) {
		r, ok := g.proj.CameraRay(cursor)
		if !ok {
			return mgl32.Vec3{}, false
		}
		w, ok := intersectRayPlane(r, center, normal)
		if !ok {
			return mgl32.Vec3{}, false
		}
		live := planeAngleDeg(w.Sub(center), u, v)
		return mgl32.Vec3{normalizeAngleDeg(live - start)}, true
	}
	session.snap = func(raw mgl32.Vec3) (mgl32.Vec3, bool) {
		if !g.SnapEnabled || g.SnapIncrement <= 0 {
			return raw, false
		}
		d := raw.X()
		if g.SnapToAbsolute {
			d = SnapAbsolute(start, d, g.SnapIncrement)
		} else {
			d = SnapRelative(d, g.SnapIncrement)
		}
		return mgl32.Vec3{normalizeAngleDeg(d)}, true
	}

	g.startAngle = start
	g.currentAngle = start
	g.beginSession(session)
	return true
}

// Move recomputes the angle delta for the current cursor and reports it.
// Near-parallel ray samples are skipped, holding the last angle.
func (g *RotationGizmo) Move(x, y float32) {
	if g.session == nil {
		return
	}
	value, snapped, emit := g.session.step(mgl32.Vec2{x, y})
	if !emit {
		g.log().Debugf("rotation sample degenerate at (%.1f, %.1f), holding last angle", x, y)
		return
	}
	delta := value.X()
	g.currentAngle = g.startAngle + delta
	if g.OnRotationChanged != nil {
		g.OnRotationChanged(g.session.element, g.session.mode, delta, snapped)
	}
}

// Release ends any active session and resets the wedge angles.
func (g *RotationGizmo) Release(x, y float32) {
	g.startAngle = 0
	g.currentAngle = 0
	g.endSession()
}

// planeAngleDeg measures the angle of an in-plane vector against the
// reference axis u, toward v, in degrees.
func planeAngleDeg(d, u, v mgl32.Vec3) float32 {
	return float32(math.Atan2(float64(d.Dot(v)), float64(d.Dot(u)))) * 180 / math.Pi
}
