package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

const (
	// scaleFactorFloor is the minimum reported scale factor.
	scaleFactorFloor = 0.01
	// uniformScaleDivisor converts vertical pixel travel into a uniform
	// factor: dragging up by this many pixels doubles the scale.
	uniformScaleDivisor = 100
)

// ScaleGizmo turns pointer drags on axis handles into per-axis scale
// factors, and drags on the center handle into uniform factors. Factors
// are relative to the drag-start scale and never drop below the floor.
type ScaleGizmo struct {
	gizmoCore

	// OnScaleChanged reports the current factor per axis relative to the
	// drag-start scale: the active component (or all three for the
	// uniform handle) carries the factor, the others stay 1.
	OnScaleChanged func(element Element, mode TransformMode, factor mgl32.Vec3, snapped bool)

	geom *ScaleGeometry
}

func NewScaleGizmo() *ScaleGizmo {
	g := &ScaleGizmo{}
	g.GizmoConfig = defaultConfig(defaultSnapScale)
	return g
}

// Update recomputes the screen-space snapshot for this frame. Like
// translation, the reference geometry freezes while a drag is active:
// the axis screen direction and pixel length captured at press time are
// what later cursor displacement projects onto. A nil projector ends any
// active session.
func (g *ScaleGizmo) Update(proj Projector, target TargetState) {
	if proj == nil {
		g.endSession()
		g.proj = nil
		g.geom = nil
		return
	}
	g.proj = proj
	g.target = target
	if g.session != nil {
		return
	}
	g.geom = ComputeScaleGeometry(proj, target, g.GizmoConfig)
}

// Geometry exposes the latest snapshot, read-only. Nil when nothing is
// drawable this frame.
func (g *ScaleGizmo) Geometry() *ScaleGeometry { return g.geom }

// HitTest resolves a cursor position against the latest snapshot.
func (g *ScaleGizmo) HitTest(x, y float32) Element {
	return HitScale(g.geom, mgl32.Vec2{x, y})
}

// Press starts a drag session when the cursor hits a handle or shaft.
// Reports whether the press was consumed.
func (g *ScaleGizmo) Press(x, y float32) bool {
	if g.session != nil || g.proj == nil || g.geom == nil {
		return false
	}
	cursor := mgl32.Vec2{x, y}
	hit := HitScale(g.geom, cursor)
	if hit == ElementNone {
		return false
	}

	startScale := g.target.Scale
	session := &dragSession{element: hit, mode: g.Mode}

	if ai := hit.AxisIndex(); ai >= 0 {
		arrow := g.geom.Axes[ai]
		dir := arrow.Dir
		arrowLen := arrow.End.Sub(g.geom.Center).Len()
		if arrowLen < 1e-3 {
			return false
		}
		// The screen direction and pixel length are precomputed here so
		// later moves project pure 2D displacement, without reprojecting
		// 3D geometry per sample.
		session.sample = func(c mgl32.Vec2) (mgl32.Vec3, bool) {
			disp := c.Sub(cursor).Dot(dir)
			f := clampFactor(1 + disp/arrowLen)
			factor := mgl32.Vec3{1, 1, 1}
			factor[ai] = f
			return factor, true
		}
		session.snap = func(raw mgl32.Vec3) (mgl32.Vec3, bool) {
			if !g.SnapEnabled || g.SnapIncrement <= 0 {
				return raw, false
			}
			raw[ai] = snapFactor(raw[ai], startScale[ai], g.SnapIncrement, g.SnapToAbsolute)
			return raw, true
		}
	} else {
		// Uniform handle: camera-relative vertical travel, up = bigger.
		session.sample = func(c mgl32.Vec2) (mgl32.Vec3, bool) {
			f := clampFactor(1 + (cursor.Y()-c.Y())/uniformScaleDivisor)
			return mgl32.Vec3{f, f, f}, true
		}
		session.snap = func(raw mgl32.Vec3) (mgl32.Vec3, bool) {
			if !g.SnapEnabled || g.SnapIncrement <= 0 {
				return raw, false
			}
			for i := 0; i < 3; i++ {
				raw[i] = snapFactor(raw[i], startScale[i], g.SnapIncrement, g.SnapToAbsolute)
			}
			return raw, true
		}
	}

	g.beginSession(session)
	return true
}

// Move recomputes the factor for the current cursor and reports it.
func (g *ScaleGizmo) Move(x, y float32) {
	if g.session == nil {
		return
	}
	factor, snapped, emit := g.session.step(mgl32.Vec2{x, y})
	if !emit {
		return
	}
	if g.OnScaleChanged != nil {
		g.OnScaleChanged(g.session.element, g.session.mode, factor, snapped)
	}
}

// Release ends any active session, wherever the pointer is.
func (g *ScaleGizmo) Release(x, y float32) {
	g.endSession()
}

// snapFactor snaps one factor component. Absolute mode lands the final
// scale value (start * factor) on the increment lattice; relative mode
// snaps the factor itself.
func snapFactor(f, start, increment float32, absolute bool) float32 {
	if absolute && mgl32.Abs(start) > 1e-6 {
		delta := SnapAbsolute(start, start*(f-1), increment)
		return clampFactor((start + delta) / start)
	}
	return clampFactor(SnapRelative(f, increment))
}

func clampFactor(f float32) float32 {
	if f < scaleFactorFloor {
		return scaleFactorFloor
	}
	return f
}
