package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// TranslationGizmo turns pointer drags on axis arrows and plane quads
// into world-space translation offsets. It never moves the target
// itself; the host applies the reported offset to the drag-start
// position.
type TranslationGizmo struct {
	gizmoCore

	// OnTranslationChanged reports the current offset relative to the
	// drag-start position. For axis drags the offset lies along the
	// frozen axis; for plane drags it lies in the frozen plane.
	OnTranslationChanged func(element Element, mode TransformMode, offset mgl32.Vec3, snapped bool)

	geom *TranslationGeometry
}

func NewTranslationGizmo() *TranslationGizmo {
	g := &TranslationGizmo{}
	g.GizmoConfig = defaultConfig(defaultSnapTranslation)
	return g
}

// Update recomputes the screen-space snapshot for this frame. During an
// active drag the reference geometry stays frozen at its press-time
// state; only the projector and target references refresh. A nil
// projector means the host lost its camera or target and ends any
// active session.
func (g *TranslationGizmo) Update(proj Projector, target TargetState) {
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
	g.geom = ComputeTranslationGeometry(proj, target, g.GizmoConfig)
}

// Geometry exposes the latest snapshot, read-only, for drawing and
// external hit-testing. Nil when nothing is drawable this frame.
func (g *TranslationGizmo) Geometry() *TranslationGeometry { return g.geom }

// HitTest resolves a cursor position against the latest snapshot.
func (g *TranslationGizmo) HitTest(x, y float32) Element {
	return HitTranslation(g.geom, mgl32.Vec2{x, y})
}

// Press starts a drag session when the cursor hits an element. Reports
// whether the press was consumed.
func (g *TranslationGizmo) Press(x, y float32) bool {
	if g.session != nil || g.proj == nil || g.geom == nil {
		return false
	}
	cursor := mgl32.Vec2{x, y}
	hit := HitTranslation(g.geom, cursor)
	if hit == ElementNone {
		return false
	}
	ray, ok := g.proj.CameraRay(cursor)
	if !ok {
		return false
	}

	axes := axisSet(g.Mode, g.target.Rotation)
	start := g.target

	session := &dragSession{element: hit, mode: g.Mode}
	if ai := hit.AxisIndex(); ai >= 0 {
		axis := axes[ai]
		t0, ok := closestAxisParam(ray, start.Position, axis)
		if !ok {
			return false
		}
		session.sample = func(cursor mgl32.Vec2) (mgl32.Vec3, bool) {
			r, ok := g.proj.CameraRay(cursor)
			if !ok {
				return mgl32.Vec3{}, false
			}
			t, ok := closestAxisParam(r, start.Position, axis)
			if !ok {
				return mgl32.Vec3{}, false
			}
			return axis.Mul(t - t0), true
		}
		session.snap = func(raw mgl32.Vec3) (mgl32.Vec3, bool) {
			if !g.SnapEnabled || g.SnapIncrement <= 0 {
				return raw, false
			}
			ds := raw.Dot(axis)
			if g.SnapToAbsolute {
				ds = SnapAbsolute(start.Position.Dot(axis), ds, g.SnapIncrement)
			} else {
				ds = SnapRelative(ds, g.SnapIncrement)
			}
			return axis.Mul(ds), true
		}
	} else {
		pair := planeAxisPairs[hit.PlaneIndex()]
		u, v := axes[pair[0]], axes[pair[1]]
		normal := axes[3-pair[0]-pair[1]]
		w0, ok := intersectRayPlane(ray, start.Position, normal)
		if !ok {
			return false
		}
		session.sample = func(cursor mgl32.Vec2) (mgl32.Vec3, bool) {
			r, ok := g.proj.CameraRay(cursor)
			if !ok {
				return mgl32.Vec3{}, false
			}
			w, ok := intersectRayPlane(r, start.Position, normal)
			if !ok {
				return mgl32.Vec3{}, false
			}
			return w.Sub(w0), true
		}
		session.snap = func(raw mgl32.Vec3) (mgl32.Vec3, bool) {
			if !g.SnapEnabled || g.SnapIncrement <= 0 {
				return raw, false
			}
			du, dv := raw.Dot(u), raw.Dot(v)
			if g.SnapToAbsolute {
				du = SnapAbsolute(start.Position.Dot(u), du, g.SnapIncrement)
				dv = SnapAbsolute(start.Position.Dot(v), dv, g.SnapIncrement)
			} else {
				du = SnapRelative(du, g.SnapIncrement)
				dv = SnapRelative(dv, g.SnapIncrement)
			}
			return u.Mul(du).Add(v.Mul(dv)), true
		}
	}

	g.beginSession(session)
	return true
}

// Move recomputes the offset for the current cursor and reports it.
// Degenerate samples (near-parallel ray) are skipped; the last reported
// offset stays in force.
func (g *TranslationGizmo) Move(x, y float32) {
	if g.session == nil {
		return
	}
	offset, snapped, emit := g.session.step(mgl32.Vec2{x, y})
	if !emit {
		g.log().Debugf("translation sample degenerate at (%.1f, %.1f), holding last offset", x, y)
		return
	}
	if g.OnTranslationChanged != nil {
		g.OnTranslationChanged(g.session.element, g.session.mode, offset, snapped)
	}
}

// Release ends any active session, wherever the pointer is.
func (g *TranslationGizmo) Release(x, y float32) {
	g.endSession()
}
