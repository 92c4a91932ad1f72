package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Plane quads sit at a fixed fractional span along the two screen axis
// vectors spanning each coordinate plane.
const (
	planeSpanStart = 0.35
	planeSpanEnd   = 0.65
)

// TranslationGeometry is one frame's screen-space snapshot of a
// translation gizmo: three axis arrows and three plane quads. It is
// immutable once built; consumers draw it and hit-test against it.
type TranslationGeometry struct {
	Center mgl32.Vec2
	Axes   [3]Arrow // X, Y, Z
	Planes [3]Quad  // XY, XZ, YZ
}

// ComputeTranslationGeometry builds the snapshot for one frame. Returns
// nil when the projector is missing or the target center does not
// project; callers treat nil as nothing to draw or test.
func ComputeTranslationGeometry(p Projector, target TargetState, cfg GizmoConfig) *TranslationGeometry {
	if p == nil {
		return nil
	}
	axes := axisSet(cfg.Mode, target.Rotation)
	center, arrows, ok := axisArrows(p, target.Position, axes, cfg)
	if !ok {
		return nil
	}

	g := &TranslationGeometry{Center: center, Axes: arrows}
	for pi, pair := range planeAxisPairs {
		u, v := arrows[pair[0]], arrows[pair[1]]
		if u.degenerate() || v.degenerate() {
			continue
		}
		// Quads reuse the already-projected axis directions instead of
		// reprojecting per corner.
		su := u.Dir.Mul(u.Len)
		sv := v.Dir.Mul(v.Len)
		g.Planes[pi] = Quad{
			center.Add(su.Mul(planeSpanStart)).Add(sv.Mul(planeSpanStart)),
			center.Add(su.Mul(planeSpanEnd)).Add(sv.Mul(planeSpanStart)),
			center.Add(su.Mul(planeSpanEnd)).Add(sv.Mul(planeSpanEnd)),
			center.Add(su.Mul(planeSpanStart)).Add(sv.Mul(planeSpanEnd)),
		}
	}
	return g
}
