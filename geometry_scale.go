package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// ScaleGeometry is one frame's screen-space snapshot of a scale gizmo:
// three axis shafts ending in square markers, plus one uniform handle at
// the center. Handles[0..2] are the X/Y/Z markers, Handles[3] the
// uniform one.
type ScaleGeometry struct {
	Center  mgl32.Vec2
	Axes    [3]Arrow
	Handles [4]mgl32.Vec2
}

// ComputeScaleGeometry builds the snapshot for one frame. Same arrow
// construction as translation, with a terminal marker instead of an
// arrowhead. Returns nil when the projector is missing or the target
// center does not project.
func ComputeScaleGeometry(p Projector, target TargetState, cfg GizmoConfig) *ScaleGeometry {
	if p == nil {
		return nil
	}
	axes := axisSet(cfg.Mode, target.Rotation)
	center, arrows, ok := axisArrows(p, target.Position, axes, cfg)
	if !ok {
		return nil
	}

	g := &ScaleGeometry{Center: center, Axes: arrows}
	for i := range arrows {
		if arrows[i].degenerate() {
			g.Handles[i] = center
			continue
		}
		g.Handles[i] = arrows[i].End
	}
	g.Handles[3] = center
	return g
}
