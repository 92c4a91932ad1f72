package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// circleSamples is the number of angles sampled per rotation circle.
	// Each sample is projected individually: a circle foreshortens into
	// an ellipse under perspective, so no single scale factor exists.
	circleSamples = 64

	// radiusSmoothing is the exponential filter factor applied to the
	// screen radius frame-to-frame to suppress projection jitter.
	radiusSmoothing = 0.3

	// inactiveArcDeg is the half-width of the hittable (and drawn) arc
	// of an inactive circle, centered on the camera-facing angle.
	inactiveArcDeg = 40
)

// Circle is one rotation ring in screen space. Points[i] is the
// projection of the sample at Angles[i] degrees, measured from the first
// in-plane axis toward the second. Points whose world sample failed to
// project are dropped together with their angle.
type Circle struct {
	Points []mgl32.Vec2
	Angles []float32

	// FacingAngle is the in-plane angle (degrees) at which the circle
	// faces the camera; the inactive arc is centered there. HasFacing is
	// false when the circle plane is perpendicular to the view direction,
	// in which case the whole circle faces the camera.
	FacingAngle float32
	HasFacing   bool

	// Axis is the world-space rotation axis (the plane normal).
	Axis mgl32.Vec3
	// U, V are the world-space in-plane reference axes.
	U, V mgl32.Vec3
}

// RotationGeometry is one frame's screen-space snapshot of a rotation
// gizmo: three sampled circles around a shared center.
type RotationGeometry struct {
	Center mgl32.Vec2
	// Radii are the smoothed screen radii in pixels, one per circle.
	Radii   [3]float32
	Circles [3]Circle
}

// ComputeRotationGeometry builds the snapshot for one frame. prevRadii
// carries the previous frame's screen radii for smoothing; zero entries
// skip the filter (first frame). Returns nil when the projector is
// missing or the target center does not project.
func ComputeRotationGeometry(p Projector, target TargetState, cfg GizmoConfig, prevRadii [3]float32) *RotationGeometry {
	if p == nil {
		return nil
	}
	center, ok := p.ProjectToScreen(target.Position)
	if !ok {
		return nil
	}
	axes := axisSet(cfg.Mode, target.Rotation)

	g := &RotationGeometry{Center: center}
	camVec := p.CameraPosition().Sub(target.Position)

	for i := 0; i < 3; i++ {
		u := axes[(i+1)%3]
		v := axes[(i+2)%3]

		// Constant apparent size: measure how many pixels one world unit
		// spans in this plane, then pick the world radius that lands on
		// the requested pixel size.
		unitPx := float32(0)
		for _, a := range [2]mgl32.Vec3{u, v} {
			tip, ok := p.ProjectToScreen(target.Position.Add(a))
			if !ok {
				continue
			}
			if l := tip.Sub(center).Len(); l > unitPx {
				unitPx = l
			}
		}
		if unitPx < 1e-5 {
			continue
		}

		radius := cfg.Size
		if cfg.MaxScreenSize > 0 && radius > cfg.MaxScreenSize {
			radius = cfg.MaxScreenSize
		}
		if prev := prevRadii[i]; prev > 0 {
			radius = prev + (radius-prev)*radiusSmoothing
		}
		g.Radii[i] = radius
		worldRadius := radius / unitPx

		c := Circle{Axis: axes[i], U: u, V: v}
		for s := 0; s < circleSamples; s++ {
			ang := 2 * math.Pi * float64(s) / circleSamples
			offset := u.Mul(float32(math.Cos(ang))).Add(v.Mul(float32(math.Sin(ang))))
			pt, ok := p.ProjectToScreen(target.Position.Add(offset.Mul(worldRadius)))
			if !ok {
				continue
			}
			c.Points = append(c.Points, pt)
			c.Angles = append(c.Angles, float32(ang)*180/math.Pi)
		}

		planar := camVec.Sub(axes[i].Mul(camVec.Dot(axes[i])))
		if planar.Len() > 1e-4 {
			c.HasFacing = true
			c.FacingAngle = float32(math.Atan2(float64(planar.Dot(v)), float64(planar.Dot(u)))) * 180 / math.Pi
		}
		g.Circles[i] = c
	}
	return g
}

// normalizeAngleDeg maps an angle in degrees into (-180, 180].
func normalizeAngleDeg(a float32) float32 {
	a = float32(math.Mod(float64(a)+180, 360))
	if a <= 0 {
		a += 360
	}
	return a - 180
}

// angleDistDeg is the absolute angular distance between two angles,
// in [0, 180].
func angleDistDeg(a, b float32) float32 {
	d := normalizeAngleDeg(a - b)
	if d < 0 {
		return -d
	}
	return d
}
