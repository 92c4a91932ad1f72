package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Arrow is one axis handle in screen space. Dir is the unit screen
// direction of the axis; a zero Dir marks a degenerate axis (pointing
// straight into the camera) that is neither drawn nor hittable.
type Arrow struct {
	Start    mgl32.Vec2 // trimmed span start
	End      mgl32.Vec2 // trimmed span end
	Dir      mgl32.Vec2
	Len      float32 // full pixel length from center, before span trim
	WorldDir mgl32.Vec3
}

func (a Arrow) degenerate() bool { return a.Dir == (mgl32.Vec2{}) }

// Quad is a screen-space quadrilateral, corners in order.
type Quad [4]mgl32.Vec2

// axisArrows implements the shared screen-space axis construction: the
// target center is projected once, each axis direction is derived by
// projecting a unit offset and normalizing, then rescaled to the
// requested pixel size. Projecting the far endpoint directly would
// shrink the handle under perspective; fixing the apparent length keeps
// the widget usable at any camera distance. If the largest axis exceeds
// maxSize, all three rescale uniformly.
func axisArrows(p Projector, pos mgl32.Vec3, axes [3]mgl32.Vec3, cfg GizmoConfig) (mgl32.Vec2, [3]Arrow, bool) {
	center, ok := p.ProjectToScreen(pos)
	if !ok {
		return mgl32.Vec2{}, [3]Arrow{}, false
	}

	var arrows [3]Arrow
	maxLen := float32(0)
	for i, axis := range axes {
		tip, ok := p.ProjectToScreen(pos.Add(axis))
		if !ok {
			continue
		}
		d := tip.Sub(center)
		if d.Len() < 1e-5 {
			continue
		}
		arrows[i] = Arrow{
			Dir:      d.Normalize(),
			Len:      cfg.Size,
			WorldDir: axis,
		}
		if arrows[i].Len > maxLen {
			maxLen = arrows[i].Len
		}
	}

	if cfg.MaxScreenSize > 0 && maxLen > cfg.MaxScreenSize {
		rescale := cfg.MaxScreenSize / maxLen
		for i := range arrows {
			arrows[i].Len *= rescale
		}
	}

	for i := range arrows {
		if arrows[i].degenerate() {
			continue
		}
		arrows[i].Start = center.Add(arrows[i].Dir.Mul(arrows[i].Len * cfg.SpanStart))
		arrows[i].End = center.Add(arrows[i].Dir.Mul(arrows[i].Len * cfg.SpanEnd))
	}
	return center, arrows, true
}

// planeAxisPairs maps plane index (XY, XZ, YZ) to its two spanning axes.
var planeAxisPairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// planeElements maps plane index to its element id.
var planeElements = [3]Element{ElementXY, ElementXZ, ElementYZ}

// axisElements maps axis index to its element id.
var axisElements = [3]Element{ElementX, ElementY, ElementZ}

// pointSegmentDistance returns the distance from p to the segment ab.
func pointSegmentDistance(p, a, b mgl32.Vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-9 {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Mul(t))).Len()
}

// pointInQuad tests containment with edge-crossing parity.
func pointInQuad(p mgl32.Vec2, q Quad) bool {
	inside := false
	j := len(q) - 1
	for i := 0; i < len(q); i++ {
		yi, yj := q[i].Y(), q[j].Y()
		if (yi > p.Y()) != (yj > p.Y()) {
			x := q[i].X() + (p.Y()-yi)/(yj-yi)*(q[j].X()-q[i].X())
			if p.X() < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
