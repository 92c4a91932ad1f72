package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Pixel thresholds for hit-testing the screen-space snapshot.
const (
	lineHitThreshold   = 8  // axis shafts
	circleHitThreshold = 10 // rotation rings
	handleHalfExtent   = 12 // square markers, half side length
)

// HitTranslation resolves a cursor position against a translation
// snapshot. Axis shafts are tested before plane quads: axes take
// priority over the larger, potentially overlapping plane regions.
// Among axis candidates the closest wins, ties broken in X/Y/Z order;
// plane containment ties break in XY/XZ/YZ order.
func HitTranslation(g *TranslationGeometry, cursor mgl32.Vec2) Element {
	if g == nil {
		return ElementNone
	}

	best := ElementNone
	bestDist := float32(lineHitThreshold)
	for i, a := range g.Axes {
		if a.degenerate() {
			continue
		}
		if d := pointSegmentDistance(cursor, a.Start, a.End); d < bestDist {
			bestDist = d
			best = axisElements[i]
		}
	}
	if best != ElementNone {
		return best
	}

	for pi, q := range g.Planes {
		if q == (Quad{}) {
			continue
		}
		if pointInQuad(cursor, q) {
			return planeElements[pi]
		}
	}
	return ElementNone
}

// HitRotation resolves a cursor position against a rotation snapshot.
// While no drag is active, a circle is only hittable within a fixed arc
// centered on its camera-facing angle, matching the partial arc drawn
// when inactive; the actively dragged circle is hittable everywhere.
// Closest circle wins, ties broken in X/Y/Z order.
func HitRotation(g *RotationGeometry, cursor mgl32.Vec2, active Element) Element {
	if g == nil {
		return ElementNone
	}

	best := ElementNone
	bestDist := float32(circleHitThreshold)
	for i, c := range g.Circles {
		n := len(c.Points)
		if n < 2 {
			continue
		}
		gated := c.HasFacing && active != axisElements[i]
		for s := 0; s < n; s++ {
			next := (s + 1) % n
			if gated {
				if angleDistDeg(c.Angles[s], c.FacingAngle) > inactiveArcDeg ||
					angleDistDeg(c.Angles[next], c.FacingAngle) > inactiveArcDeg {
					continue
				}
			}
			if d := pointSegmentDistance(cursor, c.Points[s], c.Points[next]); d < bestDist {
				bestDist = d
				best = axisElements[i]
			}
		}
	}
	return best
}

// HitScale resolves a cursor position against a scale snapshot. Terminal
// squares are tested first, then the center uniform square, then the
// shafts: squares take priority over the lines they terminate. Among
// square candidates the closest center wins, ties in X/Y/Z order.
func HitScale(g *ScaleGeometry, cursor mgl32.Vec2) Element {
	if g == nil {
		return ElementNone
	}

	best := ElementNone
	bestDist := float32(0)
	for i := 0; i < 3; i++ {
		if g.Axes[i].degenerate() {
			continue
		}
		if inSquare(cursor, g.Handles[i], handleHalfExtent) {
			d := cursor.Sub(g.Handles[i]).Len()
			if best == ElementNone || d < bestDist {
				bestDist = d
				best = axisElements[i]
			}
		}
	}
	if best != ElementNone {
		return best
	}

	if inSquare(cursor, g.Handles[3], handleHalfExtent) {
		return ElementUniform
	}

	bestDist = lineHitThreshold
	for i, a := range g.Axes {
		if a.degenerate() {
			continue
		}
		if d := pointSegmentDistance(cursor, a.Start, a.End); d < bestDist {
			bestDist = d
			best = axisElements[i]
		}
	}
	return best
}

func inSquare(p, center mgl32.Vec2, halfExtent float32) bool {
	d := p.Sub(center)
	return mgl32.Abs(d.X()) <= halfExtent && mgl32.Abs(d.Y()) <= halfExtent
}
