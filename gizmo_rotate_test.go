package gizmo3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zRingCursor returns the screen point on the head-on Z ring at the
// given in-plane angle, for the fixed 800x600 projector at unit scale.
func zRingCursor(angleDeg float64) (float32, float32) {
	rad := angleDeg * math.Pi / 180
	return 400 + 100*float32(math.Cos(rad)), 300 - 100*float32(math.Sin(rad))
}

type rotationEvent struct {
	element  Element
	angleDeg float32
	snapped  bool
}

func recordRotation(g *RotationGizmo) (*[]string, *[]rotationEvent) {
	var order []string
	var events []rotationEvent
	g.OnDragStarted = func(e Element) { order = append(order, "started "+e.String()) }
	g.OnDragEnded = func(e Element) { order = append(order, "ended "+e.String()) }
	g.OnRotationChanged = func(e Element, _ TransformMode, angleDeg float32, snapped bool) {
		order = append(order, "changed")
		events = append(events, rotationEvent{e, angleDeg, snapped})
	}
	return &order, &events
}

func TestRotationDrag(t *testing.T) {
	g := NewRotationGizmo()
	order, events := recordRotation(g)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	require.True(t, g.Press(500, 300))
	assert.Equal(t, ElementZ, g.ActiveElement())
	assert.InDelta(t, 0, g.StartAngle(), 1e-3)

	g.Move(400, 200)
	g.Release(400, 200)

	assert.Equal(t, []string{"started Z", "changed", "ended Z"}, *order)
	require.Len(t, *events, 1)
	assert.InDelta(t, 90, (*events)[0].angleDeg, 1e-2)
	assert.False(t, (*events)[0].snapped)
}

// Crossing the wrap point reports the short way around, never a jump to
// the far side of the circle.
func TestRotationDeltaWrapsShortWay(t *testing.T) {
	g := NewRotationGizmo()
	_, events := recordRotation(g)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	x0, y0 := zRingCursor(-10)
	require.True(t, g.Press(x0, y0))
	assert.InDelta(t, -10, g.StartAngle(), 0.2)

	x1, y1 := zRingCursor(10)
	g.Move(x1, y1)

	require.Len(t, *events, 1)
	assert.InDelta(t, 20, (*events)[0].angleDeg, 0.2)
	assert.InDelta(t, 10, g.CurrentAngle(), 0.2)

	g.Release(x1, y1)
}

func TestRotationSnapAbsoluteAnchorsAtStartAngle(t *testing.T) {
	g := NewRotationGizmo()
	g.SnapEnabled = true
	g.SnapIncrement = 15
	_, events := recordRotation(g)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	x0, y0 := zRingCursor(-10)
	require.True(t, g.Press(x0, y0))

	// Raw delta 20 from start -10: the absolute angle 10 snaps to 15, so
	// the reported delta is 25.
	x1, y1 := zRingCursor(10)
	g.Move(x1, y1)

	require.Len(t, *events, 1)
	assert.True(t, (*events)[0].snapped)
	assert.InDelta(t, 25, (*events)[0].angleDeg, 0.2)

	g.Release(x1, y1)
}

func TestRotationSnapRelative(t *testing.T) {
	g := NewRotationGizmo()
	g.SnapEnabled = true
	g.SnapIncrement = 15
	g.SnapToAbsolute = false
	_, events := recordRotation(g)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	x0, y0 := zRingCursor(-10)
	require.True(t, g.Press(x0, y0))
	x1, y1 := zRingCursor(10)
	g.Move(x1, y1)

	require.Len(t, *events, 1)
	assert.InDelta(t, 15, (*events)[0].angleDeg, 0.2)

	g.Release(x1, y1)
}

func TestRotationReleaseResetsWedge(t *testing.T) {
	g := NewRotationGizmo()
	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	require.True(t, g.Press(500, 300))
	g.Move(400, 200)
	assert.InDelta(t, 90, g.CurrentAngle(), 1e-2)

	g.Release(400, 200)
	assert.Zero(t, g.StartAngle())
	assert.Zero(t, g.CurrentAngle())
	assert.False(t, g.IsActive())
}

// Rotation geometry keeps refreshing mid-drag: the wedge needs the live
// center and radius.
func TestRotationGeometryLiveDuringDrag(t *testing.T) {
	g := NewRotationGizmo()
	p := NewFixedProjector(800, 600, 1)

	g.Update(p, originTarget())
	require.True(t, g.Press(500, 300))

	g.Size = 200
	g.Update(p, originTarget())

	require.NotNil(t, g.Geometry())
	assert.InDelta(t, 130, g.Geometry().Radii[2], 1e-3, "smoothed radius advances while dragging")
	assert.True(t, g.IsActive())

	g.Release(500, 300)
}

func TestRotationNilProjectorCancelsDrag(t *testing.T) {
	g := NewRotationGizmo()
	order, _ := recordRotation(g)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())
	require.True(t, g.Press(500, 300))
	g.Move(400, 200)

	g.Update(nil, originTarget())

	assert.False(t, g.IsActive())
	assert.Nil(t, g.Geometry())
	assert.Zero(t, g.StartAngle())
	assert.Zero(t, g.CurrentAngle())
	assert.Equal(t, "ended Z", (*order)[len(*order)-1])
}

func TestRotationPressOutsideArcRejected(t *testing.T) {
	g := NewRotationGizmo()
	g.Update(NewFixedProjector(800, 600, 1), originTarget())

	// (400, 200) sits on the edge-on X ring outside its facing arc and on
	// the ungated Z ring: the press must land on Z.
	require.True(t, g.Press(400, 200))
	assert.Equal(t, ElementZ, g.ActiveElement())
	g.Release(400, 200)
}
