package gizmo3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformGizmoDefaults(t *testing.T) {
	a := NewTransformGizmo()
	b := NewTransformGizmo()

	assert.NotEmpty(t, a.Id)
	assert.NotEqual(t, a.Id, b.Id, "instances carry distinct ids")
	assert.True(t, a.ShowTranslation)
	assert.True(t, a.ShowRotation)
	assert.True(t, a.ShowScale)
	assert.False(t, a.IsActive())
	assert.Equal(t, ElementNone, a.ActiveElement())
}

func TestTransformGizmoFanOut(t *testing.T) {
	g := NewTransformGizmo()
	g.SetTransformMode(TransformLocal)
	g.SetSnapEnabled(true)

	assert.Equal(t, TransformLocal, g.Translation.Mode)
	assert.Equal(t, TransformLocal, g.Rotation.Mode)
	assert.Equal(t, TransformLocal, g.Scale.Mode)
	assert.True(t, g.Translation.SnapEnabled)
	assert.True(t, g.Rotation.SnapEnabled)
	assert.True(t, g.Scale.SnapEnabled)

	g.Update(NewFixedProjector(800, 600, 1), originTarget())
	assert.NotNil(t, g.Translation.Geometry())
	assert.NotNil(t, g.Rotation.Geometry())
	assert.NotNil(t, g.Scale.Geometry())
}

// (500, 300) is simultaneously the translation X arrow tip, the scale X
// marker and a point on the rotation Z ring. Routing must resolve it by
// kind priority, translation first.
func TestTransformGizmoPressPriority(t *testing.T) {
	p := NewFixedProjector(800, 600, 1)

	g := NewTransformGizmo()
	g.Update(p, originTarget())
	require.True(t, g.Press(500, 300))
	assert.True(t, g.Translation.IsActive())
	assert.False(t, g.Scale.IsActive())
	g.Release(500, 300)

	g = NewTransformGizmo()
	g.ShowTranslation = false
	g.Update(p, originTarget())
	require.True(t, g.Press(500, 300))
	assert.True(t, g.Scale.IsActive())
	assert.False(t, g.Rotation.IsActive())
	g.Release(500, 300)

	g = NewTransformGizmo()
	g.ShowTranslation = false
	g.ShowScale = false
	g.Update(p, originTarget())
	require.True(t, g.Press(500, 300))
	assert.True(t, g.Rotation.IsActive())
	assert.Equal(t, ElementZ, g.ActiveElement())
	g.Release(500, 300)
}

func TestTransformGizmoForwardsToActiveKind(t *testing.T) {
	g := NewTransformGizmo()
	var offsets []mgl32.Vec3
	g.Translation.OnTranslationChanged = func(_ Element, _ TransformMode, offset mgl32.Vec3, _ bool) {
		offsets = append(offsets, offset)
	}

	g.Update(NewFixedProjector(800, 600, 1), originTarget())
	require.True(t, g.Press(500, 300))
	assert.Equal(t, ElementX, g.ActiveElement())

	assert.False(t, g.Press(400, 200), "second press while a drag is active is ignored")

	g.Move(550, 300)
	g.Release(0, 0)

	assert.False(t, g.IsActive())
	assert.False(t, g.Translation.IsActive())
	require.Len(t, offsets, 1)
	assert.InDelta(t, 0, offsets[0].Sub(mgl32.Vec3{50, 0, 0}).Len(), 1e-3)
}

func TestTransformGizmoHiddenKindCancelsItsDrag(t *testing.T) {
	g := NewTransformGizmo()
	var ended []Element
	g.Translation.OnDragEnded = func(e Element) { ended = append(ended, e) }

	p := NewFixedProjector(800, 600, 1)
	g.Update(p, originTarget())
	require.True(t, g.Press(500, 300))
	require.True(t, g.Translation.IsActive())

	g.ShowTranslation = false
	g.Update(p, originTarget())

	assert.False(t, g.IsActive(), "hiding the owning kind releases pointer ownership")
	assert.Equal(t, []Element{ElementX}, ended)

	// The pointer is free again for the remaining kinds.
	require.True(t, g.Press(500, 300))
	assert.True(t, g.Scale.IsActive())
	g.Release(500, 300)
}

func TestTransformGizmoNilProjectorCancelsAll(t *testing.T) {
	g := NewTransformGizmo()
	g.Update(NewFixedProjector(800, 600, 1), originTarget())
	require.True(t, g.Press(500, 300))

	g.Update(nil, originTarget())

	assert.False(t, g.IsActive())
	assert.Equal(t, ElementNone, g.ActiveElement())
	assert.False(t, g.Press(500, 300), "no geometry, nothing to press")
}
