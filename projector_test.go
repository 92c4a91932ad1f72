package gizmo3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perspectiveProjector(camPos mgl32.Vec3, ref mgl32.Vec3) *MatrixProjector {
	view := mgl32.LookAtV(camPos, ref, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 800.0/600.0, 0.1, 1000)
	return NewMatrixProjector(view, proj, 800, 600, ref)
}

func TestMatrixProjectorFactoryGuards(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 0.1, 1000)

	assert.Nil(t, NewMatrixProjector(view, proj, 0, 600, mgl32.Vec3{}))
	assert.Nil(t, NewMatrixProjector(view, proj, 800, -1, mgl32.Vec3{}))
	assert.Nil(t, NewMatrixProjector(view, mgl32.Mat4{}, 800, 600, mgl32.Vec3{}))
	assert.NotNil(t, NewMatrixProjector(view, proj, 800, 600, mgl32.Vec3{}))
}

func TestMatrixProjectorCenterAndForward(t *testing.T) {
	p := perspectiveProjector(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	require.NotNil(t, p)

	center, ok := p.ProjectToScreen(mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 400, center.X(), 1e-2)
	assert.InDelta(t, 300, center.Y(), 1e-2)

	assert.InDelta(t, 0, p.CameraForward().X(), 1e-5)
	assert.InDelta(t, -1, p.CameraForward().Z(), 1e-5)
	assert.InDelta(t, 0, p.CameraPosition().Sub(mgl32.Vec3{0, 0, 10}).Len(), 1e-4)
}

func TestMatrixProjectorBehindCamera(t *testing.T) {
	p := perspectiveProjector(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	require.NotNil(t, p)

	_, ok := p.ProjectToScreen(mgl32.Vec3{0, 0, 20})
	assert.False(t, ok, "points behind the camera must not project")
}

func TestMatrixProjectorRayRoundTrip(t *testing.T) {
	p := perspectiveProjector(mgl32.Vec3{3, 4, 10}, mgl32.Vec3{})
	require.NotNil(t, p)

	world := mgl32.Vec3{1, 2, -3}
	screen, ok := p.ProjectToScreen(world)
	require.True(t, ok)

	ray, ok := p.CameraRay(screen)
	require.True(t, ok)
	assert.InDelta(t, 1, ray.Dir.Len(), 1e-4)

	// The ray through the projected pixel must pass through the point.
	toPoint := world.Sub(ray.Origin)
	dist := toPoint.Sub(ray.Dir.Mul(toPoint.Dot(ray.Dir))).Len()
	assert.Less(t, dist, float32(0.01))
}

func TestMatrixProjectorUnprojectOnReferencePlane(t *testing.T) {
	ref := mgl32.Vec3{0, 0, 0}
	p := perspectiveProjector(mgl32.Vec3{0, 0, 10}, ref)
	require.NotNil(t, p)

	got, ok := p.UnprojectToWorld(mgl32.Vec2{400, 300})
	require.True(t, ok)
	assert.InDelta(t, 0, got.Sub(ref).Len(), 1e-3)
}

func TestFixedProjectorDeterministic(t *testing.T) {
	p := NewFixedProjector(800, 600, 2)
	require.NotNil(t, p)

	s1, _ := p.ProjectToScreen(mgl32.Vec3{1, 2, 3})
	s2, _ := p.ProjectToScreen(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, s1, s2)
	assert.Equal(t, mgl32.Vec2{402, 296}, s1)

	w, ok := p.UnprojectToWorld(s1)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, w)

	ray, ok := p.CameraRay(mgl32.Vec2{400, 300})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, ray.Dir)

	assert.Nil(t, NewFixedProjector(0, 600, 1))
}

func TestClosestAxisParam(t *testing.T) {
	// Ray straight down -Z over x=100 against the world X axis.
	ray := Ray{Origin: mgl32.Vec3{100, 0, 10}, Dir: mgl32.Vec3{0, 0, -1}}
	s, ok := closestAxisParam(ray, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 100, s, 1e-4)

	// Parallel ray and axis have no stable closest point.
	_, ok = closestAxisParam(ray, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	assert.False(t, ok)
}
