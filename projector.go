package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a camera ray in world space. Dir is unit length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// Projector maps between world space and screen pixels for one frame's
// camera snapshot. Implementations must be stateless: the same input
// always yields the same output until a new Projector is built.
//
// Screen coordinates are pixels with the origin at the top-left corner
// and y growing downward.
type Projector interface {
	// ProjectToScreen maps a world point to screen pixels. Returns false
	// when the point cannot be projected (e.g. behind the camera).
	ProjectToScreen(world mgl32.Vec3) (mgl32.Vec2, bool)

	// UnprojectToWorld maps a screen point back onto the projector's
	// reference plane. Fallback only; drag math prefers CameraRay.
	UnprojectToWorld(screen mgl32.Vec2) (mgl32.Vec3, bool)

	// CameraRay builds the world-space ray passing through a screen point.
	CameraRay(screen mgl32.Vec2) (Ray, bool)

	CameraPosition() mgl32.Vec3
	CameraForward() mgl32.Vec3
}

// MatrixProjector adapts a host engine camera given its view and
// projection matrices. It is built once per frame and shared read-only by
// every gizmo using it.
type MatrixProjector struct {
	viewProj    mgl32.Mat4
	invViewProj mgl32.Mat4
	camPos      mgl32.Vec3
	camFwd      mgl32.Vec3
	width       float32
	height      float32
	refPoint    mgl32.Vec3
}

// NewMatrixProjector builds a projector from a view matrix, a projection
// matrix and the viewport size in pixels. refPoint anchors the reference
// plane used by UnprojectToWorld (normally the manipulated target's
// position). Returns nil when the viewport is empty or the combined
// matrix is not invertible; callers must check before use.
func NewMatrixProjector(view, proj mgl32.Mat4, width, height float32, refPoint mgl32.Vec3) *MatrixProjector {
	if width <= 0 || height <= 0 {
		return nil
	}
	vp := proj.Mul4(view)
	if float64(mgl32.Abs(vp.Det())) < 1e-12 {
		return nil
	}
	invView := view.Inv()
	return &MatrixProjector{
		viewProj:    vp,
		invViewProj: vp.Inv(),
		camPos:      invView.Col(3).Vec3(),
		camFwd:      invView.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize(),
		width:       width,
		height:      height,
		refPoint:    refPoint,
	}
}

func (p *MatrixProjector) ProjectToScreen(world mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() < 1e-6 {
		return mgl32.Vec2{}, false
	}
	inv := 1 / clip.W()
	return mgl32.Vec2{
		(clip.X()*inv*0.5 + 0.5) * p.width,
		(0.5 - clip.Y()*inv*0.5) * p.height,
	}, true
}

func (p *MatrixProjector) UnprojectToWorld(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	ray, ok := p.CameraRay(screen)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return intersectRayPlane(ray, p.refPoint, p.camFwd)
}

func (p *MatrixProjector) CameraRay(screen mgl32.Vec2) (Ray, bool) {
	ndcX := screen.X()/p.width*2 - 1
	ndcY := 1 - screen.Y()/p.height*2
	near, okNear := p.unprojectNDC(ndcX, ndcY, -1)
	far, okFar := p.unprojectNDC(ndcX, ndcY, 1)
	if !okNear || !okFar {
		return Ray{}, false
	}
	dir := far.Sub(near)
	if dir.Len() < 1e-9 {
		return Ray{}, false
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, true
}

func (p *MatrixProjector) unprojectNDC(x, y, z float32) (mgl32.Vec3, bool) {
	v := p.invViewProj.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if math.Abs(float64(v.W())) < 1e-9 {
		return mgl32.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v.W()), true
}

func (p *MatrixProjector) CameraPosition() mgl32.Vec3 { return p.camPos }
func (p *MatrixProjector) CameraForward() mgl32.Vec3  { return p.camFwd }

// FixedProjector is a deterministic orthographic projector: the camera
// sits on +Z at CameraDistance looking down -Z, world x maps to screen
// right and world y to screen up, scaled by PixelsPerUnit. Used by tests
// and headless hosts.
type FixedProjector struct {
	Width          float32
	Height         float32
	PixelsPerUnit  float32
	CameraDistance float32
}

// NewFixedProjector builds a fixed projector over a viewport. Zero or
// negative pixelsPerUnit defaults to 1.
func NewFixedProjector(width, height, pixelsPerUnit float32) *FixedProjector {
	if width <= 0 || height <= 0 {
		return nil
	}
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &FixedProjector{
		Width:          width,
		Height:         height,
		PixelsPerUnit:  pixelsPerUnit,
		CameraDistance: 10,
	}
}

func (p *FixedProjector) ProjectToScreen(world mgl32.Vec3) (mgl32.Vec2, bool) {
	return mgl32.Vec2{
		p.Width/2 + world.X()*p.PixelsPerUnit,
		p.Height/2 - world.Y()*p.PixelsPerUnit,
	}, true
}

func (p *FixedProjector) UnprojectToWorld(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	return mgl32.Vec3{
		(screen.X() - p.Width/2) / p.PixelsPerUnit,
		(p.Height/2 - screen.Y()) / p.PixelsPerUnit,
		0,
	}, true
}

func (p *FixedProjector) CameraRay(screen mgl32.Vec2) (Ray, bool) {
	at, _ := p.UnprojectToWorld(screen)
	return Ray{
		Origin: mgl32.Vec3{at.X(), at.Y(), p.CameraDistance},
		Dir:    mgl32.Vec3{0, 0, -1},
	}, true
}

func (p *FixedProjector) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, p.CameraDistance}
}

func (p *FixedProjector) CameraForward() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, -1}
}

// intersectRayPlane intersects a ray with the plane through point with the
// given normal. Fails when the ray is near-parallel to the plane.
func intersectRayPlane(ray Ray, point, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := ray.Dir.Dot(normal)
	if math.Abs(float64(denom)) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := point.Sub(ray.Origin).Dot(normal) / denom
	return ray.Origin.Add(ray.Dir.Mul(t)), true
}

// closestAxisParam returns the parameter s along the axis line
// (axisOrigin + s*axisDir) closest to the ray, using the closed-form
// closest-point between two lines. Fails when ray and axis are
// near-parallel.
func closestAxisParam(ray Ray, axisOrigin, axisDir mgl32.Vec3) (float32, bool) {
	r := ray.Origin.Sub(axisOrigin)
	a := ray.Dir.Dot(ray.Dir)
	b := ray.Dir.Dot(axisDir)
	e := axisDir.Dot(axisDir)
	f := axisDir.Dot(r)

	det := a*e - b*b
	if det < 1e-6 {
		return 0, false
	}
	c := ray.Dir.Dot(r)
	return (a*f - b*c) / det, true
}
