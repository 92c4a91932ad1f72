package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Element identifies one interactive region of a gizmo.
type Element int

const (
	ElementNone Element = iota
	ElementX
	ElementY
	ElementZ
	ElementUniform
	ElementXY
	ElementXZ
	ElementYZ
)

// Id returns the wire encoding used in host events: 0=none, 1=X, 2=Y,
// 3=Z, 4=uniform for axes and handles; 1=XY, 2=XZ, 3=YZ for planes.
func (e Element) Id() int {
	switch {
	case e >= ElementX && e <= ElementUniform:
		return int(e)
	case e >= ElementXY && e <= ElementYZ:
		return int(e-ElementXY) + 1
	}
	return 0
}

// AxisIndex returns 0/1/2 for X/Y/Z, -1 otherwise.
func (e Element) AxisIndex() int {
	if e >= ElementX && e <= ElementZ {
		return int(e - ElementX)
	}
	return -1
}

// PlaneIndex returns 0/1/2 for XY/XZ/YZ, -1 otherwise.
func (e Element) PlaneIndex() int {
	if e >= ElementXY && e <= ElementYZ {
		return int(e - ElementXY)
	}
	return -1
}

func (e Element) String() string {
	switch e {
	case ElementX:
		return "X"
	case ElementY:
		return "Y"
	case ElementZ:
		return "Z"
	case ElementUniform:
		return "uniform"
	case ElementXY:
		return "XY"
	case ElementXZ:
		return "XZ"
	case ElementYZ:
		return "YZ"
	}
	return "none"
}

// TransformMode selects the axis set a gizmo manipulates along.
type TransformMode int

const (
	// TransformWorld uses the fixed world basis.
	TransformWorld TransformMode = iota
	// TransformLocal derives the axes from the target's orientation.
	TransformLocal
)

func (m TransformMode) String() string {
	if m == TransformLocal {
		return "local"
	}
	return "world"
}

// TargetState is the host-owned transform of the manipulated object,
// sampled once per frame. The gizmo never mutates it; it only reports
// deltas relative to the value captured at drag start.
type TargetState struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// axisSet resolves the three manipulation axes for a mode. Local mode
// rotates the world basis by the target orientation.
func axisSet(mode TransformMode, rot mgl32.Quat) [3]mgl32.Vec3 {
	world := [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if mode != TransformLocal {
		return world
	}
	return [3]mgl32.Vec3{
		rot.Rotate(world[0]),
		rot.Rotate(world[1]),
		rot.Rotate(world[2]),
	}
}

// GizmoConfig carries the host-facing knobs shared by all gizmo kinds.
// Zero values are replaced by per-kind defaults in the constructors;
// fields may be changed between frames but are not observed mid-drag
// (the session freezes what it needs at press time).
type GizmoConfig struct {
	// Size is the requested apparent axis length in pixels, independent
	// of camera distance.
	Size float32

	// MaxScreenSize caps the on-screen handle size; all axes rescale
	// uniformly when exceeded.
	MaxScreenSize float32

	// SpanStart/SpanEnd trim the drawn and hittable axis span to a
	// fraction of its length from the center, so two gizmo kinds can
	// share one radial region without overlapping.
	SpanStart float32
	SpanEnd   float32

	SnapEnabled bool
	// SnapIncrement is in world units for translation, degrees for
	// rotation and factor units for scale.
	SnapIncrement float32
	// SnapToAbsolute snaps the final absolute value onto the lattice
	// instead of the delta itself.
	SnapToAbsolute bool

	Mode TransformMode

	// Log receives recoverable per-sample failures at debug level.
	// Nil disables logging.
	Log Logger
}

const (
	defaultSize            = 100
	defaultMaxScreenSize   = 300
	defaultSnapTranslation = 1
	defaultSnapRotation    = 15
	defaultSnapScale       = 0.1
)

func defaultConfig(snapIncrement float32) GizmoConfig {
	return GizmoConfig{
		Size:           defaultSize,
		MaxScreenSize:  defaultMaxScreenSize,
		SpanStart:      0,
		SpanEnd:        1,
		SnapIncrement:  snapIncrement,
		SnapToAbsolute: true,
	}
}

// gizmoCore holds the per-instance runtime state shared by all kinds.
// Caches live on the instance, never on package globals, so sibling
// gizmos stay independently testable.
type gizmoCore struct {
	GizmoConfig

	// OnDragStarted fires once when a press hits an element.
	OnDragStarted func(element Element)
	// OnDragEnded fires once per started drag, on release or host-side
	// cancellation, regardless of where the pointer ends up.
	OnDragEnded func(element Element)

	proj    Projector
	target  TargetState
	session *dragSession
}

// ActiveElement reports the element currently being dragged.
func (c *gizmoCore) ActiveElement() Element {
	if c.session == nil {
		return ElementNone
	}
	return c.session.element
}

// IsActive reports whether a drag session is in progress.
func (c *gizmoCore) IsActive() bool { return c.session != nil }

func (c *gizmoCore) log() Logger {
	if c.Log == nil {
		return nopLog
	}
	return c.Log
}

func (c *gizmoCore) beginSession(s *dragSession) {
	c.session = s
	if c.OnDragStarted != nil {
		c.OnDragStarted(s.element)
	}
}

func (c *gizmoCore) endSession() {
	if c.session == nil {
		return
	}
	element := c.session.element
	c.session = nil
	if c.OnDragEnded != nil {
		c.OnDragEnded(element)
	}
}
