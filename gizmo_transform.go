package gizmo3d

import "github.com/google/uuid"

// subGizmo is the per-frame contract every gizmo kind satisfies.
type subGizmo interface {
	Update(proj Projector, target TargetState)
	Press(x, y float32) bool
	Move(x, y float32)
	Release(x, y float32)
	ActiveElement() Element
	IsActive() bool
}

// TransformGizmo composes the three manipulation kinds over one target.
// All sub-gizmos share a single per-frame Projector, constructed by the
// host and handed in read-only; the composition only fans frames and
// pointer events out, all manipulation semantics live in the kinds.
type TransformGizmo struct {
	// Id tags this instance's events when a host runs several gizmos.
	Id string

	Translation *TranslationGizmo
	Rotation    *RotationGizmo
	Scale       *ScaleGizmo

	ShowTranslation bool
	ShowRotation    bool
	ShowScale       bool

	active subGizmo
}

func NewTransformGizmo() *TransformGizmo {
	return &TransformGizmo{
		Id:              uuid.NewString(),
		Translation:     NewTranslationGizmo(),
		Rotation:        NewRotationGizmo(),
		Scale:           NewScaleGizmo(),
		ShowTranslation: true,
		ShowRotation:    true,
		ShowScale:       true,
	}
}

// SetTransformMode switches all kinds between world and local axes.
func (t *TransformGizmo) SetTransformMode(mode TransformMode) {
	t.Translation.Mode = mode
	t.Rotation.Mode = mode
	t.Scale.Mode = mode
}

// SetSnapEnabled toggles snapping on all kinds; per-kind increments are
// set on the sub-gizmos directly.
func (t *TransformGizmo) SetSnapEnabled(enabled bool) {
	t.Translation.SnapEnabled = enabled
	t.Rotation.SnapEnabled = enabled
	t.Scale.SnapEnabled = enabled
}

// Update fans one frame out to the enabled kinds. Hidden kinds receive a
// nil projector so any session they hold is cancelled.
func (t *TransformGizmo) Update(proj Projector, target TargetState) {
	for _, s := range t.subs() {
		if s.enabled {
			s.gizmo.Update(proj, target)
		} else {
			s.gizmo.Update(nil, target)
		}
	}
	// A kind may have cancelled its own session (nil projector, lost
	// target); release pointer ownership with it.
	if t.active != nil && !t.active.IsActive() {
		t.active = nil
	}
}

// Press routes a pointer press to the first kind that accepts it, in
// fixed priority order: translation axes, scale handles, then rotation
// rings. The smaller handle shapes win over the larger ring regions.
func (t *TransformGizmo) Press(x, y float32) bool {
	if t.active != nil {
		return false
	}
	for _, s := range t.subs() {
		if s.enabled && s.gizmo.Press(x, y) {
			t.active = s.gizmo
			return true
		}
	}
	return false
}

// Move forwards pointer motion to the kind owning the active session.
func (t *TransformGizmo) Move(x, y float32) {
	if t.active != nil {
		t.active.Move(x, y)
	}
}

// Release ends the active session, wherever the pointer is.
func (t *TransformGizmo) Release(x, y float32) {
	if t.active != nil {
		t.active.Release(x, y)
		t.active = nil
	}
}

// ActiveElement reports the element currently being dragged, across all
// kinds.
func (t *TransformGizmo) ActiveElement() Element {
	if t.active == nil {
		return ElementNone
	}
	return t.active.ActiveElement()
}

// IsActive reports whether any kind holds a drag session.
func (t *TransformGizmo) IsActive() bool {
	return t.active != nil && t.active.IsActive()
}

type subEntry struct {
	gizmo   subGizmo
	enabled bool
}

func (t *TransformGizmo) subs() [3]subEntry {
	return [3]subEntry{
		{t.Translation, t.ShowTranslation},
		{t.Scale, t.ShowScale},
		{t.Rotation, t.ShowRotation},
	}
}
