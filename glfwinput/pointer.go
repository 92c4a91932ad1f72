// Package glfwinput feeds GLFW mouse state into a gizmo. It polls the
// window once per frame and edge-detects the left button, turning raw
// cursor state into the press/move/release sequence the drag state
// machine expects.
package glfwinput

import "github.com/go-gl/glfw/v3.3/glfw"

// Handler consumes pointer events in screen pixels. Both the per-kind
// gizmos and TransformGizmo from the core package satisfy it.
type Handler interface {
	Press(x, y float32) bool
	Move(x, y float32)
	Release(x, y float32)
}

// Pointer tracks one window's left-button drag state between polls.
type Pointer struct {
	window  *glfw.Window
	pressed bool
	lastX   float64
	lastY   float64
}

func NewPointer(window *glfw.Window) *Pointer {
	return &Pointer{window: window}
}

// Poll samples the cursor and left button once and forwards at most one
// event to the handler. Call once per frame, after glfw.PollEvents and
// before the gizmo's Update.
func (p *Pointer) Poll(h Handler) {
	x, y := p.window.GetCursorPos()
	down := p.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

	switch {
	case down && !p.pressed:
		h.Press(float32(x), float32(y))
	case down && p.pressed && (x != p.lastX || y != p.lastY):
		h.Move(float32(x), float32(y))
	case !down && p.pressed:
		h.Release(float32(x), float32(y))
	}

	p.pressed = down
	p.lastX, p.lastY = x, y
}
