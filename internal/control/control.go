// Package control maps pointer input onto the cube orientation and camera distance.
package control

import (
	"github.com/Faultbox/watercube/internal/engine/camera"
	"github.com/Faultbox/watercube/internal/engine/input"
	"github.com/Faultbox/watercube/internal/engine/scene"
)

// DragRotator turns pointer drags into Euler rotation of a node.
// It is idle until Press and returns to idle on Release.
type DragRotator struct {
	Target      *scene.Node
	Sensitivity float32 // Radians per pixel

	dragging     bool
	lastX, lastY float64
}

// NewDragRotator creates a rotator for target.
func NewDragRotator(target *scene.Node, sensitivity float32) *DragRotator {
	return &DragRotator{
		Target:      target,
		Sensitivity: sensitivity,
	}
}

// Dragging reports whether a drag is in progress.
func (d *DragRotator) Dragging() bool {
	return d.dragging
}

// Press starts a drag at (x, y).
func (d *DragRotator) Press(x, y float64) {
	d.dragging = true
	d.lastX, d.lastY = x, y
}

// Move rotates the target by the pointer delta since the last recorded
// position. Horizontal motion spins around Y, vertical motion around X.
// Moves while idle are ignored.
func (d *DragRotator) Move(x, y float64) {
	if !d.dragging {
		return
	}
	dx := float32(x - d.lastX)
	dy := float32(y - d.lastY)
	d.Target.Rotate(dy*d.Sensitivity, dx*d.Sensitivity, 0)
	d.lastX, d.lastY = x, y
}

// Release ends the drag regardless of where it happens.
func (d *DragRotator) Release() {
	d.dragging = false
}

// Action is a request the controls cannot fulfil themselves.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
	ActionResize
)

// Controls dispatches input events to the drag rotator and the camera.
type Controls struct {
	Drag   *DragRotator
	Camera *camera.PerspectiveCamera
}

// New creates controls rotating target and zooming cam.
func New(target *scene.Node, cam *camera.PerspectiveCamera, sensitivity float32) *Controls {
	return &Controls{
		Drag:   NewDragRotator(target, sensitivity),
		Camera: cam,
	}
}

// Handle applies one event. Pointer events are handled in place; quit,
// screenshot and resize are returned for the caller.
func (c *Controls) Handle(e input.Event) Action {
	switch e.Type {
	case input.EventQuit:
		return ActionQuit
	case input.EventMouseDown:
		c.Drag.Press(e.MouseX, e.MouseY)
	case input.EventMouseMove:
		c.Drag.Move(e.MouseX, e.MouseY)
	case input.EventMouseUp:
		c.Drag.Release()
	case input.EventWheel:
		c.Camera.HandleZoom(e.WheelY)
	case input.EventWindowResize:
		c.Camera.SetViewport(e.Width, e.Height)
		return ActionResize
	case input.EventKeyDown:
		switch e.Key {
		case input.KeyEscape:
			return ActionQuit
		case input.KeyF12:
			return ActionScreenshot
		}
	}
	return ActionNone
}
