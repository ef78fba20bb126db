// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a pinhole camera whose orientation is fixed when it is
// aimed and whose distance along Z is adjusted by the scroll wheel.
type PerspectiveCamera struct {
	FOV    float32 // Vertical field of view (degrees)
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	Position mgl32.Vec3

	// Orientation captured by LookAt; zooming does not re-aim the camera.
	forward mgl32.Vec3
	up      mgl32.Vec3

	// Zoom constraints
	MinDistance float32
	MaxDistance float32
	ZoomStep    float32
}

// NewPerspectiveCamera creates the default scene camera at (3, 3, 5) looking at
// the origin.
func NewPerspectiveCamera(aspect float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:         75,
		Aspect:      aspect,
		Near:        0.1,
		Far:         1000,
		Position:    mgl32.Vec3{3, 3, 5},
		MinDistance: 2,
		MaxDistance: 10,
		ZoomStep:    0.1,
	}
	c.LookAt(mgl32.Vec3{0, 0, 0})
	return c
}

// LookAt aims the camera at target from its current position.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	f := target.Sub(c.Position)
	if f.Len() == 0 {
		f = mgl32.Vec3{0, 0, -1}
	}
	c.forward = f.Normalize()
	c.up = mgl32.Vec3{0, 1, 0}
}

// Forward returns the unit viewing direction.
func (c *PerspectiveCamera) Forward() mgl32.Vec3 {
	return c.forward
}

// Distance returns the camera Z coordinate, which the wheel controls.
func (c *PerspectiveCamera) Distance() float32 {
	return c.Position[2]
}

// HandleZoom moves the camera one step along Z. A positive delta (scrolling
// toward the user) moves away from the scene, anything else moves closer.
// The result is clamped to [MinDistance, MaxDistance].
func (c *PerspectiveCamera) HandleZoom(delta float64) {
	if delta > 0 {
		c.Position[2] += c.ZoomStep
	} else {
		c.Position[2] -= c.ZoomStep
	}
	c.Position[2] = clamp(c.Position[2], c.MinDistance, c.MaxDistance)
}

// SetViewport updates the aspect ratio for a new drawable size.
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.forward), c.up)
}

// ProjectionMatrix returns the perspective projection.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
