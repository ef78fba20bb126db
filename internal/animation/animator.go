// Package animation advances the water scene once per rendered frame.
package animation

import (
	"github.com/Faultbox/watercube/internal/engine/palette"
	"github.com/Faultbox/watercube/internal/engine/scene"
	"github.com/Faultbox/watercube/internal/engine/water"
)

// Config holds per-frame animation constants.
type Config struct {
	TimeStep   float64 // Clock advance per frame
	AutoRotate float32 // Cube Y rotation per frame (radians)
	Palette    palette.Palette
	Wave       water.Wave
}

// DefaultConfig returns the stock animation.
func DefaultConfig() Config {
	return Config{
		TimeStep:   0.05,
		AutoRotate: 0.01,
		Palette:    palette.PastelBlues,
		Wave:       water.DefaultWave(),
	}
}

// State is the animation clock and what the last tick produced.
type State struct {
	Time  float64       // Clock value the next tick will use
	Frame uint64        // Ticks completed
	Color palette.Color // Tint applied by the last tick
}

// Animator owns the clock and mutates the scene it was created for.
type Animator struct {
	cfg   Config
	scene *scene.Scene
	state State
}

// New creates an animator at time zero.
func New(s *scene.Scene, cfg Config) *Animator {
	return &Animator{
		cfg:   cfg,
		scene: s,
	}
}

// State returns the current animation state.
func (a *Animator) State() State {
	return a.state
}

// Tick advances the scene by one frame:
// tint, wave heights, auto-rotation, then the clock.
func (a *Animator) Tick() State {
	t := a.state.Time

	color := a.cfg.Palette.At(t)
	a.scene.Tint(color)

	pf := a.scene.Particles
	a.cfg.Wave.Apply(pf.Positions, pf.Count, t)
	pf.MarkDirty()

	a.scene.Cube.Rotation[1] += a.cfg.AutoRotate

	a.state.Time += a.cfg.TimeStep
	a.state.Frame++
	a.state.Color = color
	return a.state
}
