// Package scene builds the water cube scene graph: lights, the six-material
// cube and the particle field parented to it.
package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/watercube/internal/engine/palette"
)

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     palette.Color
	Intensity float32
}

// PointLight is an omnidirectional light with linear falloff to Range.
type PointLight struct {
	Position  mgl32.Vec3
	Color     palette.Color
	Intensity float32
	Range     float32
}

// Config contains scene construction options.
type Config struct {
	CubeSize   float32
	Grid       GridConfig
	Background palette.Color
}

// DefaultConfig returns the stock water cube scene.
func DefaultConfig() Config {
	return Config{
		CubeSize:   2,
		Grid:       DefaultGridConfig(),
		Background: palette.Lavender,
	}
}

// Scene is the complete graph submitted to the renderer each frame.
type Scene struct {
	Root       *Node
	Cube       *Cube
	Particles  *ParticleField
	Ambient    AmbientLight
	Point      PointLight
	Background palette.Color
}

// Build constructs the scene once. rng seeds the particle jitter.
func Build(cfg Config, rng *rand.Rand) (*Scene, error) {
	if cfg.CubeSize <= 0 {
		return nil, fmt.Errorf("cube size must be positive, got %v", cfg.CubeSize)
	}

	particles, err := NewParticleField(cfg.Grid, rng)
	if err != nil {
		return nil, fmt.Errorf("particle field: %w", err)
	}

	s := &Scene{
		Root:       NewNode("scene"),
		Cube:       NewCube(cfg.CubeSize),
		Particles:  particles,
		Background: cfg.Background,
		Ambient: AmbientLight{
			Color:     palette.White,
			Intensity: 1,
		},
		Point: PointLight{
			Position:  mgl32.Vec3{5, 5, 5},
			Color:     palette.White,
			Intensity: 1,
			Range:     100,
		},
	}

	// Particles ride along with the cube's rotation.
	s.Cube.Add(s.Particles.Node)
	s.Root.Add(s.Cube.Node)

	return s, nil
}

// Tint sets the color shared by the particles and the cube's accent face.
func (s *Scene) Tint(c palette.Color) {
	s.Particles.Material.Color = c
	s.Cube.Accent().Color = c
}
