package scene

import (
	"fmt"
	"math/rand/v2"
)

// Grid size limits. They keep generation and the fit allocation bounded.
const (
	MaxAxisSteps = 2048
	MaxParticles = 1 << 22
)

// CapacityPolicy decides what happens when the grid produces more particles
// than the declared capacity.
type CapacityPolicy string

const (
	// CapacityTruncate stops emitting once the declared capacity is full.
	CapacityTruncate CapacityPolicy = "truncate"
	// CapacityFit sizes the buffer to the number of grid points.
	CapacityFit CapacityPolicy = "fit"
)

// Valid reports whether p names a known policy.
func (p CapacityPolicy) Valid() bool {
	return p == CapacityTruncate || p == CapacityFit
}

// GridConfig describes the stacked particle layers above the cube.
type GridConfig struct {
	Capacity    int     // Declared particle count
	Layers      int     // Number of stacked layers
	Coverage    float64 // Edge length of the square footprint
	Spacing     float64 // Distance between neighbouring particles
	BaseHeight  float64 // Height of layer 0
	LayerHeight float64 // Vertical offset between layers
	Jitter      float64 // Random vertical spread within a layer
	Policy      CapacityPolicy
}

// DefaultGridConfig returns the layout covering the cube's 2x2 top face.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Capacity:    10000,
		Layers:      5,
		Coverage:    2,
		Spacing:     0.03,
		BaseHeight:  1.1,
		LayerHeight: 0.2,
		Jitter:      0.2,
		Policy:      CapacityTruncate,
	}
}

// Validate checks the grid parameters.
func (c GridConfig) Validate() error {
	switch {
	case c.Capacity <= 0 || c.Capacity > MaxParticles:
		return fmt.Errorf("particle capacity must be in [1, %d], got %d", MaxParticles, c.Capacity)
	case c.Layers <= 0 || c.Layers > MaxParticles:
		return fmt.Errorf("layer count must be in [1, %d], got %d", MaxParticles, c.Layers)
	case !c.Policy.Valid():
		return fmt.Errorf("unknown capacity policy %q", c.Policy)
	}
	if err := CheckSpacing(c.Coverage, c.Spacing); err != nil {
		return err
	}
	if c.Policy == CapacityFit {
		if n := CountGrid(c); n > MaxParticles {
			return fmt.Errorf("grid of %d particles exceeds %d", n, MaxParticles)
		}
	}
	return nil
}

// CheckSpacing reports whether walking coverage in spacing steps terminates
// within MaxAxisSteps. A spacing below the float64 resolution at -coverage/2
// would never advance.
func CheckSpacing(coverage, spacing float64) error {
	half := coverage / 2
	switch {
	case !(coverage > 0):
		return fmt.Errorf("coverage must be positive, got %v", coverage)
	case !(spacing > 0):
		return fmt.Errorf("spacing must be positive, got %v", spacing)
	case -half+spacing == -half:
		return fmt.Errorf("spacing %v does not advance across coverage %v", spacing, coverage)
	case coverage/spacing > MaxAxisSteps:
		return fmt.Errorf("spacing %v yields more than %d steps across coverage %v", spacing, MaxAxisSteps, coverage)
	}
	return nil
}

// axisSteps counts the positions visited by x := -c/2; x < c/2; x += spacing.
// It walks the same float accumulation as the generator so both agree.
// Layouts rejected by CheckSpacing count as empty.
func (c GridConfig) axisSteps() int {
	if CheckSpacing(c.Coverage, c.Spacing) != nil {
		return 0
	}
	half := c.Coverage / 2
	n := 0
	for x := -half; x < half; x += c.Spacing {
		n++
	}
	return n
}

// CountGrid returns how many particles the full grid would emit.
func CountGrid(c GridConfig) int {
	n := c.axisSteps()
	return n * n * c.Layers
}

// ParticleField is a fixed set of points whose heights are rewritten every frame.
type ParticleField struct {
	*Node
	Material *Material

	// Positions holds x,y,z per particle. len(Positions) == 3*Capacity.
	Positions []float32
	// Count is the number of particles written into Positions.
	Count int
	// Capacity is the allocated particle count.
	Capacity int
	// Generated is the number of grid points the layout produces, emitted or not.
	Generated int

	dirty bool
}

// NewParticleField lays out the particle grid. rng supplies the initial
// in-layer jitter; the heights are overwritten by the first animation tick.
func NewParticleField(cfg GridConfig, rng *rand.Rand) (*ParticleField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	generated := CountGrid(cfg)
	capacity := cfg.Capacity
	if cfg.Policy == CapacityFit {
		capacity = generated
	}

	pf := &ParticleField{
		Node:      NewNode("particles"),
		Material:  ParticleMaterial(),
		Positions: make([]float32, capacity*3),
		Capacity:  capacity,
		Generated: generated,
		dirty:     true,
	}
	pf.RenderOrder = 1

	half := cfg.Coverage / 2
	index := 0
emit:
	for layer := 0; layer < cfg.Layers; layer++ {
		layerHeight := cfg.BaseHeight + float64(layer)*cfg.LayerHeight
		for x := -half; x < half; x += cfg.Spacing {
			for z := -half; z < half; z += cfg.Spacing {
				if index >= capacity {
					break emit
				}
				pf.Positions[index*3] = float32(x)
				pf.Positions[index*3+1] = float32(rng.Float64()*cfg.Jitter + layerHeight)
				pf.Positions[index*3+2] = float32(z)
				index++
			}
		}
	}
	pf.Count = index

	return pf, nil
}

// Truncated reports whether grid points were dropped to respect the capacity.
func (pf *ParticleField) Truncated() bool {
	return pf.Count < pf.Generated
}

// Position returns particle i.
func (pf *ParticleField) Position(i int) (x, y, z float32) {
	return pf.Positions[i*3], pf.Positions[i*3+1], pf.Positions[i*3+2]
}

// Active returns the written part of the position buffer.
func (pf *ParticleField) Active() []float32 {
	return pf.Positions[:pf.Count*3]
}

// MarkDirty flags the positions for re-upload.
func (pf *ParticleField) MarkDirty() {
	pf.dirty = true
}

// TakeDirty reports and clears the re-upload flag.
func (pf *ParticleField) TakeDirty() bool {
	d := pf.dirty
	pf.dirty = false
	return d
}
