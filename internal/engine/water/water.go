// Package water provides the animated water surface height field.
package water

import "math"

// Wave is a two-axis sine height field evaluated over fixed XZ coordinates.
type Wave struct {
	Frequency float64 // Spatial frequency along X and Z
	Amplitude float64 // Height of each sine term
	Level     float64 // Resting surface height
}

// DefaultWave returns the wave used above the cube's top face.
func DefaultWave() Wave {
	return Wave{
		Frequency: DefaultFrequency,
		Amplitude: DefaultAmplitude,
		Level:     DefaultLevel,
	}
}

// Height returns the surface height at (x, z) for time t.
func (w Wave) Height(x, z, t float64) float64 {
	return math.Sin(x*w.Frequency+t)*w.Amplitude +
		math.Sin(z*w.Frequency+t)*w.Amplitude +
		w.Level
}

// Apply recomputes the Y component of the first count vertices of a flat
// x,y,z buffer. X and Z are left untouched.
func (w Wave) Apply(positions []float32, count int, t float64) {
	if n := len(positions) / 3; count > n {
		count = n
	}
	for i := 0; i < count; i++ {
		x := float64(positions[i*3])
		z := float64(positions[i*3+2])
		positions[i*3+1] = float32(w.Height(x, z, t))
	}
}

// DefaultFrequency is the spatial frequency of the surface ripple.
const DefaultFrequency = 2.0

// DefaultAmplitude is the height of each sine term.
const DefaultAmplitude = 0.1

// DefaultLevel sits just above the cube's top face (y = 1).
const DefaultLevel = 1.1
