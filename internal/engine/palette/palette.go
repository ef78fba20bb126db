// Package palette provides colors and the cyclic pastel-blue color ramp.
package palette

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB color with float components (0.0 to 1.0).
type Color struct {
	R, G, B float32
}

// Hex creates a color from a 0xRRGGBB value.
func Hex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255.0,
		G: float32((hex>>8)&0xFF) / 255.0,
		B: float32(hex&0xFF) / 255.0,
	}
}

// Vec3 returns the color as a vector for uniform upload.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Lerp linearly interpolates from c toward other by t in RGB space.
func (c Color) Lerp(other Color, t float32) Color {
	v := c.Vec3()
	v = v.Add(other.Vec3().Sub(v).Mul(t))
	return Color{R: v[0], G: v[1], B: v[2]}
}

// Well-known colors used by the water scene.
var (
	White      = Hex(0xFFFFFF)
	LightBlue  = Hex(0xADD8E6)
	SkyBlue    = Hex(0x87CEFA)
	PowderBlue = Hex(0xB0E0E6)
	PaleTurq   = Hex(0xAFEEEE)
	SoftBlue   = Hex(0x98C8E4)
	Lavender   = Hex(0xB7A8EC) // background
)

// Palette is an ordered set of colors cycled through over time.
// Each entry is held for one time unit while blending into the next.
type Palette []Color

// PastelBlues is the default five-entry water palette.
var PastelBlues = Palette{LightBlue, SkyBlue, PowderBlue, PaleTurq, SoftBlue}

// At returns the interpolated color for the given time.
// The cycle length equals the number of entries.
func (p Palette) At(t float64) Color {
	c, _, _ := p.sample(t)
	return c
}

// Segment returns the palette index and blend ratio used for time t.
func (p Palette) Segment(t float64) (idx int, mix float64) {
	_, idx, mix = p.sample(t)
	return idx, mix
}

func (p Palette) sample(t float64) (Color, int, float64) {
	n := len(p)
	if n == 0 {
		return Color{}, 0, 0
	}
	cycle := math.Mod(t, float64(n))
	if cycle < 0 {
		cycle += float64(n)
	}
	idx := int(math.Floor(cycle))
	if idx >= n {
		idx = n - 1
	}
	mix := cycle - float64(idx)
	next := (idx + 1) % n
	return p[idx].Lerp(p[next], float32(mix)), idx, mix
}

// PastelBlue returns the pastel-blue color for time t.
func PastelBlue(t float64) Color {
	return PastelBlues.At(t)
}
