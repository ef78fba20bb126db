package scene

import "github.com/Faultbox/watercube/internal/engine/palette"

// Side selects which polygon faces a material renders.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

// Material describes how a surface or point set is shaded and blended.
type Material struct {
	Name        string
	Color       palette.Color
	Opacity     float32
	Transparent bool
	DepthTest   bool
	DepthWrite  bool
	Side        Side

	// Surface response (cube faces)
	Metalness float32
	Roughness float32

	// Point sprite size in world units (particles)
	Size float32
}

// Visible reports whether drawing the material can change the framebuffer.
func (m *Material) Visible() bool {
	return !m.Transparent || m.Opacity > 0
}

// WaterMaterial returns the translucent light-blue material used for the cube sides.
func WaterMaterial() *Material {
	return &Material{
		Name:        "water",
		Color:       palette.LightBlue,
		Opacity:     0.6,
		Transparent: true,
		DepthTest:   true,
		DepthWrite:  false,
		Side:        DoubleSide,
		Metalness:   0.1,
		Roughness:   0.1,
	}
}

// ClearMaterial returns a fully see-through material for the open top face.
func ClearMaterial() *Material {
	return &Material{
		Name:        "clear",
		Color:       palette.LightBlue,
		Opacity:     0,
		Transparent: true,
		DepthTest:   true,
		DepthWrite:  false,
		Side:        DoubleSide,
		Roughness:   1,
	}
}

// ParticleMaterial returns the point material drawn above the cube.
// Particles neither test nor write depth so they stay visible through the water.
func ParticleMaterial() *Material {
	return &Material{
		Name:        "particles",
		Color:       palette.White,
		Opacity:     0.9,
		Transparent: true,
		DepthTest:   false,
		DepthWrite:  false,
		Size:        0.05,
	}
}
