package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one side of the cube. The order matches the material slots.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
	NumFaces
)

var faceNames = [NumFaces]string{"front", "back", "top", "bottom", "left", "right"}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// AccentFace is the face recolored together with the particles every frame.
const AccentFace = FaceTop

// FloatsPerVertex is the interleaved layout of BoxGeometry: position xyz + normal xyz.
const FloatsPerVertex = 6

// VerticesPerFace is two triangles per face.
const VerticesPerFace = 6

// BoxGeometry holds interleaved triangle data for an axis-aligned box,
// grouped by face in Face order.
type BoxGeometry struct {
	Size     float32
	Vertices []float32
}

// NewBoxGeometry builds a box with the given edge length centered on the origin.
func NewBoxGeometry(size float32) *BoxGeometry {
	h := size / 2
	// Corner order per face: counter-clockwise seen from outside.
	type quad struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	quads := [NumFaces]quad{
		FaceFront:  {mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		FaceBack:   {mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		FaceTop:    {mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		FaceBottom: {mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		FaceLeft:   {mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		FaceRight:  {mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
	}

	vertices := make([]float32, 0, int(NumFaces)*VerticesPerFace*FloatsPerVertex)
	for _, q := range quads {
		for _, i := range [VerticesPerFace]int{0, 1, 2, 0, 2, 3} {
			c := q.corners[i]
			vertices = append(vertices, c[0], c[1], c[2], q.normal[0], q.normal[1], q.normal[2])
		}
	}

	return &BoxGeometry{Size: size, Vertices: vertices}
}

// FaceRange returns the first vertex and vertex count of a face.
func (g *BoxGeometry) FaceRange(f Face) (first, count int32) {
	return int32(f) * VerticesPerFace, VerticesPerFace
}

// Cube is a box mesh with one material slot per face.
// Slots may share a material instance.
type Cube struct {
	*Node
	Geometry  *BoxGeometry
	Materials [NumFaces]*Material
}

// NewCube creates a water cube: every side shares the water material and the
// top face is fully transparent so the particle field shows through.
func NewCube(size float32) *Cube {
	water := WaterMaterial()
	c := &Cube{
		Node:     NewNode("cube"),
		Geometry: NewBoxGeometry(size),
	}
	for f := FaceFront; f < NumFaces; f++ {
		c.Materials[f] = water
	}
	c.Materials[FaceTop] = ClearMaterial()
	return c
}

// Material returns the material bound to face f.
func (c *Cube) Material(f Face) *Material {
	return c.Materials[f]
}

// Accent returns the material recolored by the animation.
func (c *Cube) Accent() *Material {
	return c.Materials[AccentFace]
}
