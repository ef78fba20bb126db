// Package renderer draws the water cube scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/watercube/internal/engine/camera"
	"github.com/Faultbox/watercube/internal/engine/scene"
	"github.com/Faultbox/watercube/internal/engine/shader"
	"github.com/Faultbox/watercube/internal/engine/shaders"
	"github.com/Faultbox/watercube/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // Drawable width in pixels
	Height int // Drawable height in pixels
}

// Renderer owns the GL programs and buffers for one scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	cubeProgram   *shader.Program
	pointsProgram *shader.Program

	cubeVAO uint32
	cubeVBO uint32

	pointsVAO uint32
	pointsVBO uint32
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.cubeProgram, err = shader.NewProgram("cube", shaders.CubeVertexShader, shaders.CubeFragmentShader,
		"uModel", "uViewProj", "uColor", "uOpacity", "uRoughness", "uMetalness", "uCameraPos",
		"uAmbientColor", "uLightPos", "uLightColor", "uLightRange")
	if err != nil {
		return nil, err
	}

	r.pointsProgram, err = shader.NewProgram("points", shaders.PointsVertexShader, shaders.PointsFragmentShader,
		"uModelView", "uProjection", "uSize", "uScale", "uColor", "uOpacity")
	if err != nil {
		r.cubeProgram.Delete()
		return nil, err
	}

	return r, nil
}

// Upload creates the GPU buffers for the scene geometry.
func (r *Renderer) Upload(s *scene.Scene) error {
	verts := s.Cube.Geometry.Vertices
	if len(verts) == 0 {
		return fmt.Errorf("cube geometry is empty")
	}

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(scene.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Points buffer is sized for the full capacity and refilled every frame.
	p := s.Particles
	gl.GenVertexArrays(1, &r.pointsVAO)
	gl.BindVertexArray(r.pointsVAO)
	gl.GenBuffers(1, &r.pointsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Positions)*4, gl.Ptr(p.Positions), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("scene uploaded",
		zap.Uint32("cubeVAO", r.cubeVAO),
		zap.Uint32("pointsVAO", r.pointsVAO),
		zap.Int("particles", p.Count),
		zap.Int("capacity", p.Capacity),
	)
	return nil
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws the scene: the cube first, then the particles on top.
func (r *Renderer) Render(s *scene.Scene, cam *camera.PerspectiveCamera) {
	bg := s.Background
	gl.DepthMask(true) // glClear honours the depth mask
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.drawCube(s, cam)
	r.drawParticles(s, cam)

	gl.BindVertexArray(0)
}

func (r *Renderer) drawCube(s *scene.Scene, cam *camera.PerspectiveCamera) {
	p := r.cubeProgram
	p.Use()
	p.SetMat4("uModel", s.Cube.WorldMatrix())
	p.SetMat4("uViewProj", cam.ViewProjection())
	p.SetVec3("uCameraPos", cam.Position)
	p.SetVec3("uAmbientColor", s.Ambient.Color.Vec3().Mul(s.Ambient.Intensity))
	p.SetVec3("uLightPos", s.Point.Position)
	p.SetVec3("uLightColor", s.Point.Color.Vec3().Mul(s.Point.Intensity))
	p.SetFloat("uLightRange", s.Point.Range)

	gl.BindVertexArray(r.cubeVAO)
	for f := scene.FaceFront; f < scene.NumFaces; f++ {
		mat := s.Cube.Material(f)
		if !mat.Visible() {
			continue
		}
		applyMaterialState(mat)
		p.SetVec3("uColor", mat.Color.Vec3())
		p.SetFloat("uOpacity", mat.Opacity)
		p.SetFloat("uRoughness", mat.Roughness)
		p.SetFloat("uMetalness", mat.Metalness)

		first, count := s.Cube.Geometry.FaceRange(f)
		gl.DrawArrays(gl.TRIANGLES, first, count)
	}
}

func (r *Renderer) drawParticles(s *scene.Scene, cam *camera.PerspectiveCamera) {
	pf := s.Particles
	if pf.Count == 0 {
		return
	}

	gl.BindVertexArray(r.pointsVAO)
	if pf.TakeDirty() {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.pointsVBO)
		active := pf.Active()
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(active)*4, gl.Ptr(active))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}

	p := r.pointsProgram
	p.Use()
	p.SetMat4("uModelView", cam.ViewMatrix().Mul4(pf.WorldMatrix()))
	p.SetMat4("uProjection", cam.ProjectionMatrix())
	p.SetFloat("uSize", pf.Material.Size)
	p.SetFloat("uScale", float32(r.config.Height)/2)
	p.SetVec3("uColor", pf.Material.Color.Vec3())
	p.SetFloat("uOpacity", pf.Material.Opacity)

	applyMaterialState(pf.Material)
	gl.DrawArrays(gl.POINTS, 0, int32(pf.Count))
}

// applyMaterialState sets depth and culling state for a material.
func applyMaterialState(m *scene.Material) {
	if m.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(m.DepthWrite)

	if m.Side == scene.DoubleSide {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, vao := range []*uint32{&r.cubeVAO, &r.pointsVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.cubeVBO, &r.pointsVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if r.cubeProgram != nil {
		r.cubeProgram.Delete()
	}
	if r.pointsProgram != nil {
		r.pointsProgram.Delete()
	}
}
