// Package app wires the window, renderer, controls and animation loop together.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/watercube/internal/animation"
	"github.com/Faultbox/watercube/internal/config"
	"github.com/Faultbox/watercube/internal/control"
	"github.com/Faultbox/watercube/internal/engine/camera"
	"github.com/Faultbox/watercube/internal/engine/debug"
	"github.com/Faultbox/watercube/internal/engine/input"
	"github.com/Faultbox/watercube/internal/engine/renderer"
	"github.com/Faultbox/watercube/internal/engine/scene"
	"github.com/Faultbox/watercube/internal/engine/window"
	"github.com/Faultbox/watercube/internal/logger"
)

const windowTitle = "Water Cube"

// frameRenderer is the part of renderer.Renderer the frame hooks drive.
type frameRenderer interface {
	Render(s *scene.Scene, cam *camera.PerspectiveCamera)
	Resize(width, height int)
	ReadPixels() ([]byte, int, int)
	Close()
}

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   window.Window
	renderer frameRenderer
	input    *input.Input

	scene    *scene.Scene
	camera   *camera.PerspectiveCamera
	controls *control.Controls
	animator *animation.Animator
	shots    *debug.ScreenshotCapture

	// F12 pressed; captured after the next render, before the swap
	screenshotPending bool

	// fps accounting
	frames   int
	fpsTimer time.Time
}

// New builds the scene and opens the window. Any failure is returned and
// the partially created resources are released.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	a.scene, err = scene.Build(SceneConfig(cfg), newRNG(cfg.Scene.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	pf := a.scene.Particles
	a.log.Info("scene built",
		zap.Int("particles", pf.Count),
		zap.Int("capacity", pf.Capacity),
		zap.Int("generated", pf.Generated),
		zap.String("policy", cfg.Scene.CapacityPolicy),
	)
	if pf.Truncated() {
		a.log.Warn("particle grid truncated to capacity",
			zap.Int("dropped", pf.Generated-pf.Count),
		)
	}

	a.shots, err = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "watercube", debug.Format(cfg.Screenshot.Format))
	if err != nil {
		return nil, err
	}

	// Window first: the renderer needs a current GL context.
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Backend:    window.Backend(cfg.Graphics.Backend),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer = r
	if err := a.renderer.Upload(a.scene); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to upload scene: %w", err)
	}

	a.camera = NewCamera(cfg, width, height)
	a.controls = control.New(a.scene.Cube.Node, a.camera, cfg.Controls.DragSensitivity)
	a.animator = animation.New(a.scene, AnimationConfig(cfg))
	a.input = input.New(a.window.Events())

	a.log.Info("viewer initialized")
	return a, nil
}

// SceneConfig maps the user configuration onto scene construction options.
func SceneConfig(cfg *config.Config) scene.Config {
	sc := scene.DefaultConfig()
	sc.Grid = cfg.Scene.Grid()
	return sc
}

// AnimationConfig maps the user configuration onto animation constants.
func AnimationConfig(cfg *config.Config) animation.Config {
	ac := animation.DefaultConfig()
	ac.TimeStep = cfg.Animation.TimeStep
	ac.AutoRotate = cfg.Animation.AutoRotate
	return ac
}

// NewCamera creates the scene camera with the configured zoom limits.
func NewCamera(cfg *config.Config, width, height int) *camera.PerspectiveCamera {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	cam := camera.NewPerspectiveCamera(aspect)
	cam.MinDistance = cfg.Controls.MinDistance
	cam.MaxDistance = cfg.Controls.MaxDistance
	cam.ZoomStep = cfg.Controls.ZoomStep
	return cam
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Run drives the frame loop until the window closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.fpsTimer = time.Now()
	a.log.Info("starting frame loop")

	loop := animation.NewLoop(a.animator, a, a.cfg.Graphics.FPSLimit)
	if err := loop.Run(ctx); err != nil {
		return err
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.animator.State().Frame))
	return nil
}

// Pump applies pending input. It reports false once shutdown was requested.
func (a *App) Pump() (bool, error) {
	running := !a.input.Update()
	for _, e := range a.input.Events() {
		switch a.controls.Handle(e) {
		case control.ActionQuit:
			running = false
		case control.ActionResize:
			a.renderer.Resize(e.Width, e.Height)
		case control.ActionScreenshot:
			a.screenshotPending = true
		}
	}
	return running, nil
}

// Present renders the advanced scene and swaps buffers. A pending screenshot
// reads the back buffer between the two; its contents are undefined after
// the swap.
func (a *App) Present(st animation.State) error {
	a.renderer.Render(a.scene, a.camera)
	if a.screenshotPending {
		a.screenshotPending = false
		a.screenshot()
	}
	a.window.SwapBuffers()

	a.frames++
	if elapsed := time.Since(a.fpsTimer); elapsed >= time.Second {
		fps := float64(a.frames) / elapsed.Seconds()
		a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", windowTitle, fps))
		a.log.Debug("fps",
			zap.Float64("fps", fps),
			zap.Float64("time", st.Time),
			zap.Float32("distance", a.camera.Distance()),
		)
		a.frames = 0
		a.fpsTimer = time.Now()
	}
	return nil
}

// screenshot writes the rendered back buffer to disk.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
