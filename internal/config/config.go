// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/watercube/internal/engine/scene"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Scene      SceneConfig      `yaml:"scene"`
	Animation  AnimationConfig  `yaml:"animation"`
	Controls   ControlsConfig   `yaml:"controls"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 = unlimited (vsync paced)
	Backend    string `yaml:"backend"`   // sdl or glfw
}

// SceneConfig holds the particle grid layout.
type SceneConfig struct {
	ParticleCapacity int     `yaml:"particle_capacity"`
	Layers           int     `yaml:"layers"`
	Coverage         float64 `yaml:"coverage"`
	Spacing          float64 `yaml:"spacing"`
	CapacityPolicy   string  `yaml:"capacity_policy"` // truncate or fit
	Seed             uint64  `yaml:"seed"`            // 0 = seeded from the clock
}

// AnimationConfig holds per-frame animation constants.
type AnimationConfig struct {
	TimeStep   float64 `yaml:"time_step"`
	AutoRotate float32 `yaml:"auto_rotate"`
}

// ControlsConfig holds mouse interaction settings.
type ControlsConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomStep        float32 `yaml:"zoom_step"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock scene values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Backend:    "sdl",
		},
		Scene: SceneConfig{
			ParticleCapacity: 10000,
			Layers:           5,
			Coverage:         2,
			Spacing:          0.03,
			CapacityPolicy:   "truncate",
			Seed:             0,
		},
		Animation: AnimationConfig{
			TimeStep:   0.05,
			AutoRotate: 0.01,
		},
		Controls: ControlsConfig{
			DragSensitivity: 0.01,
			ZoomStep:        0.1,
			MinDistance:     2,
			MaxDistance:     10,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return invalid("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FPSLimit < 0:
		return invalid("fps_limit must not be negative, got %d", c.Graphics.FPSLimit)
	case c.Graphics.Backend != "sdl" && c.Graphics.Backend != "glfw":
		return invalid("unknown backend %q", c.Graphics.Backend)
	case c.Scene.ParticleCapacity <= 0:
		return invalid("particle_capacity must be positive, got %d", c.Scene.ParticleCapacity)
	case c.Scene.Layers <= 0:
		return invalid("layers must be positive, got %d", c.Scene.Layers)
	case c.Scene.Coverage <= 0 || c.Scene.Spacing <= 0:
		return invalid("coverage and spacing must be positive, got %v and %v", c.Scene.Coverage, c.Scene.Spacing)
	case c.Scene.CapacityPolicy != "truncate" && c.Scene.CapacityPolicy != "fit":
		return invalid("unknown capacity_policy %q", c.Scene.CapacityPolicy)
	case c.Animation.TimeStep <= 0:
		return invalid("time_step must be positive, got %v", c.Animation.TimeStep)
	case c.Controls.ZoomStep <= 0:
		return invalid("zoom_step must be positive, got %v", c.Controls.ZoomStep)
	case c.Controls.MinDistance <= 0 || c.Controls.MinDistance > c.Controls.MaxDistance:
		return invalid("zoom range [%v, %v] is empty", c.Controls.MinDistance, c.Controls.MaxDistance)
	case c.Screenshot.Format != "png" && c.Screenshot.Format != "bmp":
		return invalid("unknown screenshot format %q", c.Screenshot.Format)
	}
	if err := c.Scene.Grid().Validate(); err != nil {
		return invalid("scene: %v", err)
	}
	return nil
}

// Grid returns the particle layout for these settings. Heights and jitter
// keep the scene defaults.
func (s SceneConfig) Grid() scene.GridConfig {
	g := scene.DefaultGridConfig()
	g.Capacity = s.ParticleCapacity
	g.Layers = s.Layers
	g.Coverage = s.Coverage
	g.Spacing = s.Spacing
	g.Policy = scene.CapacityPolicy(s.CapacityPolicy)
	return g
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
