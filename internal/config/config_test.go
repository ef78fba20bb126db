package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Backend != "sdl" {
		t.Errorf("expected backend sdl, got %s", cfg.Graphics.Backend)
	}

	if cfg.Scene.ParticleCapacity != 10000 {
		t.Errorf("expected capacity 10000, got %d", cfg.Scene.ParticleCapacity)
	}
	if cfg.Scene.Layers != 5 {
		t.Errorf("expected 5 layers, got %d", cfg.Scene.Layers)
	}
	if cfg.Scene.Spacing != 0.03 || cfg.Scene.Coverage != 2 {
		t.Errorf("expected spacing 0.03 coverage 2, got %v %v", cfg.Scene.Spacing, cfg.Scene.Coverage)
	}
	if cfg.Scene.CapacityPolicy != "truncate" {
		t.Errorf("expected truncate policy, got %s", cfg.Scene.CapacityPolicy)
	}

	if cfg.Animation.TimeStep != 0.05 || cfg.Animation.AutoRotate != 0.01 {
		t.Errorf("expected step 0.05 rotate 0.01, got %v %v", cfg.Animation.TimeStep, cfg.Animation.AutoRotate)
	}

	if cfg.Controls.MinDistance != 2 || cfg.Controls.MaxDistance != 10 {
		t.Errorf("expected zoom range [2, 10], got [%v, %v]", cfg.Controls.MinDistance, cfg.Controls.MaxDistance)
	}
	if cfg.Controls.DragSensitivity != 0.01 || cfg.Controls.ZoomStep != 0.1 {
		t.Errorf("expected drag 0.01 zoom 0.1, got %v %v", cfg.Controls.DragSensitivity, cfg.Controls.ZoomStep)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144
  backend: glfw

scene:
  particle_capacity: 5000
  layers: 3
  spacing: 0.05
  capacity_policy: fit
  seed: 42

animation:
  time_step: 0.1

controls:
  max_distance: 20

screenshot:
  format: bmp

logging:
  level: "debug"
  log_file: "watercube.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("expected fullscreen on and vsync off")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Graphics.Backend != "glfw" {
		t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
	}
	if cfg.Scene.ParticleCapacity != 5000 || cfg.Scene.Layers != 3 || cfg.Scene.Spacing != 0.05 {
		t.Errorf("scene not loaded: %+v", cfg.Scene)
	}
	if cfg.Scene.Coverage != 2 {
		t.Errorf("coverage should keep its default, got %v", cfg.Scene.Coverage)
	}
	if cfg.Scene.CapacityPolicy != "fit" || cfg.Scene.Seed != 42 {
		t.Errorf("expected fit/42, got %s/%d", cfg.Scene.CapacityPolicy, cfg.Scene.Seed)
	}
	if cfg.Animation.TimeStep != 0.1 {
		t.Errorf("expected time step 0.1, got %v", cfg.Animation.TimeStep)
	}
	if cfg.Controls.MaxDistance != 20 || cfg.Controls.MinDistance != 2 {
		t.Errorf("expected zoom range [2, 20], got [%v, %v]", cfg.Controls.MinDistance, cfg.Controls.MaxDistance)
	}
	if cfg.Screenshot.Format != "bmp" {
		t.Errorf("expected bmp, got %s", cfg.Screenshot.Format)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "watercube.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  spacingg: 0.1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load cleanly: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("empty file changed width to %d", cfg.Graphics.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative fps", func(c *Config) { c.Graphics.FPSLimit = -1 }},
		{"bad backend", func(c *Config) { c.Graphics.Backend = "vulkan" }},
		{"zero capacity", func(c *Config) { c.Scene.ParticleCapacity = 0 }},
		{"zero layers", func(c *Config) { c.Scene.Layers = 0 }},
		{"zero spacing", func(c *Config) { c.Scene.Spacing = 0 }},
		{"spacing below resolution", func(c *Config) { c.Scene.Spacing = 1e-17 }},
		{"spacing too fine", func(c *Config) { c.Scene.Spacing = 1e-6 }},
		{"fit grid too large", func(c *Config) {
			c.Scene.CapacityPolicy = "fit"
			c.Scene.Spacing = 0.002
		}},
		{"bad policy", func(c *Config) { c.Scene.CapacityPolicy = "overflow" }},
		{"zero time step", func(c *Config) { c.Animation.TimeStep = 0 }},
		{"zero zoom step", func(c *Config) { c.Controls.ZoomStep = 0 }},
		{"inverted zoom range", func(c *Config) { c.Controls.MinDistance = 11 }},
		{"bad screenshot format", func(c *Config) { c.Screenshot.Format = "gif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = "glfw" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Backend != "glfw" {
					t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name: "scene flags",
			setup: func() {
				*flagSeed = 7
				*flagPolicy = "fit"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Seed != 7 || cfg.Scene.CapacityPolicy != "fit" {
					t.Errorf("expected seed 7 policy fit, got %d %s", cfg.Scene.Seed, cfg.Scene.CapacityPolicy)
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagPolicy = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  capacity_policy: grow\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveWritesConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not XDG based on " + runtime.GOOS)
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	cfg := Default()
	cfg.Scene.Layers = 3
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	want := filepath.Join(xdg, "watercube", "config.yaml")
	if path := findConfigFile(); path != want {
		t.Errorf("findConfigFile = %q, want %q", path, want)
	}

	loaded := Default()
	if err := loadFromFile(loaded, want); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.Layers != 3 {
		t.Errorf("layers = %d, want 3", loaded.Scene.Layers)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 99
	cfg.Graphics.Backend = "glfw"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
