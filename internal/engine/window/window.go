// Package window creates the native window and OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/watercube/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend selects the windowing library.
type Backend string

const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    Backend
}

// Window is a native window with a current OpenGL 4.1 core context.
type Window interface {
	// Events returns the input source bound to this window.
	Events() input.Source
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	// SetTitle replaces the window caption.
	SetTitle(title string)
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
