package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDLSource polls the SDL2 event queue.
type SDLSource struct {
	// drawable reports the GL drawable size, which differs from the window
	// size on HiDPI displays.
	drawable func() (int, int)
}

// NewSDLSource creates an SDL event source. drawable may be nil.
func NewSDLSource(drawable func() (int, int)) *SDLSource {
	return &SDLSource{drawable: drawable}
}

// Poll drains pending SDL events.
func (s *SDLSource) Poll(dst []Event) []Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := int(e.Data1), int(e.Data2)
				if s.drawable != nil {
					w, h = s.drawable()
				}
				dst = append(dst, Event{Type: EventWindowResize, Width: w, Height: h})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			ev := Event{Type: EventKeyUp, Key: sdlKey(e.Keysym.Scancode)}
			if e.Type == sdl.KEYDOWN {
				ev.Type = EventKeyDown
			}
			dst = append(dst, ev)

		case *sdl.MouseMotionEvent:
			dst = append(dst, Event{
				Type:   EventMouseMove,
				MouseX: float64(e.X),
				MouseY: float64(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{
				Type:   EventMouseUp,
				MouseX: float64(e.X),
				MouseY: float64(e.Y),
				Button: int(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
			}
			dst = append(dst, ev)

		case *sdl.MouseWheelEvent:
			// SDL reports positive Y when scrolling away from the user.
			y := float64(e.Y)
			if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
				y = -y
			}
			if y != 0 {
				dst = append(dst, Event{Type: EventWheel, WheelY: -y})
			}
		}
	}
	return dst
}

func sdlKey(sc sdl.Scancode) Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return KeyEscape
	case sdl.SCANCODE_F12:
		return KeyF12
	}
	return KeyUnknown
}
