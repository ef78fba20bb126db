package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWSource collects GLFW callback events into a queue drained by Poll.
type GLFWSource struct {
	window *glfw.Window
	queue  Queue
}

// NewGLFWSource installs callbacks on w.
func NewGLFWSource(w *glfw.Window) *GLFWSource {
	s := &GLFWSource{window: w}

	w.SetCloseCallback(func(_ *glfw.Window) {
		s.queue.Push(Event{Type: EventQuit})
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.queue.Push(Event{Type: EventWindowResize, Width: width, Height: height})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			s.queue.Push(Event{Type: EventKeyDown, Key: glfwKey(key)})
		case glfw.Release:
			s.queue.Push(Event{Type: EventKeyUp, Key: glfwKey(key)})
		}
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.queue.Push(Event{Type: EventMouseMove, MouseX: x, MouseY: y})
	})
	w.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		ev := Event{Type: EventMouseUp, MouseX: x, MouseY: y, Button: int(button) + 1}
		if action == glfw.Press {
			ev.Type = EventMouseDown
		}
		s.queue.Push(ev)
	})
	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		// GLFW reports positive offsets when scrolling away from the user.
		if yoff != 0 {
			s.queue.Push(Event{Type: EventWheel, WheelY: -yoff})
		}
	})

	return s
}

// Poll processes pending GLFW events and drains the callback queue.
func (s *GLFWSource) Poll(dst []Event) []Event {
	glfw.PollEvents()
	return s.queue.Poll(dst)
}

func glfwKey(k glfw.Key) Key {
	switch k {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyF12:
		return KeyF12
	}
	return KeyUnknown
}
