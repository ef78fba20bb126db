// Package input translates window-system events into engine events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

var eventNames = map[EventType]string{
	EventNone:         "none",
	EventQuit:         "quit",
	EventWindowResize: "resize",
	EventKeyDown:      "key_down",
	EventKeyUp:        "key_up",
	EventMouseMove:    "mouse_move",
	EventMouseDown:    "mouse_down",
	EventMouseUp:      "mouse_up",
	EventWheel:        "wheel",
}

func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return "unknown"
}

// Key is a backend-independent key code. Only keys the viewer reacts to are listed.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF12
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int // Drawable size for EventWindowResize
	Height int
	MouseX float64
	MouseY float64
	Button int
	// WheelY follows the browser convention: positive scrolls toward the user.
	WheelY float64
}

// Source is a backend that produces engine events.
type Source interface {
	// Poll appends pending events to dst and returns the extended slice.
	Poll(dst []Event) []Event
}

// Input collects the events of one frame.
type Input struct {
	source Source
	events []Event
}

// New creates an input handler reading from source.
func New(source Source) *Input {
	return &Input{
		source: source,
		events: make([]Event, 0, 16),
	}
}

// Update replaces the frame's events with whatever the source has pending
// and reports whether a quit event (window close) was among them.
func (i *Input) Update() bool {
	i.events = i.source.Poll(i.events[:0])
	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Queue is a Source backed by a slice. Callback-driven backends push into it
// and tests use it to script events.
type Queue struct {
	pending []Event
}

// Push enqueues events for the next Poll.
func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

// Poll drains the queue.
func (q *Queue) Poll(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}
