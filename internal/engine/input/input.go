// Package input collects per-frame window events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is a backend-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyM
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Poller appends the events that arrived since the last call to dst.
type Poller interface {
	Poll(dst []Event) []Event
}

// Input holds the events of the current frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update replaces the frame's events with fresh ones from p.
// Returns true if the window was asked to close or Escape was pressed.
func (i *Input) Update(p Poller) bool {
	i.events = p.Poll(i.events[:0])

	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
		if e.Type == EventKeyDown && e.Key == KeyEscape {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(k Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}

// Resized returns the last resize of this frame, if any.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}
