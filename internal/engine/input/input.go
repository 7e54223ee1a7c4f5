// Package input translates SDL2 events into application events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an application event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseWheel
)

// Mouse button masks for Event.Buttons.
const (
	ButtonLeft   = 1 << (sdl.BUTTON_LEFT - 1)
	ButtonMiddle = 1 << (sdl.BUTTON_MIDDLE - 1)
	ButtonRight  = 1 << (sdl.BUTTON_RIGHT - 1)
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     sdl.Scancode
	Width   int
	Height  int
	MouseX  int
	MouseY  int
	DeltaX  int
	DeltaY  int
	Buttons uint32 // buttons held during a mouse move
	Wheel   float32
}

// Dragging reports whether a mouse move happened with any of buttons held.
func (e Event) Dragging(buttons uint32) bool {
	return e.Type == EventMouseMove && e.Buttons&buttons != 0
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to application events.
// Returns true if the application should quit: the window was closed or
// Escape was pressed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:    EventMouseMove,
				MouseX:  int(e.X),
				MouseY:  int(e.Y),
				DeltaX:  int(e.XRel),
				DeltaY:  int(e.YRel),
				Buttons: e.State,
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:  EventMouseWheel,
				Wheel: float32(e.Y),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
