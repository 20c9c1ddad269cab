// Package input turns SDL2 events into per-frame input state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies the events kept for the frame.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Button uint8 // sdl.BUTTON_LEFT etc. for EventMouseDown
	X, Y   int32 // cursor position for EventMouseDown
	Width  int
	Height int
}

// Input tracks held keys and accumulates relative mouse motion between
// calls to Update.
type Input struct {
	events  []Event
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool

	mouseDX, mouseDY float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Update drains the SDL event queue. It returns true when the window was
// asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	clear(i.pressed)
	i.mouseDX, i.mouseDY = 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Key-up events are not delivered while unfocused.
				clear(i.held)
			}

		case *sdl.KeyboardEvent:
			sc := e.Keysym.Scancode
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.pressed[sc] = true
					i.events = append(i.events, Event{Type: EventKeyDown, Key: sc})
				}
				i.held[sc] = true
			} else if e.Type == sdl.KEYUP {
				delete(i.held, sc)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: sc})
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					Button: e.Button,
					X:      e.X,
					Y:      e.Y,
				})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyDown reports whether the key is held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// IsKeyPressed reports whether the key went down during the last Update.
// Auto-repeat does not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	return i.pressed[scancode]
}

// MouseDelta returns the relative mouse motion of the last Update in
// pixels, with y growing downward as SDL reports it.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}
