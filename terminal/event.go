package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventType identifies the active variant of an Event.
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventTick
	EventError
	EventClosed
)

// String returns a human-readable event type name
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventTick:
		return "tick"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is one input occurrence, tagged by Type. Only the fields of the
// active variant are meaningful. Events are immutable once produced and
// consumed exactly once by the handler.
type Event struct {
	Type EventType
	When time.Time

	// EventKey
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask

	// EventMouse
	MouseX  int
	MouseY  int
	Buttons tcell.ButtonMask

	// EventResize
	Width  int
	Height int

	// EventError
	Err error
}

// KeyEvent builds a key press event.
func KeyEvent(key tcell.Key, r rune, mods tcell.ModMask) Event {
	return Event{Type: EventKey, When: time.Now(), Key: key, Rune: r, Mods: mods}
}

// RuneEvent builds a plain character press.
func RuneEvent(r rune) Event {
	return KeyEvent(tcell.KeyRune, r, tcell.ModNone)
}

// TickEvent builds the synthetic event emitted when no input arrives
// within the poll timeout.
func TickEvent() Event {
	return Event{Type: EventTick, When: time.Now()}
}

// ResizeEvent builds a dimension change event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, When: time.Now(), Width: width, Height: height}
}

// fromTcell converts a tcell event to the local variant. The second
// return is false for event kinds the loop has no use for (paste
// boundaries, focus changes).
func fromTcell(tev tcell.Event) (Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			When: ev.When(),
			Key:  ev.Key(),
			Rune: ev.Rune(),
			Mods: ev.Modifiers(),
		}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{
			Type:    EventMouse,
			When:    ev.When(),
			MouseX:  x,
			MouseY:  y,
			Buttons: ev.Buttons(),
			Mods:    ev.Modifiers(),
		}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{
			Type:   EventResize,
			When:   ev.When(),
			Width:  w,
			Height: h,
		}, true
	case *tcell.EventError:
		return Event{
			Type: EventError,
			When: ev.When(),
			Err:  ev,
		}, true
	default:
		return Event{}, false
	}
}
