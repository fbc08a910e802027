package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer bounds the handoff channel between the poll goroutine and
// the loop. The loop drains one event per iteration, so the buffer only
// absorbs bursts (key repeat, mouse drag).
const eventBuffer = 256

// Source pumps terminal input into a bounded channel from a background
// goroutine so the loop can race input against a tick timeout. It is a
// single-producer/single-consumer handoff: exactly one goroutine calls
// Next.
type Source struct {
	screen Screen

	events chan Event
	stopCh chan struct{}
	doneCh chan struct{}

	// pending holds the first non-resize event pulled while coalescing
	// a resize burst. Touched only by the consumer.
	pending *Event

	mu      sync.Mutex
	running bool
}

// NewSource wraps a screen's event stream.
func NewSource(sc Screen) *Source {
	return &Source{
		screen: sc,
		events: make(chan Event, eventBuffer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the poll goroutine. It may be called once per source;
// repeat calls are no-ops.
func (s *Source) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.pollLoop()
}

// Stop signals the poll goroutine to exit and wakes it if it is blocked
// inside PollEvent. It does not wait; use Done for that. Idempotent.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	// Wake a blocked PollEvent; best effort, Fini also unblocks it
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Done is closed when the poll goroutine has fully unwound.
func (s *Source) Done() <-chan struct{} {
	return s.doneCh
}

// Next returns the next input event, or Tick if none arrives within
// timeout. Events come out in arrival order with one exception: a run
// of queued resize events collapses to the latest dimensions.
func (s *Source) Next(timeout time.Duration) Event {
	var ev Event
	if s.pending != nil {
		ev = *s.pending
		s.pending = nil
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case ev = <-s.events:
		case <-timer.C:
			return TickEvent()
		}
	}
	if ev.Type == EventResize {
		ev = s.coalesceResize(ev)
	}
	return ev
}

// Post injects a synthetic event into the stream, used for signal
// handling and tests. Non-blocking: returns false when the queue is
// full and the event was dropped.
func (s *Source) Post(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// coalesceResize swallows consecutively queued resizes, keeping the
// newest. The first non-resize event found is stashed for the next call
// so ordering is preserved.
func (s *Source) coalesceResize(ev Event) Event {
	for {
		select {
		case next := <-s.events:
			if next.Type == EventResize {
				ev = next
				continue
			}
			s.pending = &next
			return ev
		default:
			return ev
		}
	}
}

// pollLoop reads the screen's event stream until the source is stopped
// or the stream ends. A panic inside the poller surfaces as an
// EventError so the loop shuts down through the normal restore path.
func (s *Source) pollLoop() {
	defer close(s.doneCh)
	defer func() {
		if r := recover(); r != nil {
			s.deliver(Event{Type: EventError, When: time.Now(), Err: fmt.Errorf("event poll panic: %v", r)})
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		tev := s.screen.PollEvent()
		if tev == nil {
			// Screen finalized or stream closed
			s.deliver(Event{Type: EventClosed, When: time.Now()})
			return
		}
		if _, ok := tev.(*tcell.EventInterrupt); ok {
			// Posted by Stop to unblock; loop back to check stopCh
			continue
		}

		ev, ok := fromTcell(tev)
		if !ok {
			continue
		}
		s.deliver(ev)
		if ev.Type == EventError {
			return
		}
	}
}

// deliver blocks until the consumer takes the event or the source is
// stopped. Blocking keeps ordering intact under load; the stop case
// frees the goroutine at shutdown when nobody is draining.
func (s *Source) deliver(ev Event) {
	select {
	case s.events <- ev:
	case <-s.stopCh:
	}
}
