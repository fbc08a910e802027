// Package app drives the application: the state, the actions that
// mutate it, the key bindings, and the loop that pumps terminal events
// through the handler and hands the result to the renderer.
package app

import (
	"time"

	"github.com/lixenwraith/tui-template/logging"
	"github.com/lixenwraith/tui-template/terminal"
)

// DefaultTickRate is the idle redraw cadence when no input arrives.
const DefaultTickRate = 250 * time.Millisecond

// actionBuffer bounds the queue for actions posted by background
// tasks. The loop drains it fully on every iteration.
const actionBuffer = 64

// Phase tracks where the loop is in its lifecycle.
type Phase uint8

const (
	PhaseStarting Phase = iota
	PhaseRunning
	PhaseShuttingDown
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}

// EventSource feeds the loop. *terminal.Source is the production
// implementation; tests script their own.
type EventSource interface {
	Start()
	Stop()
	Next(timeout time.Duration) terminal.Event
	Post(ev terminal.Event) bool
}

// Renderer draws one frame of the current state into the screen's back
// buffer. Draw must not mutate state and must produce identical cells
// for identical state.
type Renderer interface {
	Draw(st *State, sc terminal.Screen)
}

// Loop wires session, source, handler and renderer together and runs
// the event cycle until a quit action stops it or an error forces
// shutdown.
type Loop struct {
	session  *terminal.Session
	source   EventSource
	handler  *Handler
	renderer Renderer

	tick    time.Duration
	actions chan Action
	state   *State
	phase   Phase
	log     *logging.Logger
}

// NewLoop assembles a loop around a session, an event source and a
// renderer. The handler it creates is reachable via Handler for
// binding and delay tweaks.
func NewLoop(session *terminal.Session, source EventSource, renderer Renderer) *Loop {
	actions := make(chan Action, actionBuffer)
	return &Loop{
		session:  session,
		source:   source,
		handler:  NewHandler(actions),
		renderer: renderer,
		tick:     DefaultTickRate,
		actions:  actions,
		state:    NewState(),
		log:      logging.With("component", "loop"),
	}
}

// SetTickRate overrides the idle redraw cadence.
func (l *Loop) SetTickRate(d time.Duration) {
	if d > 0 {
		l.tick = d
	}
}

// Handler returns the loop's event handler.
func (l *Loop) Handler() *Handler {
	return l.handler
}

// State returns the loop's application state.
func (l *Loop) State() *State {
	return l.state
}

// Phase returns the lifecycle phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Run enters the terminal session, pumps events until a quit action or
// an unrecoverable error, then restores the terminal. The restore runs
// on every path out, including panic unwind in the handler or the
// renderer. An error that forced shutdown is returned only after the
// terminal is restored.
func (l *Loop) Run() error {
	l.phase = PhaseStarting
	if err := l.session.Enter(); err != nil {
		return err
	}

	defer func() {
		l.phase = PhaseShuttingDown
		l.source.Stop()
		_ = l.session.Exit()
	}()

	l.source.Start()
	l.phase = PhaseRunning
	l.log.Info("loop running", "tick", l.tick)

	for l.state.Running {
		ev := l.source.Next(l.tick)

		switch ev.Type {
		case terminal.EventError:
			l.log.Error("event stream failed", "error", ev.Err)
			return terminal.InputError{Err: ev.Err}
		case terminal.EventClosed:
			l.log.Error("event stream closed")
			return terminal.InputError{Err: terminal.ErrEventStreamClosed}
		}

		if err := l.handler.Handle(l.state, ev); err != nil {
			if IsFatal(err) {
				return err
			}
			l.log.Warn("event not handled", "error", err)
			l.session.Beep()
		}
		l.drainActions()

		if !l.state.Running {
			break
		}

		l.renderer.Draw(l.state, l.session.Screen())
		if ev.Type == terminal.EventResize {
			// Resize invalidates the diff state, force a full repaint
			l.session.Sync()
		} else {
			l.session.Flush()
		}
	}

	l.log.Info("loop stopped", "counter", l.state.Counter)
	return nil
}

// drainActions applies every action queued by background tasks since
// the last iteration.
func (l *Loop) drainActions() {
	for {
		select {
		case a := <-l.actions:
			if err := l.handler.Dispatch(l.state, a); err != nil {
				l.log.Warn("action failed", "error", err)
			}
		default:
			return
		}
	}
}
