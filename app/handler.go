package app

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tui-template/core"
	"github.com/lixenwraith/tui-template/logging"
	"github.com/lixenwraith/tui-template/terminal"
)

// DefaultScheduleDelay is how long a scheduled counter change waits in
// the background before it lands.
const DefaultScheduleDelay = time.Second

// Handler turns events into state mutations. Apart from the background
// tasks it spawns for scheduled changes, it is synchronous: all
// mutation happens on the loop goroutine.
type Handler struct {
	keymap  *Keymap
	actions chan<- Action
	delay   time.Duration
	log     *logging.Logger
}

// NewHandler builds a handler with the default keymap. Background
// tasks post their results to the given channel; the loop drains it.
func NewHandler(actions chan<- Action) *Handler {
	return &Handler{
		keymap:  DefaultKeymap(),
		actions: actions,
		delay:   DefaultScheduleDelay,
		log:     logging.With("component", "handler"),
	}
}

// SetScheduleDelay overrides how long scheduled counter changes wait.
func (h *Handler) SetScheduleDelay(d time.Duration) {
	if d > 0 {
		h.delay = d
	}
}

// SetKeymap replaces the default bindings.
func (h *Handler) SetKeymap(k *Keymap) {
	h.keymap = k
}

// Handle applies one event to the state. Tick is a deliberate no-op so
// the idle redraw cadence never disturbs state, and resize only
// updates the recorded dimensions.
func (h *Handler) Handle(st *State, ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventKey:
		return h.Dispatch(st, h.keymap.Lookup(st.Mode, ev))
	case terminal.EventMouse:
		return h.Dispatch(st, h.keymap.LookupMouse(ev))
	case terminal.EventResize:
		st.Width = ev.Width
		st.Height = ev.Height
	case terminal.EventTick:
		// State only changes in response to input
	}
	return nil
}

// Dispatch applies an action and any follow-ups it produces.
func (h *Handler) Dispatch(st *State, a Action) error {
	for a.Kind != ActionNone {
		next, err := h.apply(st, a)
		if err != nil {
			return err
		}
		a = next
	}
	return nil
}

// apply performs a single action. The returned action, if any, is a
// follow-up applied within the same dispatch.
func (h *Handler) apply(st *State, a Action) (Action, error) {
	switch a.Kind {
	case ActionQuit:
		h.log.Info("quit requested")
		st.Running = false
	case ActionIncrement:
		st.Counter += a.Delta
		h.log.Debug("counter changed", "counter", st.Counter, "delta", a.Delta)
	case ActionDecrement:
		st.Counter -= a.Delta
		h.log.Debug("counter changed", "counter", st.Counter, "delta", -a.Delta)
	case ActionScheduleIncrement:
		return h.schedule(st, Action{Kind: ActionIncrement, Delta: 1}), nil
	case ActionScheduleDecrement:
		return h.schedule(st, Action{Kind: ActionDecrement, Delta: 1}), nil
	case ActionEnterNormal:
		st.Mode = ModeNormal
	case ActionEnterInsert:
		st.Mode = ModeInsert
	case ActionEnterProcessing:
		st.Mode = ModeProcessing
	case ActionExitProcessing:
		st.Mode = ModeNormal
	case ActionToggleLogs:
		st.ShowLogs = !st.ShowLogs
	case ActionToggleHelp:
		st.ShowHelp = !st.ShowHelp
	case ActionInputRune:
		if len(st.Input) >= maxInputLen {
			return Action{}, fmt.Errorf("input is full at %d runes", maxInputLen)
		}
		st.Input = append(st.Input, a.Rune)
	case ActionInputBackspace:
		if n := len(st.Input); n > 0 {
			st.Input = st.Input[:n-1]
		}
	}
	return Action{}, nil
}

// schedule kicks off a delayed counter change. The mode flips to
// processing via the returned follow-up; the background task posts the
// change and the mode reset once the delay elapses. A second schedule
// while one is in flight is ignored.
func (h *Handler) schedule(st *State, op Action) Action {
	if st.Mode == ModeProcessing {
		h.log.Debug("schedule ignored, task in flight")
		return Action{}
	}
	h.log.Info("scheduled counter change", "action", op, "delay", h.delay)
	delay := h.delay
	core.Go(func() {
		time.Sleep(delay)
		h.post(op)
		h.post(Action{Kind: ActionExitProcessing})
	})
	return Action{Kind: ActionEnterProcessing}
}

// post queues an action from a background task without blocking.
// Overflow drops the action and logs it.
func (h *Handler) post(a Action) {
	select {
	case h.actions <- a:
	default:
		h.log.Warn("action queue full, dropped", "action", a)
	}
}
