package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tui-template/terminal"
)

func newTestHandler() (*Handler, chan Action) {
	actions := make(chan Action, actionBuffer)
	h := NewHandler(actions)
	h.SetScheduleDelay(5 * time.Millisecond)
	return h, actions
}

func recvAction(t *testing.T, ch chan Action) Action {
	t.Helper()
	select {
	case a := <-ch:
		return a
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for action")
		return Action{}
	}
}

func TestHandlerQuitKeys(t *testing.T) {
	quits := []terminal.Event{
		terminal.RuneEvent('q'),
		terminal.KeyEvent(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		terminal.KeyEvent(tcell.KeyEscape, 0, tcell.ModNone),
	}

	for _, ev := range quits {
		h, _ := newTestHandler()
		st := NewState()
		if err := h.Handle(st, ev); err != nil {
			t.Fatalf("Handle returned error: %v", err)
		}
		if st.Running {
			t.Errorf("Expected Running false after %v, got true", ev.Key)
		}
	}
}

func TestHandlerOnlyQuitStops(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()

	events := []terminal.Event{
		terminal.TickEvent(),
		terminal.ResizeEvent(120, 40),
		terminal.RuneEvent('+'),
		terminal.RuneEvent('-'),
		terminal.RuneEvent('x'),
		terminal.RuneEvent('L'),
		terminal.RuneEvent('?'),
		terminal.KeyEvent(tcell.KeyF1, 0, tcell.ModNone),
		{Type: terminal.EventMouse, Buttons: tcell.WheelUp},
		{Type: terminal.EventMouse, Buttons: tcell.Button1},
	}
	for _, ev := range events {
		if err := h.Handle(st, ev); err != nil {
			t.Fatalf("Handle returned error: %v", err)
		}
		if !st.Running {
			t.Fatalf("Expected Running true after %s event, got false", ev.Type)
		}
	}
}

func TestHandlerCounterKeys(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()

	script := []struct {
		r    rune
		want int
	}{
		{'+', 1},
		{'+', 2},
		{'=', 3},
		{'-', 2},
		{'-', 1},
		{'-', 0},
		{'-', -1},
	}
	for _, step := range script {
		if err := h.Handle(st, terminal.RuneEvent(step.r)); err != nil {
			t.Fatalf("Handle(%q) returned error: %v", step.r, err)
		}
		if st.Counter != step.want {
			t.Errorf("Expected counter %d after %q, got %d", step.want, step.r, st.Counter)
		}
	}
}

func TestHandlerMouseWheel(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()

	h.Handle(st, terminal.Event{Type: terminal.EventMouse, Buttons: tcell.WheelUp})
	h.Handle(st, terminal.Event{Type: terminal.EventMouse, Buttons: tcell.WheelUp})
	h.Handle(st, terminal.Event{Type: terminal.EventMouse, Buttons: tcell.WheelDown})

	if st.Counter != 1 {
		t.Errorf("Expected counter 1 after two wheel up and one wheel down, got %d", st.Counter)
	}
}

func TestHandlerResizeTouchesOnlyDimensions(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()
	st.Counter = 7
	st.Mode = ModeInsert
	st.Input = []rune("abc")
	st.ShowLogs = true

	before := *st
	if err := h.Handle(st, terminal.ResizeEvent(132, 43)); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if st.Width != 132 || st.Height != 43 {
		t.Errorf("Expected dimensions 132x43, got %dx%d", st.Width, st.Height)
	}
	st.Width = before.Width
	st.Height = before.Height
	if !reflect.DeepEqual(before, *st) {
		t.Errorf("Expected resize to touch only dimensions, state changed: %+v vs %+v", before, *st)
	}
}

func TestHandlerTickIsNoOp(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()
	st.Counter = 3
	st.Mode = ModeInsert
	st.Input = []rune("hello")
	st.Width = 80
	st.Height = 24
	st.ShowHelp = true

	before := *st
	if err := h.Handle(st, terminal.TickEvent()); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !reflect.DeepEqual(before, *st) {
		t.Errorf("Expected tick to leave state untouched, got %+v vs %+v", before, *st)
	}
}

func TestHandlerInsertMode(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()

	h.Handle(st, terminal.RuneEvent('/'))
	if st.Mode != ModeInsert {
		t.Fatalf("Expected insert mode after /, got %s", st.Mode)
	}

	for _, r := range "hq+" {
		h.Handle(st, terminal.RuneEvent(r))
	}
	if st.InputText() != "hq+" {
		t.Errorf("Expected input %q, got %q", "hq+", st.InputText())
	}
	if !st.Running || st.Counter != 0 {
		t.Errorf("Expected bindings inert in insert mode, running=%v counter=%d", st.Running, st.Counter)
	}

	h.Handle(st, terminal.KeyEvent(tcell.KeyBackspace2, 0, tcell.ModNone))
	if st.InputText() != "hq" {
		t.Errorf("Expected input %q after backspace, got %q", "hq", st.InputText())
	}

	h.Handle(st, terminal.KeyEvent(tcell.KeyEscape, 0, tcell.ModNone))
	if st.Mode != ModeNormal {
		t.Errorf("Expected normal mode after Esc, got %s", st.Mode)
	}
	if !st.Running {
		t.Error("Expected Esc to leave insert mode, not quit")
	}

	h.Handle(st, terminal.RuneEvent('/'))
	h.Handle(st, terminal.KeyEvent(tcell.KeyEnter, 0, tcell.ModNone))
	if st.Mode != ModeNormal {
		t.Errorf("Expected normal mode after Enter, got %s", st.Mode)
	}
}

func TestHandlerInputLimit(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()
	st.Mode = ModeInsert
	st.Input = make([]rune, maxInputLen)

	err := h.Handle(st, terminal.RuneEvent('x'))
	if err == nil {
		t.Fatal("Expected error when input buffer is full")
	}
	if IsFatal(err) {
		t.Error("Expected input overflow to be non-fatal")
	}
	if len(st.Input) != maxInputLen {
		t.Errorf("Expected input length to stay %d, got %d", maxInputLen, len(st.Input))
	}
}

func TestHandlerToggles(t *testing.T) {
	h, _ := newTestHandler()
	st := NewState()

	h.Handle(st, terminal.RuneEvent('L'))
	if !st.ShowLogs {
		t.Error("Expected ShowLogs true after L")
	}
	h.Handle(st, terminal.RuneEvent('L'))
	if st.ShowLogs {
		t.Error("Expected ShowLogs false after second L")
	}

	h.Handle(st, terminal.RuneEvent('?'))
	if !st.ShowHelp {
		t.Error("Expected ShowHelp true after ?")
	}
	h.Handle(st, terminal.RuneEvent('?'))
	if st.ShowHelp {
		t.Error("Expected ShowHelp false after second ?")
	}
}

func TestHandlerScheduledIncrement(t *testing.T) {
	h, actions := newTestHandler()
	st := NewState()

	if err := h.Handle(st, terminal.RuneEvent('s')); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if st.Mode != ModeProcessing {
		t.Fatalf("Expected processing mode right after schedule, got %s", st.Mode)
	}
	if st.Counter != 0 {
		t.Fatalf("Expected counter unchanged until the task lands, got %d", st.Counter)
	}

	// The background task posts the change and the mode reset
	for i := 0; i < 2; i++ {
		a := recvAction(t, actions)
		if err := h.Dispatch(st, a); err != nil {
			t.Fatalf("Dispatch(%s) returned error: %v", a, err)
		}
	}
	if st.Counter != 1 {
		t.Errorf("Expected counter 1 after scheduled increment, got %d", st.Counter)
	}
	if st.Mode != ModeNormal {
		t.Errorf("Expected normal mode after the task lands, got %s", st.Mode)
	}
}

func TestHandlerScheduledDecrement(t *testing.T) {
	h, actions := newTestHandler()
	st := NewState()

	h.Handle(st, terminal.RuneEvent('S'))
	for i := 0; i < 2; i++ {
		h.Dispatch(st, recvAction(t, actions))
	}
	if st.Counter != -1 {
		t.Errorf("Expected counter -1 after scheduled decrement, got %d", st.Counter)
	}
}

func TestHandlerScheduleIgnoredWhileProcessing(t *testing.T) {
	h, actions := newTestHandler()
	st := NewState()

	h.Handle(st, terminal.RuneEvent('s'))
	h.Handle(st, terminal.RuneEvent('s'))

	// Only the first schedule spawns a task: two actions, not four
	for i := 0; i < 2; i++ {
		h.Dispatch(st, recvAction(t, actions))
	}
	time.Sleep(20 * time.Millisecond)
	select {
	case a := <-actions:
		t.Errorf("Expected no further actions, got %s", a)
	default:
	}
	if st.Counter != 1 {
		t.Errorf("Expected counter 1, got %d", st.Counter)
	}
}

func TestKeymapBind(t *testing.T) {
	h, _ := newTestHandler()
	km := DefaultKeymap()
	km.Bind(tcell.KeyRune, 'x', Action{Kind: ActionIncrement, Delta: 10})
	km.Bind(tcell.KeyF5, 'z', Action{Kind: ActionQuit})
	h.SetKeymap(km)

	st := NewState()
	h.Handle(st, terminal.RuneEvent('x'))
	if st.Counter != 10 {
		t.Errorf("Expected counter 10 from custom binding, got %d", st.Counter)
	}

	// Rune is ignored for non-rune keys
	h.Handle(st, terminal.KeyEvent(tcell.KeyF5, 0, tcell.ModNone))
	if st.Running {
		t.Error("Expected custom F5 binding to quit")
	}
}
