package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Session owns the terminal device for the process lifetime. Enter
// captures it (raw mode, alternate screen, hidden cursor) and Exit
// restores it. A session is single-use: once exited it cannot be
// re-entered, and duplicate Enter calls are errors, so the capture
// lifetime is always explicit.
type Session struct {
	mu     sync.Mutex
	screen Screen
	mouse  bool
	paste  bool

	entered bool
	exited  bool
}

// New verifies the process is attached to an interactive terminal and
// builds a session over a fresh screen. Any failure is a TerminalError
// and happens before raw mode is touched.
func New() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, TerminalError{Op: "open", Err: ErrNotTerminal}
	}
	sc, err := NewScreen()
	if err != nil {
		return nil, TerminalError{Op: "open", Err: err}
	}
	return NewSession(sc), nil
}

// NewSession wraps an existing screen. Tests and headless runs inject
// fakes or a tcell simulation screen here.
func NewSession(sc Screen) *Session {
	return &Session{screen: sc}
}

// SetMouse requests mouse capture when the session is entered.
func (s *Session) SetMouse(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse = on
}

// SetPaste requests bracketed paste capture when the session is entered.
func (s *Session) SetPaste(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paste = on
}

// Enter switches the terminal into raw input mode on the alternate
// screen buffer with the cursor hidden. Every successful Enter must be
// paired with Exit on all control-flow paths out of the loop.
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exited {
		return ErrSessionDone
	}
	if s.entered {
		return ErrSessionActive
	}

	if err := s.screen.Init(); err != nil {
		return TerminalError{Op: "enter", Err: err}
	}
	s.screen.HideCursor()
	if s.mouse {
		s.screen.EnableMouse()
	}
	if s.paste {
		s.screen.EnablePaste()
	}

	s.entered = true
	return nil
}

// Exit restores the terminal state captured by Enter. Idempotent:
// repeat calls and calls without a prior Enter are no-ops, so teardown
// paths can call it unconditionally.
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entered || s.exited {
		return nil
	}

	// Release capture modes before leaving the alternate screen
	if s.mouse {
		s.screen.DisableMouse()
	}
	if s.paste {
		s.screen.DisablePaste()
	}
	s.screen.ShowCursor(0, 0)
	s.screen.Fini()

	s.exited = true
	return nil
}

// Entered reports whether the session currently holds the terminal.
func (s *Session) Entered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered && !s.exited
}

// Screen exposes the underlying screen for rendering and event polling.
func (s *Session) Screen() Screen {
	return s.screen
}

// Size returns the current screen dimensions.
func (s *Session) Size() (int, int) {
	return s.screen.Size()
}

// Flush pushes the back buffer to the real screen. tcell diffs against
// the previously shown frame, so unchanged cells cost nothing.
func (s *Session) Flush() {
	s.screen.Show()
}

// Sync forces a full repaint, discarding the diff state. Useful after
// a resize leaves the display inconsistent.
func (s *Session) Sync() {
	s.screen.Sync()
}

// Beep rings the terminal bell.
func (s *Session) Beep() {
	_ = s.screen.Beep()
}
