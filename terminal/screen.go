// Package terminal owns the process's interaction with the terminal
// device: a Session that enters and leaves raw mode plus the alternate
// screen with a guaranteed restore, and a Source that pumps input
// events into a bounded channel so the main loop can race input
// against a tick timeout.
//
// Lifecycle:
//  1. New() verifies a real terminal is attached and builds the session
//  2. Session.Enter() switches to raw mode on the alternate screen
//  3. Source.Start() begins polling; the loop consumes via Next()
//  4. Session.Exit() restores the original terminal state, exactly once
//
// Exit runs on every path out of the loop, including panic unwind.
// EmergencyReset covers crash paths where the session is unreachable.
package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Screen is the subset of tcell.Screen the session, event source and
// renderer touch. tcell.Screen and tcell.SimulationScreen both satisfy
// it; tests substitute small fakes.
type Screen interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	SetStyle(style tcell.Style)
	Clear()
	HideCursor()
	ShowCursor(x, y int)
	Show()
	Sync()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	EnableMouse(flags ...tcell.MouseFlags)
	DisableMouse()
	EnablePaste()
	DisablePaste()
	Beep() error
}

// NewScreen allocates a real tcell screen for the attached terminal.
func NewScreen() (Screen, error) {
	return tcell.NewScreen()
}
