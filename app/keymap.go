package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tui-template/terminal"
)

// chord identifies a key press for lookup. Rune is only meaningful
// when Key is tcell.KeyRune.
type chord struct {
	Key  tcell.Key
	Rune rune
}

// Keymap resolves key and mouse events to actions. Normal-mode
// bindings are table driven; insert mode is fixed editing behavior.
type Keymap struct {
	normal map[chord]Action
}

// DefaultKeymap returns the stock bindings:
//
//	q, Ctrl+C, Esc   quit
//	+, =             increment counter
//	-                decrement counter
//	s, S             schedule increment/decrement after a delay
//	/                enter insert mode
//	L                toggle the log overlay
//	?                toggle the help overlay
func DefaultKeymap() *Keymap {
	return &Keymap{
		normal: map[chord]Action{
			{tcell.KeyRune, 'q'}: {Kind: ActionQuit},
			{tcell.KeyCtrlC, 0}:  {Kind: ActionQuit},
			{tcell.KeyEscape, 0}: {Kind: ActionQuit},
			{tcell.KeyRune, '+'}: {Kind: ActionIncrement, Delta: 1},
			{tcell.KeyRune, '='}: {Kind: ActionIncrement, Delta: 1},
			{tcell.KeyRune, '-'}: {Kind: ActionDecrement, Delta: 1},
			{tcell.KeyRune, 's'}: {Kind: ActionScheduleIncrement},
			{tcell.KeyRune, 'S'}: {Kind: ActionScheduleDecrement},
			{tcell.KeyRune, '/'}: {Kind: ActionEnterInsert},
			{tcell.KeyRune, 'L'}: {Kind: ActionToggleLogs},
			{tcell.KeyRune, '?'}: {Kind: ActionToggleHelp},
		},
	}
}

// Bind attaches an action to a normal-mode key, replacing any existing
// binding for it.
func (k *Keymap) Bind(key tcell.Key, r rune, a Action) {
	if key != tcell.KeyRune {
		r = 0
	}
	k.normal[chord{Key: key, Rune: r}] = a
}

// Lookup resolves a key event under the given mode. Unbound keys
// resolve to ActionNone.
func (k *Keymap) Lookup(mode Mode, ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return Action{}
	}
	if mode == ModeInsert {
		return insertAction(ev)
	}
	c := chord{Key: ev.Key}
	if ev.Key == tcell.KeyRune {
		c.Rune = ev.Rune
	}
	if a, ok := k.normal[c]; ok {
		return a
	}
	return Action{}
}

// LookupMouse resolves a mouse event. Only the wheel is bound.
func (k *Keymap) LookupMouse(ev terminal.Event) Action {
	if ev.Type != terminal.EventMouse {
		return Action{}
	}
	switch {
	case ev.Buttons&tcell.WheelUp != 0:
		return Action{Kind: ActionIncrement, Delta: 1}
	case ev.Buttons&tcell.WheelDown != 0:
		return Action{Kind: ActionDecrement, Delta: 1}
	}
	return Action{}
}

// insertAction maps a key press to an insert-mode edit. Esc and Enter
// leave insert mode; anything unprintable is ignored.
func insertAction(ev terminal.Event) Action {
	switch ev.Key {
	case tcell.KeyEscape, tcell.KeyEnter:
		return Action{Kind: ActionEnterNormal}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Action{Kind: ActionInputBackspace}
	case tcell.KeyRune:
		return Action{Kind: ActionInputRune, Rune: ev.Rune}
	}
	return Action{}
}
