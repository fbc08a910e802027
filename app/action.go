package app

import "fmt"

// ActionKind identifies a state mutation requested by the handler or
// posted by a background task.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionIncrement
	ActionDecrement
	ActionScheduleIncrement
	ActionScheduleDecrement
	ActionEnterNormal
	ActionEnterInsert
	ActionEnterProcessing
	ActionExitProcessing
	ActionToggleLogs
	ActionToggleHelp
	ActionInputRune
	ActionInputBackspace
)

// String returns a human-readable action name
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionIncrement:
		return "increment"
	case ActionDecrement:
		return "decrement"
	case ActionScheduleIncrement:
		return "schedule-increment"
	case ActionScheduleDecrement:
		return "schedule-decrement"
	case ActionEnterNormal:
		return "enter-normal"
	case ActionEnterInsert:
		return "enter-insert"
	case ActionEnterProcessing:
		return "enter-processing"
	case ActionExitProcessing:
		return "exit-processing"
	case ActionToggleLogs:
		return "toggle-logs"
	case ActionToggleHelp:
		return "toggle-help"
	case ActionInputRune:
		return "input-rune"
	case ActionInputBackspace:
		return "input-backspace"
	default:
		return "unknown"
	}
}

// Action pairs a kind with its payload. Delta carries the amount for
// the counter kinds, Rune the character for ActionInputRune.
type Action struct {
	Kind  ActionKind
	Delta int
	Rune  rune
}

// String formats the action with its payload for logging.
func (a Action) String() string {
	switch a.Kind {
	case ActionIncrement, ActionDecrement:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Delta)
	case ActionInputRune:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Rune)
	default:
		return a.Kind.String()
	}
}
