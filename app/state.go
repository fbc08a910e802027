package app

// Mode selects how key presses are interpreted.
type Mode uint8

const (
	// ModeNormal routes keys through the keymap.
	ModeNormal Mode = iota
	// ModeInsert routes printable keys into the input buffer.
	ModeInsert
	// ModeProcessing marks a scheduled counter change in flight. Keys
	// still go through the normal keymap.
	ModeProcessing
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// maxInputLen caps the insert-mode buffer.
const maxInputLen = 128

// State is everything the renderer needs to draw a frame. Only the
// handler mutates it, and only on the loop goroutine.
type State struct {
	// Running keeps the loop alive. Only a quit action clears it.
	Running bool

	// Counter is the demo value the key bindings move around.
	Counter int

	// Mode selects the active key bindings.
	Mode Mode

	// Input is the text captured while in insert mode.
	Input []rune

	// Width and Height track the last reported screen dimensions.
	Width  int
	Height int

	// Overlay visibility.
	ShowHelp bool
	ShowLogs bool
}

// NewState returns the initial state: running, counter at zero,
// normal mode.
func NewState() *State {
	return &State{Running: true}
}

// InputText returns the insert buffer as a string.
func (s *State) InputText() string {
	return string(s.Input)
}
