package terminal

import (
	"io"
	"os"
)

// Raw restore sequences, written blind when the screen state is unknown.
var (
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiPasteOff      = []byte("\x1b[?2004l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Exit() cannot be called normally
func EmergencyReset(w io.Writer) {
	// Disable capture modes first
	w.Write(csiMouseOff)
	w.Write(csiPasteOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, ignore
	// errors in crash context
	resetTerminalMode()
}
