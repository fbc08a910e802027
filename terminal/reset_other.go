//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package terminal

// resetTerminalMode is a no-op where termios is unavailable; the escape
// sequences in EmergencyReset are the best that can be done.
func resetTerminalMode() {}
