package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tui-template/terminal"
)

// crashSession is the session to restore on crash. Registered once at
// startup, before any goroutine that can panic is spawned.
var crashSession *terminal.Session

// SetCrashSession points the crash handler at the live session so a
// panic restores the terminal through the normal exit path.
func SetCrashSession(s *terminal.Session) {
	crashSession = s
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Terminal cleanup if available
	if crashSession != nil {
		crashSession.Exit()
	} else {
		// Fallback for edge cases
		terminal.EmergencyReset(os.Stdout)
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
