package terminal

import (
	"errors"
	"fmt"
)

// Session misuse and stream conditions.
var (
	// ErrNotTerminal means stdin or stdout is not an interactive terminal.
	ErrNotTerminal = errors.New("not attached to a terminal")
	// ErrSessionActive means Enter was called on an already entered session.
	ErrSessionActive = errors.New("session already entered")
	// ErrSessionDone means Enter was called after Exit; sessions are single-use.
	ErrSessionDone = errors.New("session already exited")
	// ErrEventStreamClosed means the poll goroutine saw the event stream end
	// while the loop was still running.
	ErrEventStreamClosed = errors.New("event stream closed")
)

// TerminalError reports a device or mode-switch failure. It is fatal:
// when it is returned the terminal has not been captured, so the
// process can abort without any restore step.
type TerminalError struct {
	Op  string
	Err error
}

func (e TerminalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("terminal %s failed", e.Op)
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e TerminalError) Unwrap() error { return e.Err }

// InputError reports an event stream failure while the loop is running.
// The only recovery is a full shutdown; the loop restores the session
// before surfacing it.
type InputError struct {
	Err error
}

func (e InputError) Error() string {
	return fmt.Sprintf("terminal input: %v", e.Err)
}

func (e InputError) Unwrap() error { return e.Err }

// IsTerminalError checks if an error is a TerminalError.
func IsTerminalError(err error) bool {
	var te TerminalError
	return errors.As(err, &te)
}

// IsInputError checks if an error is an InputError.
func IsInputError(err error) bool {
	var ie InputError
	return errors.As(err, &ie)
}
