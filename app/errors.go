package app

import (
	"errors"
	"fmt"
)

// FatalError marks a handler failure that must abort the loop. Errors
// without the wrapper are logged and the loop keeps running.
type FatalError struct {
	Err error
}

func (e FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

func (e FatalError) Unwrap() error { return e.Err }

// Fatal wraps err so the loop aborts on it. Nil stays nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return FatalError{Err: err}
}

// IsFatal checks whether err carries a FatalError.
func IsFatal(err error) bool {
	var fe FatalError
	return errors.As(err, &fe)
}
