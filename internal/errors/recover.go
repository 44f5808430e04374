package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a recovered panic with stack trace
type PanicError struct {
	Value      interface{} // Panic value
	StackTrace string      // Stack trace at panic
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.StackTrace)
}

// Recover wraps a function with panic recovery.
// Returns any panic as a PanicError.
func Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Value:      r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	return fn()
}
