package threadsafe

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered on a worker goroutine together with
// the stack trace captured at the point of the panic.
//
// A panic inside a function given to [Async] or submitted to a [Runner]
// never kills the worker: it is converted to a *PanicError and surfaced
// to the caller as an ordinary error from [Future.Get] or [Runner.Close].
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the worker goroutine's stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. The panic value is not an error chain.
func (e *PanicError) Unwrap() error { return nil }

func newPanicError(v any) *PanicError {
	// 8 KiB covers typical traces. runtime.Stack truncates gracefully
	// if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
