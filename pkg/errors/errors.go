// Package errors provides structured error handling for the scroll
// coordination library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindGesture indicates a drag or recognizer lifecycle error.
	KindGesture
	// KindNotification indicates a notification dispatch error.
	KindNotification
	// KindScroll indicates a scroll position or controller error.
	KindScroll
	// KindAssert indicates a violated programming invariant.
	KindAssert
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindGesture:
		return "gesture"
	case KindNotification:
		return "notification"
	case KindScroll:
		return "scroll"
	case KindAssert:
		return "assert"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ScrollError represents a structured error in the scroll coordination library.
type ScrollError struct {
	// Op is the operation that failed (e.g., "autoscroll.StartAutoScrollIfNecessary").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ScrollError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ScrollError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "nested.Coordinator.HandleNotification").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ScrollError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
