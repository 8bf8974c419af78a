package errors

import (
	"fmt"
	"time"
)

// DebugMode controls how assertion failures behave. When true, a failed
// assertion panics so the violation is caught during development. When
// false, the failure is reported to the global handler and execution
// continues best-effort.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the library.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Assertf checks a programming invariant. The condition must hold in any
// correct use of the library; a failure is a bug in the caller, never a
// recoverable runtime condition.
func Assertf(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if DebugMode {
		panic(&ScrollError{
			Op:         op,
			Kind:       KindAssert,
			Err:        fmt.Errorf("assertion failed: %s", msg),
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
	Report(&ScrollError{
		Op:   op,
		Kind: KindAssert,
		Err:  fmt.Errorf("assertion failed: %s", msg),
	})
}
