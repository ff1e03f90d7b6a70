// FILE: flags/error.go
package flags

import (
	"fmt"
	"io"
	"os"
)

const errorPrefix = "ERROR: "

// dieWhenReporting says whether reportError invokes the exit hook.
type dieWhenReporting int

const (
	die dieWhenReporting = iota
	doNotDie
)

// exitFunc is invoked on fatal configuration errors. Replaceable so
// tests can observe the error-exit path.
var exitFunc func(int) = os.Exit

// stderr is swapped in tests to capture diagnostics.
var stderr io.Writer = os.Stderr

// SetExitFunc replaces the function invoked on fatal configuration
// errors (duplicate flag registration, malformed flag lists, unreadable
// flagfiles, a parse pass that ends with errors). Passing nil restores
// os.Exit. The replacement is expected to terminate the process with a
// non-zero status; a hook that returns leaves the library to continue
// as gracefully as it can.
func SetExitFunc(fn func(int)) {
	if fn == nil {
		fn = os.Exit
	}
	exitFunc = fn
}

// reportError prints a diagnostic and, if asked to, exits through the
// configurable hook.
func reportError(shouldDie dieWhenReporting, format string, args ...any) {
	fmt.Fprintf(stderr, format, args...)
	if shouldDie == die {
		exitFunc(1)
	}
}
