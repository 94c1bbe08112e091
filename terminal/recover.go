package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// recoverInput restores the terminal and exits when an input goroutine
// panics. Must be deferred directly by the goroutine
func recoverInput() {
	if r := recover(); r != nil {
		reportInputPanic(os.Stdout, os.Stderr, r, debug.Stack())
		os.Exit(1)
	}
}

// reportInputPanic resets the terminal on out and writes the panic to errOut
func reportInputPanic(out, errOut io.Writer, r any, stack []byte) {
	EmergencyReset(out)
	fmt.Fprintf(errOut, "\r\n\x1b[31mINPUT POLLER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(errOut, "Stack Trace:\r\n%s\r\n", stack)
}
