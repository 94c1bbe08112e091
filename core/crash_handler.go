package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/PugPostsCode/pug-pipes/terminal"
)

var (
	crashMu      sync.Mutex
	crashSurface terminal.Surface
)

// SetCrashSurface registers the surface HandleCrash restores; nil unregisters
func SetCrashSurface(s terminal.Surface) {
	crashMu.Lock()
	crashSurface = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	restoreTerminal(os.Stdout)
	reportCrash(os.Stderr, r, debug.Stack())
	os.Exit(1)
}

// restoreTerminal finalizes the registered surface, falling back to raw reset sequences
func restoreTerminal(w io.Writer) {
	crashMu.Lock()
	s := crashSurface
	crashMu.Unlock()

	if s != nil {
		s.Fini()
		return
	}
	terminal.EmergencyReset(w)
}

func reportCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\n\x1b[31mPIPES CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}
