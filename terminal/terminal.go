package terminal

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Surface is the terminal as seen by the animation
type Surface interface {
	// Init enters the drawing mode (alternate screen, hidden cursor, raw input)
	Init() error

	// Fini clears the screen and restores the terminal. Safe to call multiple times
	Fini()

	// Size returns the terminal dimensions, valid after Init
	Size() (width, height int, err error)

	// SetRune places r at (x, y); out of range writes are dropped
	SetRune(x, y int, r rune)

	// Show pushes pending writes to the terminal
	Show()

	// Clear blanks the visible area
	Clear()

	// WaitForExit blocks for d, returning true early only when Enter is
	// pressed or ctx is cancelled. Other input is consumed and ignored
	WaitForExit(ctx context.Context, d time.Duration) bool
}

// Kind names a Surface backend
type Kind string

const (
	KindTcell   Kind = "tcell"
	KindANSI    Kind = "ansi"
	KindTermbox Kind = "termbox"
)

// Kinds lists the accepted backend names in help order
var Kinds = []Kind{KindTcell, KindANSI, KindTermbox}

// ParseKind resolves a backend name, case-insensitive
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Errorf("unknown backend %q (want tcell, ansi or termbox)", name)
}

// New creates an uninitialized Surface for the given backend
func New(kind Kind) (Surface, error) {
	switch kind {
	case KindTcell, "":
		return newTcellSurface()
	case KindANSI:
		return newANSISurface()
	case KindTermbox:
		return newTermboxSurface(), nil
	}
	return nil, errors.Errorf("unknown backend %q", kind)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}
