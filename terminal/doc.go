// Package terminal is the drawing surface the animation runs on.
//
// A Surface positions single runes at absolute cells, clears the screen and
// waits a bounded time for the Enter key. Three backends are provided:
//   - tcell: the default, terminfo-driven, via github.com/gdamore/tcell/v2
//   - ansi: direct ANSI sequences over a raw-mode stdin/stdout (unix only)
//   - termbox: via github.com/nsf/termbox-go
//
// Every backend restores the terminal in Fini, and EmergencyReset is
// available for panic paths where Fini cannot run.
package terminal
